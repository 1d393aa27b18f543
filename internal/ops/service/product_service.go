package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bitfantasy/ostrich-ops/internal/ops/entity"
	"github.com/bitfantasy/ostrich-ops/internal/ops/repository"
)

type ProductService struct {
	repo    *repository.ProductRepository
	catRepo *repository.CategoryRepository
}

func NewProductService(repo *repository.ProductRepository, catRepo *repository.CategoryRepository) *ProductService {
	return &ProductService{repo: repo, catRepo: catRepo}
}

type CreateProductRequest struct {
	ProductCode      string   `json:"sku"`
	Name             string   `json:"name" binding:"required"`
	Description      string   `json:"description" binding:"required"`
	Price            float64  `json:"price" binding:"required"`
	OfferPrice       *float64 `json:"offer_price"`
	StockQuantity    int      `json:"stock_quantity"`
	StockStatus      string   `json:"stock_status"`
	ImageURL         string   `json:"image_url"`
	CategoryID       string   `json:"category_id" binding:"required"`
	IsTrending       bool     `json:"is_trending"`
	TrendingPosition *int     `json:"trending_position"`
	IsActive         *bool    `json:"is_active"`
}

type UpdateProductRequest struct {
	ProductCode      *string  `json:"sku"`
	Name             *string  `json:"name"`
	Description      *string  `json:"description"`
	Price            *float64 `json:"price"`
	OfferPrice       *float64 `json:"offer_price"`
	ClearOfferPrice  bool     `json:"clear_offer_price"`
	StockQuantity    *int     `json:"stock_quantity"`
	StockStatus      *string  `json:"stock_status"`
	ImageURL         *string  `json:"image_url"`
	CategoryID       *string  `json:"category_id"`
	IsTrending       *bool    `json:"is_trending"`
	TrendingPosition *int     `json:"trending_position"`
	IsActive         *bool    `json:"is_active"`
}

func (s *ProductService) List(ctx context.Context, params repository.ProductListParams) ([]entity.Product, error) {
	return s.repo.List(ctx, params)
}

func (s *ProductService) Get(ctx context.Context, id string) (*entity.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, req *CreateProductRequest) (*entity.Product, error) {
	if req.Price <= 0 {
		return nil, invalidf("price must be greater than zero")
	}
	if err := ValidateOfferPrice(req.Price, req.OfferPrice); err != nil {
		return nil, err
	}
	if err := ValidateTrendingPosition(req.IsTrending, req.TrendingPosition); err != nil {
		return nil, err
	}
	if _, err := s.catRepo.GetByID(ctx, req.CategoryID); err != nil {
		if IsNotFound(err) {
			return nil, invalidf("category not found")
		}
		return nil, err
	}
	code := strings.ToUpper(strings.TrimSpace(req.ProductCode))
	if code != "" {
		if err := ValidateProductCode(code); err != nil {
			return nil, err
		}
		if exists, err := s.repo.CodeExists(ctx, code, ""); err != nil {
			return nil, fmt.Errorf("check product code: %w", err)
		} else if exists {
			return nil, conflictf("product with SKU %s already exists", code)
		}
	}

	product := &entity.Product{
		ProductCode:      code,
		Name:             strings.TrimSpace(req.Name),
		Description:      req.Description,
		Price:            req.Price,
		OfferPrice:       req.OfferPrice,
		StockQuantity:    req.StockQuantity,
		StockStatus:      req.StockStatus,
		ImageURL:         req.ImageURL,
		CategoryID:       req.CategoryID,
		IsTrending:       req.IsTrending,
		TrendingPosition: req.TrendingPosition,
		IsActive:         true,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if product.StockStatus == "" {
		product.StockStatus = stockStatusFor(product.StockQuantity)
	}
	if !product.IsTrending {
		product.TrendingPosition = nil
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id string, req *UpdateProductRequest) (*entity.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, invalidf("price must be greater than zero")
		}
		product.Price = *req.Price
	}
	if req.ClearOfferPrice {
		product.OfferPrice = nil
	} else if req.OfferPrice != nil {
		product.OfferPrice = req.OfferPrice
	}
	if err := ValidateOfferPrice(product.Price, product.OfferPrice); err != nil {
		return nil, err
	}
	if req.ProductCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*req.ProductCode))
		if code != "" {
			if err := ValidateProductCode(code); err != nil {
				return nil, err
			}
			if exists, err := s.repo.CodeExists(ctx, code, id); err != nil {
				return nil, fmt.Errorf("check product code: %w", err)
			} else if exists {
				return nil, conflictf("product with SKU %s already exists", code)
			}
		}
		product.ProductCode = code
	}
	if req.CategoryID != nil {
		if _, err := s.catRepo.GetByID(ctx, *req.CategoryID); err != nil {
			if IsNotFound(err) {
				return nil, invalidf("category not found")
			}
			return nil, err
		}
		product.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
		product.StockStatus = stockStatusFor(*req.StockQuantity)
	}
	if req.StockStatus != nil {
		product.StockStatus = *req.StockStatus
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.IsTrending != nil {
		product.IsTrending = *req.IsTrending
	}
	if req.TrendingPosition != nil {
		product.TrendingPosition = req.TrendingPosition
	}
	if err := ValidateTrendingPosition(product.IsTrending, product.TrendingPosition); err != nil {
		return nil, err
	}
	if !product.IsTrending {
		product.TrendingPosition = nil
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	count, err := s.repo.SaleItemCount(ctx, id)
	if err != nil {
		return fmt.Errorf("check product references: %w", err)
	}
	if count > 0 {
		return statef("cannot delete product: %d sale items reference this product", count)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// ActiveCategories returns id + name pairs for the product form dropdown.
func (s *ProductService) ActiveCategories(ctx context.Context) ([]entity.ProductCategory, error) {
	return s.catRepo.List(ctx, true)
}

func stockStatusFor(qty int) string {
	switch {
	case qty <= 0:
		return entity.StockStatusOutOfStock
	case qty <= 5:
		return entity.StockStatusLowStock
	default:
		return entity.StockStatusInStock
	}
}

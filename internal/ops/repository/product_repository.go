package repository

import (
	"context"
	"errors"

	"github.com/bitfantasy/ostrich-ops/internal/ops/entity"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *entity.ProductCategory) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*entity.ProductCategory, error) {
	var c entity.ProductCategory
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &c, err
}

func (r *CategoryRepository) Update(ctx context.Context, c *entity.ProductCategory) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.ProductCategory{}).Error
}

func (r *CategoryRepository) NameExists(ctx context.Context, name, excludeID string) (bool, error) {
	query := r.db.WithContext(ctx).Model(&entity.ProductCategory{}).Where("LOWER(name) = LOWER(?)", name)
	if excludeID != "" {
		query = query.Where("id != ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// List returns categories ordered by display_order then name. When
// activeOnly is set, inactive categories are filtered out (storefront view).
func (r *CategoryRepository) List(ctx context.Context, activeOnly bool) ([]entity.ProductCategory, error) {
	query := r.db.WithContext(ctx).Model(&entity.ProductCategory{})
	if activeOnly {
		query = query.Where("is_active = true")
	}
	var categories []entity.ProductCategory
	err := query.Order("display_order ASC, name ASC").Find(&categories).Error
	return categories, err
}

// MaxDisplayOrder returns the highest display_order; new categories are
// appended after it.
func (r *CategoryRepository) MaxDisplayOrder(ctx context.Context) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).Model(&entity.ProductCategory{}).
		Select("MAX(display_order)").Scan(&max).Error
	if err != nil || max == nil {
		return 0, err
	}
	return *max, nil
}

func (r *CategoryRepository) ProductCount(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Product{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var p entity.Product
	err := r.db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &p, err
}

func (r *ProductRepository) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	var p entity.Product
	err := r.db.WithContext(ctx).Where("product_code = ?", code).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &p, err
}

func (r *ProductRepository) Update(ctx context.Context, p *entity.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Product{}).Error
}

func (r *ProductRepository) CodeExists(ctx context.Context, code, excludeID string) (bool, error) {
	query := r.db.WithContext(ctx).Model(&entity.Product{}).Where("product_code = ?", code)
	if excludeID != "" {
		query = query.Where("id != ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *ProductRepository) SaleItemCount(ctx context.Context, productID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.SaleItem{}).Where("product_id = ?", productID).Count(&count).Error
	return count, err
}

type ProductListParams struct {
	Search     string
	CategoryID string
	ActiveOnly bool
	Trending   bool
	SortDesc   bool
	Limit      int
}

func (r *ProductRepository) List(ctx context.Context, params ProductListParams) ([]entity.Product, error) {
	query := r.db.WithContext(ctx).Model(&entity.Product{}).Preload("Category")
	if params.Search != "" {
		kw := "%" + params.Search + "%"
		query = query.Where("name ILIKE ? OR product_code ILIKE ? OR description ILIKE ?", kw, kw, kw)
	}
	if params.CategoryID != "" {
		query = query.Where("category_id = ?", params.CategoryID)
	}
	if params.ActiveOnly {
		query = query.Where("is_active = true")
	}
	if params.Trending {
		query = query.Where("is_trending = true")
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 200
	}
	var products []entity.Product
	order := "product_code ASC"
	if params.SortDesc {
		order = "product_code DESC"
	}
	if params.Trending {
		order = "trending_position ASC NULLS LAST, created_at DESC"
	}
	err := query.Order(order).Limit(limit).Find(&products).Error
	return products, err
}

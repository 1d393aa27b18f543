package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bitfantasy/ostrich-ops/internal/ops/entity"
	"github.com/bitfantasy/ostrich-ops/internal/ops/repository"
)

type SaleService struct {
	repo         *repository.SaleRepository
	customerRepo *repository.CustomerRepository
	productRepo  *repository.ProductRepository
	seqRepo      *repository.SequenceRepository
}

func NewSaleService(repo *repository.SaleRepository, customerRepo *repository.CustomerRepository, productRepo *repository.ProductRepository, seqRepo *repository.SequenceRepository) *SaleService {
	return &SaleService{repo: repo, customerRepo: customerRepo, productRepo: productRepo, seqRepo: seqRepo}
}

type SaleItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type CreateSaleRequest struct {
	CustomerID    string          `json:"customer_id" binding:"required"`
	SaleDate      *time.Time      `json:"sale_date"`
	Discount      float64         `json:"discount"`
	PaymentStatus string          `json:"payment_status"`
	Notes         string          `json:"notes"`
	Items         []SaleItemInput `json:"items" binding:"required"`
}

type UpdateSaleRequest struct {
	SaleDate      *time.Time      `json:"sale_date"`
	Discount      *float64        `json:"discount"`
	PaymentStatus *string         `json:"payment_status"`
	Notes         *string         `json:"notes"`
	Items         []SaleItemInput `json:"items"`
}

func (s *SaleService) List(ctx context.Context, params repository.SaleListParams) ([]entity.Sale, error) {
	return s.repo.List(ctx, params)
}

func (s *SaleService) Get(ctx context.Context, id string) (*entity.Sale, error) {
	return s.repo.GetByID(ctx, id)
}

// buildItems resolves products, computes line and order totals. The unit
// price is the product's offer price when one is set.
func (s *SaleService) buildItems(ctx context.Context, inputs []SaleItemInput) ([]entity.SaleItem, float64, error) {
	items := make([]entity.SaleItem, 0, len(inputs))
	var total float64
	for _, in := range inputs {
		if in.Quantity <= 0 {
			return nil, 0, invalidf("item quantity must be greater than zero")
		}
		product, err := s.productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			if IsNotFound(err) {
				return nil, 0, invalidf("product %s not found", in.ProductID)
			}
			return nil, 0, err
		}
		unitPrice := product.Price
		if product.OfferPrice != nil {
			unitPrice = *product.OfferPrice
		}
		lineTotal := float64(in.Quantity) * unitPrice
		items = append(items, entity.SaleItem{
			ProductID:  product.ID,
			Quantity:   in.Quantity,
			UnitPrice:  unitPrice,
			TotalPrice: lineTotal,
		})
		total += lineTotal
	}
	return items, total, nil
}

func (s *SaleService) Create(ctx context.Context, req *CreateSaleRequest, createdBy string) (*entity.Sale, error) {
	if len(req.Items) == 0 {
		return nil, invalidf("sale must have at least one item")
	}
	if req.Discount < 0 {
		return nil, invalidf("discount cannot be negative")
	}
	if _, err := s.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		if IsNotFound(err) {
			return nil, invalidf("customer not found")
		}
		return nil, err
	}
	paymentStatus := req.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = entity.PaymentStatusPending
	}
	if !validPaymentStatus(paymentStatus) {
		return nil, invalidf("invalid payment status %q", paymentStatus)
	}

	items, total, err := s.buildItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}
	if req.Discount > total {
		return nil, invalidf("discount cannot exceed the order total")
	}

	number, err := s.seqRepo.NextCode(ctx, entity.CodePrefixSale, entity.CodeWidthSale)
	if err != nil {
		return nil, err
	}

	saleDate := time.Now()
	if req.SaleDate != nil {
		saleDate = *req.SaleDate
	}
	sale := &entity.Sale{
		SaleNumber:     number,
		CustomerID:     req.CustomerID,
		SaleDate:       saleDate,
		TotalAmount:    total,
		Discount:       req.Discount,
		FinalAmount:    total - req.Discount,
		PaymentStatus:  paymentStatus,
		DeliveryStatus: entity.DeliveryStatusPending,
		Notes:          req.Notes,
		CreatedBy:      createdBy,
	}
	if err := s.repo.CreateWithItems(ctx, sale, items); err != nil {
		return nil, fmt.Errorf("create sale: %w", err)
	}
	return sale, nil
}

// Update is state-guarded: once the sale has left pending delivery only the
// payment status may change; everything else in the request is ignored.
func (s *SaleService) Update(ctx context.Context, id string, req *UpdateSaleRequest) (*entity.Sale, error) {
	sale, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PaymentStatus != nil && !validPaymentStatus(*req.PaymentStatus) {
		return nil, invalidf("invalid payment status %q", *req.PaymentStatus)
	}

	if sale.DeliveryStatus != entity.DeliveryStatusPending {
		if req.PaymentStatus == nil {
			return sale, nil
		}
		if err := s.repo.UpdateFields(ctx, id, map[string]interface{}{"payment_status": *req.PaymentStatus}); err != nil {
			return nil, fmt.Errorf("update sale: %w", err)
		}
		sale.PaymentStatus = *req.PaymentStatus
		return sale, nil
	}

	if req.SaleDate != nil {
		sale.SaleDate = *req.SaleDate
	}
	if req.PaymentStatus != nil {
		sale.PaymentStatus = *req.PaymentStatus
	}
	if req.Notes != nil {
		sale.Notes = *req.Notes
	}
	if req.Discount != nil {
		if *req.Discount < 0 {
			return nil, invalidf("discount cannot be negative")
		}
		sale.Discount = *req.Discount
	}

	if len(req.Items) > 0 {
		items, total, err := s.buildItems(ctx, req.Items)
		if err != nil {
			return nil, err
		}
		if sale.Discount > total {
			return nil, invalidf("discount cannot exceed the order total")
		}
		sale.TotalAmount = total
		sale.FinalAmount = total - sale.Discount
		if err := s.repo.UpdateWithItems(ctx, sale, items); err != nil {
			return nil, fmt.Errorf("update sale: %w", err)
		}
		return sale, nil
	}

	if sale.Discount > sale.TotalAmount {
		return nil, invalidf("discount cannot exceed the order total")
	}
	sale.FinalAmount = sale.TotalAmount - sale.Discount
	if err := s.repo.Update(ctx, sale); err != nil {
		return nil, fmt.Errorf("update sale: %w", err)
	}
	return sale, nil
}

// Delete removes the sale unless a dispatch for it is already in transit or
// delivered.
func (s *SaleService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	active, err := s.repo.ActiveDispatchCount(ctx, id)
	if err != nil {
		return fmt.Errorf("check dispatches: %w", err)
	}
	if active > 0 {
		return statef("cannot delete sale: a dispatch is already in transit or delivered")
	}
	if err := s.repo.DeleteDispatchesBySale(ctx, id); err != nil {
		return fmt.Errorf("delete dispatches: %w", err)
	}
	if err := s.repo.DeleteWithItems(ctx, id); err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

func validPaymentStatus(status string) bool {
	switch status {
	case entity.PaymentStatusPending, entity.PaymentStatusPartial, entity.PaymentStatusPaid:
		return true
	}
	return false
}

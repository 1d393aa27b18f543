package repository

import (
	"context"
	"errors"

	"github.com/bitfantasy/ostrich-ops/internal/ops/entity"
	"gorm.io/gorm"
)

type SaleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

// CreateWithItems inserts the sale header and its line items in one
// transaction so a failed item insert never leaves an orphan header.
func (r *SaleRepository) CreateWithItems(ctx context.Context, sale *entity.Sale, items []entity.SaleItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].SaleID = sale.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		sale.Items = items
		return nil
	})
}

func (r *SaleRepository) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	var s entity.Sale
	err := r.db.WithContext(ctx).Preload("Customer").Preload("Items").Preload("Items.Product").
		Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &s, err
}

func (r *SaleRepository) Update(ctx context.Context, s *entity.Sale) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// UpdateFields applies a partial update without touching other columns.
func (r *SaleRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&entity.Sale{}).Where("id = ?", id).Updates(fields).Error
}

// UpdateWithItems saves the header and replaces all line items in one
// transaction. Used while the sale is still pending.
func (r *SaleRepository) UpdateWithItems(ctx context.Context, sale *entity.Sale, items []entity.SaleItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(sale).Error; err != nil {
			return err
		}
		if err := tx.Where("sale_id = ?", sale.ID).Delete(&entity.SaleItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = ""
			items[i].SaleID = sale.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		sale.Items = items
		return nil
	})
}

// DeleteWithItems removes the sale and its line items atomically.
func (r *SaleRepository) DeleteWithItems(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sale_id = ?", id).Delete(&entity.SaleItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Sale{}).Error
	})
}

// ActiveDispatchCount counts dispatches for the sale that are in transit or
// delivered; such sales must not be deleted.
func (r *SaleRepository) ActiveDispatchCount(ctx context.Context, saleID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Dispatch{}).
		Where("sale_id = ? AND status IN ?", saleID, []string{entity.DispatchStatusInTransit, entity.DispatchStatusDelivered}).
		Count(&count).Error
	return count, err
}

func (r *SaleRepository) DeleteDispatchesBySale(ctx context.Context, saleID string) error {
	return r.db.WithContext(ctx).Where("sale_id = ?", saleID).Delete(&entity.Dispatch{}).Error
}

type SaleListParams struct {
	Search         string
	CustomerID     string
	PaymentStatus  string
	DeliveryStatus string
	Limit          int
}

func (r *SaleRepository) List(ctx context.Context, params SaleListParams) ([]entity.Sale, error) {
	query := r.db.WithContext(ctx).Model(&entity.Sale{}).Preload("Customer").Preload("Items")
	if params.Search != "" {
		kw := "%" + params.Search + "%"
		query = query.Where("sale_number ILIKE ?", kw)
	}
	if params.CustomerID != "" {
		query = query.Where("customer_id = ?", params.CustomerID)
	}
	if params.PaymentStatus != "" {
		query = query.Where("payment_status = ?", params.PaymentStatus)
	}
	if params.DeliveryStatus != "" {
		query = query.Where("delivery_status = ?", params.DeliveryStatus)
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 200
	}
	var sales []entity.Sale
	err := query.Order("sale_date DESC, created_at DESC").Limit(limit).Find(&sales).Error
	return sales, err
}

func (r *SaleRepository) ListByCustomer(ctx context.Context, customerID string) ([]entity.Sale, error) {
	return r.List(ctx, SaleListParams{CustomerID: customerID})
}

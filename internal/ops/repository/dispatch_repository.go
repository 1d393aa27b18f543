package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bitfantasy/ostrich-ops/internal/ops/entity"
	"gorm.io/gorm"
)

type DispatchRepository struct {
	db *gorm.DB
}

func NewDispatchRepository(db *gorm.DB) *DispatchRepository {
	return &DispatchRepository{db: db}
}

func (r *DispatchRepository) Create(ctx context.Context, d *entity.Dispatch) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DispatchRepository) GetByID(ctx context.Context, id string) (*entity.Dispatch, error) {
	var d entity.Dispatch
	err := r.db.WithContext(ctx).Preload("Sale").Preload("Customer").Where("id = ?", id).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &d, err
}

func (r *DispatchRepository) Update(ctx context.Context, d *entity.Dispatch) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DispatchRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Dispatch{}).Error
}

// UpdateStatusWithSale moves the dispatch to status and cascades the mapped
// delivery status onto the parent sale in the same transaction. deliveredAt
// is stamped on both rows when the dispatch reaches delivered.
func (r *DispatchRepository) UpdateStatusWithSale(ctx context.Context, d *entity.Dispatch, status string, deliveredAt *time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		d.Status = status
		if deliveredAt != nil {
			d.DeliveryDate = deliveredAt
		}
		if err := tx.Save(d).Error; err != nil {
			return err
		}
		saleFields := map[string]interface{}{
			"delivery_status": entity.SaleDeliveryStatusFor(status),
		}
		if deliveredAt != nil {
			saleFields["delivery_date"] = deliveredAt
		}
		return tx.Model(&entity.Sale{}).Where("id = ?", d.SaleID).Updates(saleFields).Error
	})
}

type DispatchListParams struct {
	Search     string
	Status     string
	CustomerID string
	SaleID     string
	Limit      int
}

func (r *DispatchRepository) List(ctx context.Context, params DispatchListParams) ([]entity.Dispatch, error) {
	query := r.db.WithContext(ctx).Model(&entity.Dispatch{}).Preload("Sale").Preload("Customer")
	if params.Search != "" {
		kw := "%" + params.Search + "%"
		query = query.Where("dispatch_number ILIKE ? OR driver_name ILIKE ? OR vehicle_number ILIKE ?", kw, kw, kw)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.CustomerID != "" {
		query = query.Where("customer_id = ?", params.CustomerID)
	}
	if params.SaleID != "" {
		query = query.Where("sale_id = ?", params.SaleID)
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 200
	}
	var dispatches []entity.Dispatch
	err := query.Order("created_at DESC").Limit(limit).Find(&dispatches).Error
	return dispatches, err
}

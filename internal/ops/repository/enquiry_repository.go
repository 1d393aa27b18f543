package repository

import (
	"context"
	"errors"

	"github.com/bitfantasy/ostrich-ops/internal/ops/entity"
	"gorm.io/gorm"
)

type EnquiryRepository struct {
	db *gorm.DB
}

func NewEnquiryRepository(db *gorm.DB) *EnquiryRepository {
	return &EnquiryRepository{db: db}
}

func (r *EnquiryRepository) Create(ctx context.Context, e *entity.Enquiry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EnquiryRepository) GetByID(ctx context.Context, id string) (*entity.Enquiry, error) {
	var e entity.Enquiry
	err := r.db.WithContext(ctx).Preload("Customer").Where("id = ?", id).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &e, err
}

func (r *EnquiryRepository) Update(ctx context.Context, e *entity.Enquiry) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EnquiryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Enquiry{}).Error
}

type EnquiryListParams struct {
	Search     string
	Status     string
	CustomerID string
	Limit      int
}

func (r *EnquiryRepository) List(ctx context.Context, params EnquiryListParams) ([]entity.Enquiry, error) {
	query := r.db.WithContext(ctx).Model(&entity.Enquiry{}).Preload("Customer")
	if params.Search != "" {
		kw := "%" + params.Search + "%"
		query = query.Where("enquiry_number ILIKE ? OR subject ILIKE ? OR message ILIKE ?", kw, kw, kw)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.CustomerID != "" {
		query = query.Where("customer_id = ?", params.CustomerID)
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 200
	}
	var enquiries []entity.Enquiry
	err := query.Order("created_at DESC").Limit(limit).Find(&enquiries).Error
	return enquiries, err
}

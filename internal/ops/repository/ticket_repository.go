package repository

import (
	"context"
	"errors"

	"github.com/bitfantasy/ostrich-ops/internal/ops/entity"
	"gorm.io/gorm"
)

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) Create(ctx context.Context, t *entity.ServiceTicket) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// CreateBatch inserts imported tickets in one transaction; either the whole
// spreadsheet lands or none of it does.
func (r *TicketRepository) CreateBatch(ctx context.Context, tickets []entity.ServiceTicket) error {
	if len(tickets) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&tickets).Error
	})
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*entity.ServiceTicket, error) {
	var t entity.ServiceTicket
	err := r.db.WithContext(ctx).Preload("Customer").Preload("Product").Where("id = ?", id).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &t, err
}

func (r *TicketRepository) Update(ctx context.Context, t *entity.ServiceTicket) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TicketRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.ServiceTicket{}).Error
}

type TicketListParams struct {
	Search     string
	Status     string
	Priority   string
	CustomerID string
	AssignedTo string
	Limit      int
}

func (r *TicketRepository) List(ctx context.Context, params TicketListParams) ([]entity.ServiceTicket, error) {
	query := r.db.WithContext(ctx).Model(&entity.ServiceTicket{}).Preload("Customer").Preload("Product")
	if params.Search != "" {
		kw := "%" + params.Search + "%"
		query = query.Where("ticket_number ILIKE ? OR subject ILIKE ? OR description ILIKE ?", kw, kw, kw)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Priority != "" {
		query = query.Where("priority = ?", params.Priority)
	}
	if params.CustomerID != "" {
		query = query.Where("customer_id = ?", params.CustomerID)
	}
	if params.AssignedTo != "" {
		query = query.Where("assigned_to = ?", params.AssignedTo)
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 200
	}
	var tickets []entity.ServiceTicket
	err := query.Order("created_at DESC").Limit(limit).Find(&tickets).Error
	return tickets, err
}

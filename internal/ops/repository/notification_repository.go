package repository

import (
	"context"
	"errors"

	"github.com/bitfantasy/ostrich-ops/internal/ops/entity"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// CreateBatch fans one message out to every recipient atomically.
func (r *NotificationRepository) CreateBatch(ctx context.Context, notifications []entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&notifications).Error
	})
}

func (r *NotificationRepository) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	var n entity.Notification
	err := r.db.WithContext(ctx).Preload("Customer").Where("id = ?", id).First(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &n, err
}

func (r *NotificationRepository) UnreadCount(ctx context.Context, customerID string) (int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Notification{}).Where("is_read = false")
	if customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&entity.Notification{}).Where("id = ?", id).Update("is_read", true).Error
}

type NotificationListParams struct {
	CustomerID string
	UnreadOnly bool
	Limit      int
}

func (r *NotificationRepository) List(ctx context.Context, params NotificationListParams) ([]entity.Notification, error) {
	query := r.db.WithContext(ctx).Model(&entity.Notification{}).Preload("Customer")
	if params.CustomerID != "" {
		query = query.Where("customer_id = ?", params.CustomerID)
	}
	if params.UnreadOnly {
		query = query.Where("is_read = false")
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 200
	}
	var notifications []entity.Notification
	err := query.Order("created_at DESC").Limit(limit).Find(&notifications).Error
	return notifications, err
}

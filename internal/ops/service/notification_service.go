package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bitfantasy/ostrich-ops/internal/ops/entity"
	"github.com/bitfantasy/ostrich-ops/internal/ops/repository"
)

type NotificationService struct {
	repo         *repository.NotificationRepository
	customerRepo *repository.CustomerRepository
}

func NewNotificationService(repo *repository.NotificationRepository, customerRepo *repository.CustomerRepository) *NotificationService {
	return &NotificationService{repo: repo, customerRepo: customerRepo}
}

// CreateNotificationRequest targets one customer, a list, or everyone when
// both fields are empty.
type CreateNotificationRequest struct {
	Title       string   `json:"title" binding:"required"`
	Message     string   `json:"message" binding:"required"`
	CustomerID  string   `json:"customer_id"`
	CustomerIDs []string `json:"customer_ids"`
}

func (s *NotificationService) List(ctx context.Context, params repository.NotificationListParams) ([]entity.Notification, error) {
	return s.repo.List(ctx, params)
}

func (s *NotificationService) Create(ctx context.Context, req *CreateNotificationRequest) ([]entity.Notification, error) {
	title := strings.TrimSpace(req.Title)
	message := strings.TrimSpace(req.Message)
	if title == "" || message == "" {
		return nil, invalidf("title and message are required")
	}

	recipientIDs := req.CustomerIDs
	if req.CustomerID != "" {
		recipientIDs = append(recipientIDs, req.CustomerID)
	}
	if len(recipientIDs) == 0 {
		// Broadcast to the whole customer base.
		customers, err := s.customerRepo.NameList(ctx)
		if err != nil {
			return nil, fmt.Errorf("list recipients: %w", err)
		}
		for _, c := range customers {
			recipientIDs = append(recipientIDs, c.ID)
		}
	} else {
		for _, id := range recipientIDs {
			if _, err := s.customerRepo.GetByID(ctx, id); err != nil {
				if IsNotFound(err) {
					return nil, invalidf("customer %s not found", id)
				}
				return nil, err
			}
		}
	}

	notifications := make([]entity.Notification, 0, len(recipientIDs))
	for _, id := range recipientIDs {
		notifications = append(notifications, entity.Notification{
			Title:      title,
			Message:    message,
			CustomerID: id,
			IsSent:     true,
		})
	}
	if err := s.repo.CreateBatch(ctx, notifications); err != nil {
		return nil, fmt.Errorf("create notifications: %w", err)
	}
	return notifications, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.MarkRead(ctx, id)
}

func (s *NotificationService) UnreadCount(ctx context.Context, customerID string) (int64, error) {
	return s.repo.UnreadCount(ctx, customerID)
}

// Customers returns recipients for the notification composer.
func (s *NotificationService) Customers(ctx context.Context) ([]entity.Customer, error) {
	return s.customerRepo.NameList(ctx)
}

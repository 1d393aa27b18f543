package handler

import (
	"github.com/bitfantasy/ostrich-ops/internal/ops/repository"
	"github.com/bitfantasy/ostrich-ops/internal/ops/service"
	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	svc *service.NotificationService
}

func NewNotificationHandler(svc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List GET /notifications
func (h *NotificationHandler) List(c *gin.Context) {
	params := repository.NotificationListParams{
		CustomerID: c.Query("customer_id"),
		UnreadOnly: c.Query("unread") == "true",
	}
	notifications, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		InternalError(c, "list notifications: "+err.Error())
		return
	}
	Success(c, gin.H{"items": notifications, "total": len(notifications)})
}

// Create POST /notifications
func (h *NotificationHandler) Create(c *gin.Context) {
	var req service.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	notifications, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, gin.H{"items": notifications, "sent": len(notifications)})
}

// Customers GET /notifications/customers
func (h *NotificationHandler) Customers(c *gin.Context) {
	customers, err := h.svc.Customers(c.Request.Context())
	if err != nil {
		InternalError(c, "list customers: "+err.Error())
		return
	}
	items := make([]gin.H, 0, len(customers))
	for _, customer := range customers {
		items = append(items, gin.H{"id": customer.ID, "name": customer.DisplayName()})
	}
	Success(c, gin.H{"items": items})
}

// MarkRead PUT /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.svc.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, nil)
}

// UnreadCount GET /notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.svc.UnreadCount(c.Request.Context(), c.Query("customer_id"))
	if err != nil {
		InternalError(c, "count unread: "+err.Error())
		return
	}
	Success(c, gin.H{"unread": count})
}

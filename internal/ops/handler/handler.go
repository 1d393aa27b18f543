package handler

import (
	"errors"

	"github.com/bitfantasy/ostrich-ops/internal/config"
	"github.com/bitfantasy/ostrich-ops/internal/ops/repository"
	"github.com/bitfantasy/ostrich-ops/internal/ops/service"
	"github.com/gin-gonic/gin"
)

// Handlers bundles every HTTP handler group.
type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Customer     *CustomerHandler
	Category     *CategoryHandler
	Product      *ProductHandler
	Sale         *SaleHandler
	Dispatch     *DispatchHandler
	Ticket       *TicketHandler
	Enquiry      *EnquiryHandler
	Notification *NotificationHandler
	Region       *RegionHandler
	Dashboard    *DashboardHandler
}

func NewHandlers(svc *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(svc.Auth, cfg),
		User:         NewUserHandler(svc.User),
		Customer:     NewCustomerHandler(svc.Customer),
		Category:     NewCategoryHandler(svc.Category),
		Product:      NewProductHandler(svc.Product),
		Sale:         NewSaleHandler(svc.Sale),
		Dispatch:     NewDispatchHandler(svc.Dispatch),
		Ticket:       NewTicketHandler(svc.Ticket),
		Enquiry:      NewEnquiryHandler(svc.Enquiry),
		Notification: NewNotificationHandler(svc.Notification),
		Region:       NewRegionHandler(svc.Region).WithUserService(svc.User),
		Dashboard:    NewDashboardHandler(svc.Dashboard),
	}
}

// Response is the JSON envelope every endpoint returns.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{Code: 0, Message: "success", Data: data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{Code: 0, Message: "success", Data: data})
}

// Error writes an envelope whose HTTP status is code/100.
func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{Code: code, Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, 40100, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, 40300, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

func TooManyRequests(c *gin.Context, message string) {
	Error(c, 42900, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// RespondError maps a service error onto the envelope. Validation,
// uniqueness and state-guard failures are all 400s with distinct codes.
func RespondError(c *gin.Context, err error) {
	var (
		validationErr *service.ValidationError
		conflictErr   *service.ConflictError
		stateErr      *service.StateError
		forbiddenErr  *service.ForbiddenError
		authErr       *service.AuthError
		limitedErr    *service.RateLimitedError
	)
	switch {
	case errors.As(err, &validationErr):
		BadRequest(c, validationErr.Message)
	case errors.As(err, &conflictErr):
		Error(c, 40001, conflictErr.Message)
	case errors.As(err, &stateErr):
		Error(c, 40002, stateErr.Message)
	case errors.As(err, &forbiddenErr):
		Forbidden(c, forbiddenErr.Message)
	case errors.As(err, &authErr):
		Unauthorized(c, authErr.Message)
	case errors.As(err, &limitedErr):
		TooManyRequests(c, limitedErr.Message)
	case errors.Is(err, repository.ErrNotFound):
		NotFound(c, "record not found")
	default:
		InternalError(c, err.Error())
	}
}

// GetUserID reads the authenticated user id set by the JWT middleware.
func GetUserID(c *gin.Context) string {
	userID, _ := c.Get("user_id")
	if id, ok := userID.(string); ok {
		return id
	}
	return ""
}

// GetUserRole reads the authenticated role set by the JWT middleware.
func GetUserRole(c *gin.Context) string {
	role, _ := c.Get("role")
	if r, ok := role.(string); ok {
		return r
	}
	return ""
}

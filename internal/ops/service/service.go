package service

import (
	"github.com/bitfantasy/ostrich-ops/internal/config"
	"github.com/bitfantasy/ostrich-ops/internal/ops/repository"
	"github.com/redis/go-redis/v9"
)

// Services wires every business service over the repository set.
type Services struct {
	Auth         *AuthService
	User         *UserService
	Customer     *CustomerService
	Category     *CategoryService
	Product      *ProductService
	Sale         *SaleService
	Dispatch     *DispatchService
	Ticket       *TicketService
	Enquiry      *EnquiryService
	Notification *NotificationService
	Region       *RegionService
	Dashboard    *DashboardService
}

// NewServices builds the service set. rdb may be nil; the limiter and the
// dashboard cache then run on in-process state.
func NewServices(repos *repository.Repositories, rdb *redis.Client, cfg *config.Config) *Services {
	limiter := NewLoginLimiter(rdb, cfg.Auth.MaxAttempts, cfg.Auth.AttemptWindow)
	cache := NewResponseCache(rdb)

	return &Services{
		Auth:         NewAuthService(repos.User, limiter, cfg),
		User:         NewUserService(repos.User),
		Customer:     NewCustomerService(repos.Customer, repos.Sequence),
		Category:     NewCategoryService(repos.Category),
		Product:      NewProductService(repos.Product, repos.Category),
		Sale:         NewSaleService(repos.Sale, repos.Customer, repos.Product, repos.Sequence),
		Dispatch:     NewDispatchService(repos.Dispatch, repos.Sale, repos.Sequence),
		Ticket:       NewTicketService(repos.Ticket, repos.Customer, repos.Product, repos.Sequence),
		Enquiry:      NewEnquiryService(repos.Enquiry, repos.Customer, repos.Sequence),
		Notification: NewNotificationService(repos.Notification, repos.Customer),
		Region:       NewRegionService(repos.Region, repos.User),
		Dashboard:    NewDashboardService(repos.Dashboard, cache),
	}
}

package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bitfantasy/ostrich-ops/internal/ops/entity"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Migrate creates the schema for every aggregate plus the partial unique
// indexes AutoMigrate cannot express. Customers are soft-deleted, so their
// phone and email must only be unique among live rows, otherwise a deleted
// customer's identity could never be registered again.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entity.DocSequence{},
		&entity.User{},
		&entity.Region{},
		&entity.Customer{},
		&entity.ProductCategory{},
		&entity.Product{},
		&entity.Sale{},
		&entity.SaleItem{},
		&entity.Dispatch{},
		&entity.ServiceTicket{},
		&entity.Enquiry{},
		&entity.Notification{},
	); err != nil {
		return err
	}
	for _, stmt := range []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS uidx_customers_phone_live ON customers (phone) WHERE deleted_at IS NULL",
		"CREATE UNIQUE INDEX IF NOT EXISTS uidx_customers_email_live ON customers (email) WHERE deleted_at IS NULL",
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}

// Repositories is the data-access layer collection.
type Repositories struct {
	Customer     *CustomerRepository
	Category     *CategoryRepository
	Product      *ProductRepository
	Sale         *SaleRepository
	Dispatch     *DispatchRepository
	Ticket       *TicketRepository
	Enquiry      *EnquiryRepository
	Notification *NotificationRepository
	User         *UserRepository
	Region       *RegionRepository
	Sequence     *SequenceRepository
	Dashboard    *DashboardRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Customer:     NewCustomerRepository(db),
		Category:     NewCategoryRepository(db),
		Product:      NewProductRepository(db),
		Sale:         NewSaleRepository(db),
		Dispatch:     NewDispatchRepository(db),
		Ticket:       NewTicketRepository(db),
		Enquiry:      NewEnquiryRepository(db),
		Notification: NewNotificationRepository(db),
		User:         NewUserRepository(db),
		Region:       NewRegionRepository(db),
		Sequence:     NewSequenceRepository(db),
		Dashboard:    NewDashboardRepository(db),
	}
}

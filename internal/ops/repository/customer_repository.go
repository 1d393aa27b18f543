package repository

import (
	"context"
	"errors"

	"github.com/bitfantasy/ostrich-ops/internal/ops/entity"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *entity.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.db.WithContext(ctx).Where("id = ? AND deleted_at IS NULL", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &c, err
}

func (r *CustomerRepository) Update(ctx context.Context, c *entity.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&entity.Customer{}).Where("id = ?", id).
		Update("deleted_at", gorm.Expr("NOW()")).Error
}

// PhoneExists reports whether another customer already uses phone.
// excludeID may be empty on create.
func (r *CustomerRepository) PhoneExists(ctx context.Context, phone, excludeID string) (bool, error) {
	query := r.db.WithContext(ctx).Model(&entity.Customer{}).Where("phone = ? AND deleted_at IS NULL", phone)
	if excludeID != "" {
		query = query.Where("id != ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// EmailExists reports whether another customer already uses email.
func (r *CustomerRepository) EmailExists(ctx context.Context, email, excludeID string) (bool, error) {
	query := r.db.WithContext(ctx).Model(&entity.Customer{}).Where("email = ? AND deleted_at IS NULL", email)
	if excludeID != "" {
		query = query.Where("id != ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// GetByPhoneOrCode resolves a customer by exact phone or customer code.
// Used by the spreadsheet import path.
func (r *CustomerRepository) GetByPhoneOrCode(ctx context.Context, key string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.db.WithContext(ctx).Where("(phone = ? OR customer_code = ?) AND deleted_at IS NULL", key, key).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &c, err
}

type CustomerListParams struct {
	Search string
	Type   string
	Limit  int
}

// List returns customers newest-first. Search matches names, email, phone and
// customer code; Type filters either customer_type or registration_source
// (mobile_app / web), mirroring the admin list view.
func (r *CustomerRepository) List(ctx context.Context, params CustomerListParams) ([]entity.Customer, error) {
	query := r.db.WithContext(ctx).Model(&entity.Customer{}).Where("deleted_at IS NULL")
	if params.Search != "" {
		kw := "%" + params.Search + "%"
		query = query.Where(
			"contact_person ILIKE ? OR individual_name ILIKE ? OR company_name ILIKE ? OR email ILIKE ? OR phone LIKE ? OR customer_code ILIKE ?",
			kw, kw, kw, kw, kw, kw,
		)
	}
	if params.Type != "" && params.Type != "all" {
		if params.Type == entity.RegistrationSourceMobile || params.Type == entity.RegistrationSourceWeb {
			query = query.Where("LOWER(registration_source) = LOWER(?)", params.Type)
		} else {
			query = query.Where("LOWER(customer_type) = LOWER(?)", params.Type)
		}
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 200
	}
	var customers []entity.Customer
	err := query.Order("created_at DESC").Limit(limit).Find(&customers).Error
	return customers, err
}

// DependentCounts returns how many sales and service tickets reference the
// customer; deletion is blocked while either is non-zero.
func (r *CustomerRepository) DependentCounts(ctx context.Context, id string) (salesCount, ticketsCount int64, err error) {
	if err = r.db.WithContext(ctx).Model(&entity.Sale{}).Where("customer_id = ?", id).Count(&salesCount).Error; err != nil {
		return
	}
	err = r.db.WithContext(ctx).Model(&entity.ServiceTicket{}).Where("customer_id = ?", id).Count(&ticketsCount).Error
	return
}

// NameList returns id + display name pairs for notification recipients.
func (r *CustomerRepository) NameList(ctx context.Context) ([]entity.Customer, error) {
	var customers []entity.Customer
	err := r.db.WithContext(ctx).Model(&entity.Customer{}).
		Where("deleted_at IS NULL").
		Order("COALESCE(NULLIF(company_name, ''), NULLIF(contact_person, ''), individual_name)").
		Find(&customers).Error
	return customers, err
}

package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/bitfantasy/ostrich-ops/internal/ops/entity"
	"github.com/bitfantasy/ostrich-ops/internal/ops/repository"
)

type CustomerService struct {
	repo    *repository.CustomerRepository
	seqRepo *repository.SequenceRepository
}

func NewCustomerService(repo *repository.CustomerRepository, seqRepo *repository.SequenceRepository) *CustomerService {
	return &CustomerService{repo: repo, seqRepo: seqRepo}
}

// CreateCustomerRequest carries the customer intake form.
type CreateCustomerRequest struct {
	CustomerType       string `json:"customer_type" binding:"required"`
	IndividualName     string `json:"individual_name"`
	CompanyName        string `json:"company_name"`
	ContactPerson      string `json:"contact_person" binding:"required"`
	Email              string `json:"email" binding:"required"`
	Phone              string `json:"phone" binding:"required"`
	Password           string `json:"password"`
	Address            string `json:"address" binding:"required"`
	City               string `json:"city" binding:"required"`
	State              string `json:"state" binding:"required"`
	Country            string `json:"country"`
	PinCode            string `json:"pin_code" binding:"required"`
	RegistrationSource string `json:"registration_source"`
	HasMobileAccess    bool   `json:"has_mobile_access"`
}

type UpdateCustomerRequest struct {
	CustomerType    *string `json:"customer_type"`
	IndividualName  *string `json:"individual_name"`
	CompanyName     *string `json:"company_name"`
	ContactPerson   *string `json:"contact_person"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	Password        *string `json:"password"`
	Address         *string `json:"address"`
	City            *string `json:"city"`
	State           *string `json:"state"`
	Country         *string `json:"country"`
	PinCode         *string `json:"pin_code"`
	IsVerified      *bool   `json:"is_verified"`
	HasMobileAccess *bool   `json:"has_mobile_access"`
}

func (s *CustomerService) List(ctx context.Context, params repository.CustomerListParams) ([]entity.Customer, error) {
	return s.repo.List(ctx, params)
}

func (s *CustomerService) Get(ctx context.Context, id string) (*entity.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CustomerService) Create(ctx context.Context, req *CreateCustomerRequest) (*entity.Customer, error) {
	customerType := strings.ToUpper(strings.TrimSpace(req.CustomerType))
	if customerType != entity.CustomerTypeB2C && customerType != entity.CustomerTypeB2B {
		return nil, invalidf("customer type must be B2C or B2B")
	}
	if err := ValidateContactPerson(req.ContactPerson); err != nil {
		return nil, err
	}
	if err := ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	phone, err := ValidatePhone(req.Phone)
	if err != nil {
		return nil, err
	}
	if err := ValidateAddress(req.Address); err != nil {
		return nil, err
	}
	if err := ValidatePlace("city", req.City); err != nil {
		return nil, err
	}
	if err := ValidatePlace("state", req.State); err != nil {
		return nil, err
	}
	if err := ValidatePinCode(req.PinCode); err != nil {
		return nil, err
	}

	if exists, err := s.repo.PhoneExists(ctx, phone, ""); err != nil {
		return nil, fmt.Errorf("check phone: %w", err)
	} else if exists {
		return nil, conflictf("customer with this phone number already exists")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if exists, err := s.repo.EmailExists(ctx, email, ""); err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	} else if exists {
		return nil, conflictf("customer with this email already exists")
	}

	code, err := s.seqRepo.NextCode(ctx, entity.CodePrefixCustomer, entity.CodeWidthCustomer)
	if err != nil {
		return nil, err
	}

	country := strings.TrimSpace(req.Country)
	if country == "" {
		country = "India"
	}
	source := req.RegistrationSource
	if source == "" {
		source = entity.RegistrationSourceWeb
	}

	customer := &entity.Customer{
		CustomerCode:       code,
		CustomerType:       customerType,
		IndividualName:     strings.TrimSpace(req.IndividualName),
		CompanyName:        strings.TrimSpace(req.CompanyName),
		ContactPerson:      strings.TrimSpace(req.ContactPerson),
		Email:              email,
		Phone:              phone,
		Address:            strings.TrimSpace(req.Address),
		City:               strings.TrimSpace(req.City),
		State:              strings.TrimSpace(req.State),
		Country:            country,
		PinCode:            strings.TrimSpace(req.PinCode),
		RegistrationSource: source,
		HasMobileAccess:    req.HasMobileAccess,
	}
	if req.Password != "" {
		customer.PasswordHash = HashCustomerPassword(req.Password)
		customer.HasMobileAccess = true
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return customer, nil
}

func (s *CustomerService) Update(ctx context.Context, id string, req *UpdateCustomerRequest) (*entity.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CustomerType != nil {
		t := strings.ToUpper(strings.TrimSpace(*req.CustomerType))
		if t != entity.CustomerTypeB2C && t != entity.CustomerTypeB2B {
			return nil, invalidf("customer type must be B2C or B2B")
		}
		customer.CustomerType = t
	}
	if req.ContactPerson != nil {
		if err := ValidateContactPerson(*req.ContactPerson); err != nil {
			return nil, err
		}
		customer.ContactPerson = strings.TrimSpace(*req.ContactPerson)
	}
	if req.Email != nil {
		if err := ValidateEmail(*req.Email); err != nil {
			return nil, err
		}
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if exists, err := s.repo.EmailExists(ctx, email, id); err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		} else if exists {
			return nil, conflictf("customer with this email already exists")
		}
		customer.Email = email
	}
	if req.Phone != nil {
		phone, err := ValidatePhone(*req.Phone)
		if err != nil {
			return nil, err
		}
		if exists, err := s.repo.PhoneExists(ctx, phone, id); err != nil {
			return nil, fmt.Errorf("check phone: %w", err)
		} else if exists {
			return nil, conflictf("customer with this phone number already exists")
		}
		customer.Phone = phone
	}
	if req.Address != nil {
		if err := ValidateAddress(*req.Address); err != nil {
			return nil, err
		}
		customer.Address = strings.TrimSpace(*req.Address)
	}
	if req.City != nil {
		if err := ValidatePlace("city", *req.City); err != nil {
			return nil, err
		}
		customer.City = strings.TrimSpace(*req.City)
	}
	if req.State != nil {
		if err := ValidatePlace("state", *req.State); err != nil {
			return nil, err
		}
		customer.State = strings.TrimSpace(*req.State)
	}
	if req.PinCode != nil {
		if err := ValidatePinCode(*req.PinCode); err != nil {
			return nil, err
		}
		customer.PinCode = strings.TrimSpace(*req.PinCode)
	}
	if req.IndividualName != nil {
		customer.IndividualName = strings.TrimSpace(*req.IndividualName)
	}
	if req.CompanyName != nil {
		customer.CompanyName = strings.TrimSpace(*req.CompanyName)
	}
	if req.Country != nil {
		customer.Country = strings.TrimSpace(*req.Country)
	}
	if req.IsVerified != nil {
		customer.IsVerified = *req.IsVerified
	}
	if req.HasMobileAccess != nil {
		customer.HasMobileAccess = *req.HasMobileAccess
	}
	if req.Password != nil && *req.Password != "" {
		customer.PasswordHash = HashCustomerPassword(*req.Password)
	}

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return customer, nil
}

// Delete refuses to remove a customer that still has sales or service
// tickets; the error message carries the counts.
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	sales, tickets, err := s.repo.DependentCounts(ctx, id)
	if err != nil {
		return fmt.Errorf("check customer references: %w", err)
	}
	if sales > 0 || tickets > 0 {
		return statef("cannot delete customer: %d sales and %d service tickets reference this customer", sales, tickets)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

// HashCustomerPassword stores mobile-app customer passwords as hex SHA-256.
// Staff accounts use bcrypt; customer records keep the mobile app's scheme.
func HashCustomerPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// IsNotFound reports whether err is the repository's missing-row error.
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

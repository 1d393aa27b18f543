package entity

import (
	"time"
)

// CustomerType values
const (
	CustomerTypeB2C = "B2C"
	CustomerTypeB2B = "B2B"
)

// RegistrationSource values
const (
	RegistrationSourceWeb    = "web"
	RegistrationSourceMobile = "mobile_app"
)

// Customer is a registered buyer, either an individual (B2C) or a company (B2B).
type Customer struct {
	ID                 string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CustomerCode       string     `json:"customer_code" gorm:"size:50;not null;uniqueIndex"`
	CustomerType       string     `json:"customer_type" gorm:"size:20;not null;default:B2C"`
	IndividualName     string     `json:"individual_name" gorm:"size:200"`
	CompanyName        string     `json:"company_name" gorm:"size:200"`
	ContactPerson      string     `json:"contact_person" gorm:"size:100"`
	Email              string     `json:"email" gorm:"size:100;not null;index"`
	Phone              string     `json:"phone" gorm:"size:20;not null;index"`
	PasswordHash       string     `json:"-" gorm:"size:128"`
	Address            string     `json:"address" gorm:"size:500"`
	City               string     `json:"city" gorm:"size:100"`
	State              string     `json:"state" gorm:"size:100"`
	Country            string     `json:"country" gorm:"size:100;default:India"`
	PinCode            string     `json:"pin_code" gorm:"size:10"`
	RegistrationSource string     `json:"registration_source" gorm:"size:20;default:web"`
	IsVerified         bool       `json:"is_verified" gorm:"default:false"`
	HasMobileAccess    bool       `json:"has_mobile_access" gorm:"default:false"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	DeletedAt          *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (Customer) TableName() string {
	return "customers"
}

// DisplayName mirrors the admin list view: contact person first, then the
// individual or company name.
func (c *Customer) DisplayName() string {
	if c.ContactPerson != "" {
		return c.ContactPerson
	}
	if c.IndividualName != "" {
		return c.IndividualName
	}
	if c.CompanyName != "" {
		return c.CompanyName
	}
	return "Unknown"
}

package entity

import (
	"time"
)

// EnquiryStatus values. A missing status defaults to NEW.
const (
	EnquiryStatusNew       = "NEW"
	EnquiryStatusContacted = "contacted"
	EnquiryStatusQuoted    = "quoted"
	EnquiryStatusConverted = "converted"
	EnquiryStatusClosed    = "closed"
)

// Enquiry is a pre-sale inquiry from a customer.
type Enquiry struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EnquiryNumber string     `json:"enquiry_number" gorm:"size:20;not null;uniqueIndex"`
	CustomerID    string     `json:"customer_id" gorm:"type:uuid;not null;index"`
	Subject       string     `json:"subject" gorm:"size:200"`
	Message       string     `json:"message" gorm:"type:text"`
	Status        string     `json:"status" gorm:"size:20;not null;default:NEW"`
	FollowUpDate  *time.Time `json:"follow_up_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}

func (Enquiry) TableName() string {
	return "enquiries"
}

// ValidEnquiryStatus reports whether s is one of the accepted statuses.
// NEW is stored uppercase; the follow-up states use the original lowercase
// vocabulary the frontend sends.
func ValidEnquiryStatus(s string) bool {
	switch s {
	case EnquiryStatusNew, EnquiryStatusContacted, EnquiryStatusQuoted, EnquiryStatusConverted, EnquiryStatusClosed:
		return true
	}
	return false
}

package entity

import (
	"time"
)

// TicketPriority values
const (
	TicketPriorityLow      = "LOW"
	TicketPriorityMedium   = "MEDIUM"
	TicketPriorityHigh     = "HIGH"
	TicketPriorityCritical = "CRITICAL"
)

// TicketStatus values
const (
	TicketStatusOpen       = "OPEN"
	TicketStatusInProgress = "IN_PROGRESS"
	TicketStatusResolved   = "RESOLVED"
	TicketStatusClosed     = "CLOSED"
)

// ServiceTicket is a support or warranty case tied to a customer and,
// optionally, one of their products.
type ServiceTicket struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	TicketNumber string     `json:"ticket_number" gorm:"size:20;not null;uniqueIndex"`
	CustomerID   string     `json:"customer_id" gorm:"type:uuid;not null;index"`
	ProductID    *string    `json:"product_id" gorm:"type:uuid;index"`
	Subject      string     `json:"subject" gorm:"size:200;not null"`
	Description  string     `json:"description" gorm:"type:text"`
	Priority     string     `json:"priority" gorm:"size:20;not null;default:MEDIUM"`
	Status       string     `json:"status" gorm:"size:20;not null;default:OPEN"`
	AssignedTo   string     `json:"assigned_to" gorm:"size:64"`
	Resolution   string     `json:"resolution" gorm:"type:text"`
	ResolvedAt   *time.Time `json:"resolved_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Product  *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (ServiceTicket) TableName() string {
	return "service_tickets"
}

// ValidTicketPriority reports whether p is one of the accepted priorities.
func ValidTicketPriority(p string) bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityCritical:
		return true
	}
	return false
}

// ValidTicketStatus reports whether s is one of the accepted statuses.
func ValidTicketStatus(s string) bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

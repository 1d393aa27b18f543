package entity

import (
	"time"
)

// Notification is an append-only customer message record.
type Notification struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title      string    `json:"title" gorm:"size:200;not null"`
	Message    string    `json:"message" gorm:"type:text"`
	CustomerID string    `json:"customer_id" gorm:"type:uuid;index"`
	IsRead     bool      `json:"is_read" gorm:"default:false"`
	IsSent     bool      `json:"is_sent" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}

func (Notification) TableName() string {
	return "notifications"
}

package entity

import (
	"time"
)

// DispatchStatus values
const (
	DispatchStatusPending   = "pending"
	DispatchStatusInTransit = "in_transit"
	DispatchStatusDelivered = "delivered"
	DispatchStatusCancelled = "cancelled"
)

// Dispatch is a shipment record for a sale. Status changes cascade onto the
// parent sale's delivery status.
type Dispatch struct {
	ID             string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	DispatchNumber string     `json:"dispatch_number" gorm:"size:20;not null;uniqueIndex"`
	SaleID         string     `json:"sale_id" gorm:"type:uuid;not null;index"`
	CustomerID     string     `json:"customer_id" gorm:"type:uuid;index"`
	DriverName     string     `json:"driver_name" gorm:"size:100"`
	DriverPhone    string     `json:"driver_phone" gorm:"size:20"`
	VehicleNumber  string     `json:"vehicle_number" gorm:"size:20"`
	DispatchDate   time.Time  `json:"dispatch_date"`
	DeliveryDate   *time.Time `json:"delivery_date"`
	Status         string     `json:"status" gorm:"size:20;not null;default:pending"`
	Notes          string     `json:"notes" gorm:"type:text"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Sale     *Sale     `json:"sale,omitempty" gorm:"foreignKey:SaleID"`
	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}

func (Dispatch) TableName() string {
	return "dispatches"
}

func ValidDispatchStatus(status string) bool {
	switch status {
	case DispatchStatusPending, DispatchStatusInTransit, DispatchStatusDelivered, DispatchStatusCancelled:
		return true
	}
	return false
}

// SaleDeliveryStatusFor maps a dispatch status onto the parent sale's
// delivery status. Unknown values fall back to processing.
func SaleDeliveryStatusFor(dispatchStatus string) string {
	switch dispatchStatus {
	case DispatchStatusPending:
		return DeliveryStatusProcessing
	case DispatchStatusInTransit:
		return DeliveryStatusShipping
	case DispatchStatusDelivered:
		return DeliveryStatusDelivered
	default:
		return DeliveryStatusProcessing
	}
}

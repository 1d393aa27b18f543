package entity

import (
	"time"
)

// PaymentStatus values
const (
	PaymentStatusPending = "pending"
	PaymentStatusPartial = "partial"
	PaymentStatusPaid    = "paid"
)

// DeliveryStatus values. Once a sale leaves pending, only its payment status
// may change through the update path.
const (
	DeliveryStatusPending    = "pending"
	DeliveryStatusProcessing = "processing"
	DeliveryStatusShipping   = "shipping"
	DeliveryStatusDelivered  = "delivered"
)

// Sale is an order header; line items hang off SaleItem.
type Sale struct {
	ID             string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SaleNumber     string     `json:"sale_number" gorm:"size:20;not null;uniqueIndex"`
	CustomerID     string     `json:"customer_id" gorm:"type:uuid;not null;index"`
	SaleDate       time.Time  `json:"sale_date"`
	TotalAmount    float64    `json:"total_amount" gorm:"type:decimal(12,2);default:0"`
	Discount       float64    `json:"discount" gorm:"type:decimal(12,2);default:0"`
	FinalAmount    float64    `json:"final_amount" gorm:"type:decimal(12,2);default:0"`
	PaymentStatus  string     `json:"payment_status" gorm:"size:20;not null;default:pending"`
	DeliveryStatus string     `json:"delivery_status" gorm:"size:20;not null;default:pending"`
	DeliveryDate   *time.Time `json:"delivery_date"`
	Notes          string     `json:"notes" gorm:"type:text"`
	CreatedBy      string     `json:"created_by" gorm:"size:64"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Customer *Customer  `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Items    []SaleItem `json:"items,omitempty" gorm:"foreignKey:SaleID"`
}

func (Sale) TableName() string {
	return "sales"
}

// SaleItem is one order line. TotalPrice = Quantity * UnitPrice, computed
// server-side; items are replaced wholesale when a pending sale is updated.
type SaleItem struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SaleID     string    `json:"sale_id" gorm:"type:uuid;not null;index"`
	ProductID  string    `json:"product_id" gorm:"type:uuid;not null"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	UnitPrice  float64   `json:"unit_price" gorm:"type:decimal(12,2);not null"`
	TotalPrice float64   `json:"total_price" gorm:"type:decimal(12,2);not null"`
	CreatedAt  time.Time `json:"created_at"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (SaleItem) TableName() string {
	return "sale_items"
}

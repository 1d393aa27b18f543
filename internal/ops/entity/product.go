package entity

import (
	"time"
)

// StockStatus values
const (
	StockStatusInStock    = "in_stock"
	StockStatusLowStock   = "low_stock"
	StockStatusOutOfStock = "out_of_stock"
)

// ProductCategory groups products for the storefront; display_order drives
// the listing sequence.
type ProductCategory struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Description  string    `json:"description" gorm:"size:500"`
	DisplayOrder int       `json:"display_order" gorm:"default:0"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (ProductCategory) TableName() string {
	return "product_categories"
}

// Product is a catalog item. ProductCode is the caller-supplied SKU in the
// PROD00000 format; OfferPrice, when set, must stay below Price.
type Product struct {
	ID               string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProductCode      string    `json:"sku" gorm:"size:20;index"`
	Name             string    `json:"name" gorm:"size:200;not null"`
	Description      string    `json:"description" gorm:"type:text"`
	Price            float64   `json:"price" gorm:"type:decimal(12,2);not null"`
	OfferPrice       *float64  `json:"offer_price" gorm:"type:decimal(12,2)"`
	StockQuantity    int       `json:"stock_quantity" gorm:"default:0"`
	StockStatus      string    `json:"stock_status" gorm:"size:20;default:in_stock"`
	ImageURL         string    `json:"image_url" gorm:"size:500"`
	CategoryID       string    `json:"category_id" gorm:"type:uuid;index"`
	IsTrending       bool      `json:"is_trending" gorm:"default:false"`
	TrendingPosition *int      `json:"trending_position"`
	IsActive         bool      `json:"is_active" gorm:"default:true"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Category *ProductCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

func (Product) TableName() string {
	return "products"
}

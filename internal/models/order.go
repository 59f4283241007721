// internal/models/order.go
package models

import (
	"github.com/google/uuid"
)

// Order is the immutable record of a completed checkout. Amounts and shipping
// fields are computed once at creation and never recomputed.
type Order struct {
	BaseModel
	OrderNumber string      `json:"order_number" gorm:"uniqueIndex;size:50;not null"`
	UserID      uuid.UUID   `json:"user_id" gorm:"type:uuid;not null;index"`
	Status      OrderStatus `json:"status" gorm:"type:varchar(30);default:'pending';index"`

	PaymentMethod    PaymentMethod `json:"payment_method" gorm:"type:varchar(30)"`
	UPIID            string        `json:"upi_id" gorm:"size:100"`
	PaymentReference string        `json:"payment_reference" gorm:"size:255"`

	// Amounts, frozen at checkout
	Subtotal    float64 `json:"subtotal" gorm:"type:decimal(10,2);default:0"`
	ShippingFee float64 `json:"shipping_fee" gorm:"type:decimal(10,2);default:0"`
	TotalAmount float64 `json:"total_amount" gorm:"type:decimal(10,2);default:0"`

	// Shipping snapshot
	ShippingName    string `json:"shipping_name" gorm:"size:100;not null"`
	ShippingEmail   string `json:"shipping_email" gorm:"size:120;not null"`
	ShippingPhone   string `json:"shipping_phone" gorm:"size:20;not null"`
	ShippingAddress string `json:"shipping_address" gorm:"type:text;not null"`
	ShippingCity    string `json:"shipping_city" gorm:"size:100;not null"`
	ShippingState   string `json:"shipping_state" gorm:"size:100;not null"`
	ShippingPincode string `json:"shipping_pincode" gorm:"size:10;not null"`

	// Relationships
	Customer User        `json:"customer,omitempty" gorm:"foreignKey:UserID"`
	Items    []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem snapshots the artwork title and price at the time of purchase.
// It is intentionally decoupled from the live Artwork row so order history
// stays accurate when artworks are edited or deactivated later.
type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ArtworkID uuid.UUID `json:"artwork_id" gorm:"type:uuid;not null;index"`

	ArtworkTitle string  `json:"artwork_title" gorm:"size:200;not null"`
	ArtworkPrice float64 `json:"artwork_price" gorm:"type:decimal(10,2);not null"`
	Quantity     int     `json:"quantity" gorm:"not null"`
	Subtotal     float64 `json:"subtotal" gorm:"type:decimal(10,2);not null"`
}

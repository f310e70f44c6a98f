// internal/models/order.go
package models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	BaseModel
	OrderNumber      string          `json:"order_number" gorm:"size:20;not null;uniqueIndex"`
	CustomerName     string          `json:"customer_name" gorm:"size:200;not null"`
	CustomerEmail    string          `json:"customer_email" gorm:"size:200;not null"`
	CustomerPhone    string          `json:"customer_phone" gorm:"size:20;not null"`
	Address          string          `json:"address" gorm:"type:text"`
	City             string          `json:"city" gorm:"size:100"`
	Pincode          string          `json:"pincode" gorm:"size:10"`
	Subtotal         decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2);not null"`
	DeliveryCharge   decimal.Decimal `json:"delivery_charge" gorm:"type:decimal(10,2);default:0"`
	Total            decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null"`
	Status           OrderStatus     `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	PaymentMethod    PaymentMethod   `json:"payment_method" gorm:"type:varchar(30);default:'cod'"`
	PaymentReference string          `json:"payment_reference,omitempty" gorm:"size:255;index"`
	Notes            string          `json:"notes" gorm:"type:text"`

	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem freezes one cart line at checkout time. Name and unit price
// are snapshots so later product edits never change historical orders.
type OrderItem struct {
	BaseModel
	OrderID     uuid.UUID       `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `json:"product_id" gorm:"type:uuid;not null;index"`
	ProductName string          `json:"product_name" gorm:"size:200;not null"`
	UnitPrice   decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	Quantity    int             `json:"quantity" gorm:"not null;default:1"`
	Color       string          `json:"color" gorm:"size:50"`
}

// LineTotal is unit price times quantity.
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// FormatOrderNumber renders the human-readable order number for the
// given sequence value, e.g. PC3D-00042.
func FormatOrderNumber(seq int64) string {
	return fmt.Sprintf("PC3D-%05d", seq)
}

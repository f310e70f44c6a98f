// internal/models/cart.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is the per-visitor shopping cart kept in the session store, not
// the database. Lines hold quantities only; pricing always comes from
// the live catalog until checkout freezes it into an Order.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartLine `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Color     string    `json:"color,omitempty"`
}

// Line returns a pointer to the line for the given product, or nil.
func (c *Cart) Line(productID uuid.UUID) *CartLine {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// RemoveLine drops the line for the given product. Removing an absent
// product is a no-op.
func (c *Cart) RemoveLine(productID uuid.UUID) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalQuantity is the sum of all line quantities.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// CartView is the priced rendering of a cart returned to callers.
type CartView struct {
	Items          []CartViewItem  `json:"items"`
	ItemCount      int             `json:"item_count"`
	TotalQuantity  int             `json:"total_quantity"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DeliveryCharge decimal.Decimal `json:"delivery_charge"`
	Total          decimal.Decimal `json:"total"`
}

type CartViewItem struct {
	ProductID   uuid.UUID       `json:"product_id"`
	Slug        string          `json:"slug"`
	Name        string          `json:"name"`
	Image       string          `json:"image,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Color       string          `json:"color,omitempty"`
	LineTotal   decimal.Decimal `json:"line_total"`
	StockStatus StockStatus     `json:"stock_status"`
}

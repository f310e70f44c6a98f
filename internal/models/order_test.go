// internal/models/order_test.go
package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"pending payment to pending", OrderStatusPendingPayment, OrderStatusPending, true},
		{"pending to confirmed", OrderStatusPending, OrderStatusConfirmed, true},
		{"confirmed to processing", OrderStatusConfirmed, OrderStatusProcessing, true},
		{"processing to shipped", OrderStatusProcessing, OrderStatusShipped, true},
		{"shipped to delivered", OrderStatusShipped, OrderStatusDelivered, true},
		{"no skipping ahead", OrderStatusPending, OrderStatusShipped, false},
		{"no going backwards", OrderStatusShipped, OrderStatusProcessing, false},
		{"cancel from pending", OrderStatusPending, OrderStatusCancelled, true},
		{"cancel from shipped", OrderStatusShipped, OrderStatusCancelled, true},
		{"cancel from pending payment", OrderStatusPendingPayment, OrderStatusCancelled, true},
		{"no cancel after delivery", OrderStatusDelivered, OrderStatusCancelled, false},
		{"no cancel twice", OrderStatusCancelled, OrderStatusCancelled, false},
		{"delivered is final", OrderStatusDelivered, OrderStatusPending, false},
		{"cancelled is final", OrderStatusCancelled, OrderStatusPending, false},
		{"no self transition", OrderStatusPending, OrderStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatusIsTerminal(t *testing.T) {
	assert.True(t, OrderStatusDelivered.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.False(t, OrderStatusShipped.IsTerminal())
	assert.False(t, OrderStatusPendingPayment.IsTerminal())
}

func TestOrderStatusIsValid(t *testing.T) {
	assert.True(t, OrderStatusPending.IsValid())
	assert.True(t, OrderStatusCancelled.IsValid())
	assert.False(t, OrderStatus("refunded").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestFormatOrderNumber(t *testing.T) {
	assert.Equal(t, "PC3D-00001", FormatOrderNumber(1))
	assert.Equal(t, "PC3D-00042", FormatOrderNumber(42))
	assert.Equal(t, "PC3D-123456", FormatOrderNumber(123456))
}

func TestOrderItemLineTotal(t *testing.T) {
	item := OrderItem{
		UnitPrice: decimal.NewFromFloat(349.50),
		Quantity:  3,
	}
	assert.True(t, item.LineTotal().Equal(decimal.NewFromFloat(1048.50)))
}

// internal/models/cart_test.go
package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCartLineOperations(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	cart := Cart{
		Items: []CartLine{
			{ProductID: first, Quantity: 2},
			{ProductID: second, Quantity: 1},
		},
	}

	assert.Equal(t, 3, cart.TotalQuantity())
	assert.False(t, cart.IsEmpty())

	line := cart.Line(first)
	assert.NotNil(t, line)
	line.Quantity = 5
	assert.Equal(t, 5, cart.Items[0].Quantity)

	assert.Nil(t, cart.Line(uuid.New()))

	cart.RemoveLine(first)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, second, cart.Items[0].ProductID)

	// Removing an absent product is a no-op
	cart.RemoveLine(first)
	assert.Len(t, cart.Items, 1)

	cart.RemoveLine(second)
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.TotalQuantity())
}

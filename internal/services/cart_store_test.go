// internal/services/cart_store_test.go
package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printcraft/store-backend/internal/models"
)

func TestMemoryCartStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCartStore()
	productID := uuid.New()

	cart, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, "session-1", cart.SessionID)

	cart.Items = append(cart.Items, models.CartLine{ProductID: productID, Quantity: 2})
	require.NoError(t, store.Save(ctx, cart))

	loaded, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, productID, loaded.Items[0].ProductID)
	assert.Equal(t, 2, loaded.Items[0].Quantity)
}

func TestMemoryCartStoreIsolatesCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCartStore()
	productID := uuid.New()

	cart, _ := store.Get(ctx, "session-1")
	cart.Items = append(cart.Items, models.CartLine{ProductID: productID, Quantity: 2})
	require.NoError(t, store.Save(ctx, cart))

	// Mutating a loaded copy must not leak into the store.
	loaded, _ := store.Get(ctx, "session-1")
	loaded.Items[0].Quantity = 99

	fresh, _ := store.Get(ctx, "session-1")
	assert.Equal(t, 2, fresh.Items[0].Quantity)
}

func TestMemoryCartStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCartStore()
	productID := uuid.New()

	cart, _ := store.Get(ctx, "session-1")
	cart.Items = append(cart.Items, models.CartLine{ProductID: productID, Quantity: 1})
	require.NoError(t, store.Save(ctx, cart))

	require.NoError(t, store.Delete(ctx, "session-1"))

	cart, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	// Deleting a missing cart is fine
	require.NoError(t, store.Delete(ctx, "never-existed"))
}

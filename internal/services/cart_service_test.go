// internal/services/cart_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printcraft/store-backend/internal/config"
	"github.com/printcraft/store-backend/internal/models"
)

// fakeProductFinder serves a fixed product set without a database.
type fakeProductFinder struct {
	products map[uuid.UUID]models.Product
}

func (f *fakeProductFinder) PurchasableByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	product, ok := f.products[id]
	if !ok || !product.Purchasable() {
		return nil, ErrNotFound
	}
	return &product, nil
}

func (f *fakeProductFinder) ActiveByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Product, error) {
	result := make(map[uuid.UUID]models.Product)
	for _, id := range ids {
		if product, ok := f.products[id]; ok && product.IsActive {
			result[id] = product
		}
	}
	return result, nil
}

func testStoreConfig() config.StoreConfig {
	return config.StoreConfig{
		MinOrderAmount:    199,
		FreeDeliveryAbove: 999,
		DeliveryCharge:    49,
		MaxQtyPerItem:     10,
		CartTTLHours:      72,
	}
}

func testProduct(name string, price int64) models.Product {
	return models.Product{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Name:        name,
		Slug:        name,
		Price:       decimal.NewFromInt(price),
		StockStatus: models.StockStatusInStock,
		IsActive:    true,
	}
}

func newTestCartService(products ...models.Product) (*CartService, *fakeProductFinder) {
	finder := &fakeProductFinder{products: make(map[uuid.UUID]models.Product)}
	for _, p := range products {
		finder.products[p.ID] = p
	}
	return NewCartService(NewMemoryCartStore(), finder, testStoreConfig()), finder
}

func TestCartAddAndTotals(t *testing.T) {
	ctx := context.Background()
	keychain := testProduct("dragon-keychain", 500)
	planter := testProduct("geo-planter", 300)
	svc, _ := newTestCartService(keychain, planter)

	view, err := svc.Add(ctx, "session-1", &AddItemRequest{ProductID: keychain.ID, Quantity: 2})
	require.NoError(t, err)

	view, err = svc.Add(ctx, "session-1", &AddItemRequest{ProductID: planter.ID, Quantity: 1})
	require.NoError(t, err)

	assert.Equal(t, 2, view.ItemCount)
	assert.Equal(t, 3, view.TotalQuantity)
	assert.True(t, view.Subtotal.Equal(decimal.NewFromInt(1300)), "subtotal = %s", view.Subtotal)
	// Above the free delivery threshold
	assert.True(t, view.DeliveryCharge.IsZero())
	assert.True(t, view.Total.Equal(decimal.NewFromInt(1300)))
}

func TestCartDeliveryChargeBelowThreshold(t *testing.T) {
	ctx := context.Background()
	planter := testProduct("geo-planter", 300)
	svc, _ := newTestCartService(planter)

	view, err := svc.Add(ctx, "session-1", &AddItemRequest{ProductID: planter.ID, Quantity: 1})
	require.NoError(t, err)

	assert.True(t, view.Subtotal.Equal(decimal.NewFromInt(300)))
	assert.True(t, view.DeliveryCharge.Equal(decimal.NewFromInt(49)))
	assert.True(t, view.Total.Equal(decimal.NewFromInt(349)))
}

func TestCartAddMergesExistingLine(t *testing.T) {
	ctx := context.Background()
	keychain := testProduct("dragon-keychain", 500)
	svc, _ := newTestCartService(keychain)

	_, err := svc.Add(ctx, "session-1", &AddItemRequest{ProductID: keychain.ID, Quantity: 2})
	require.NoError(t, err)

	view, err := svc.Add(ctx, "session-1", &AddItemRequest{ProductID: keychain.ID, Quantity: 3})
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)
}

func TestCartAddClampsMergedQuantityToMax(t *testing.T) {
	ctx := context.Background()
	keychain := testProduct("dragon-keychain", 500)
	svc, _ := newTestCartService(keychain)

	_, err := svc.Add(ctx, "session-1", &AddItemRequest{ProductID: keychain.ID, Quantity: 8})
	require.NoError(t, err)

	view, err := svc.Add(ctx, "session-1", &AddItemRequest{ProductID: keychain.ID, Quantity: 8})
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 10, view.Items[0].Quantity)
}

func TestCartAddRejectsBadQuantity(t *testing.T) {
	ctx := context.Background()
	keychain := testProduct("dragon-keychain", 500)
	svc, _ := newTestCartService(keychain)

	for _, qty := range []int{-1, 0, 11} {
		_, err := svc.Add(ctx, "session-1", &AddItemRequest{ProductID: keychain.ID, Quantity: qty})
		assert.ErrorIs(t, err, ErrInvalidQuantity, "quantity %d", qty)
	}
}

func TestCartAddRejectsUnpurchasableProduct(t *testing.T) {
	ctx := context.Background()
	outOfStock := testProduct("sold-out", 500)
	outOfStock.StockStatus = models.StockStatusOutOfStock
	inactive := testProduct("retired", 500)
	inactive.IsActive = false
	svc, _ := newTestCartService(outOfStock, inactive)

	_, err := svc.Add(ctx, "session-1", &AddItemRequest{ProductID: outOfStock.ID, Quantity: 1})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Add(ctx, "session-1", &AddItemRequest{ProductID: inactive.ID, Quantity: 1})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Add(ctx, "session-1", &AddItemRequest{ProductID: uuid.New(), Quantity: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartUpdateQuantity(t *testing.T) {
	ctx := context.Background()
	keychain := testProduct("dragon-keychain", 500)
	svc, _ := newTestCartService(keychain)

	_, err := svc.Add(ctx, "session-1", &AddItemRequest{ProductID: keychain.ID, Quantity: 2})
	require.NoError(t, err)

	view, err := svc.UpdateQuantity(ctx, "session-1", keychain.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, view.Items[0].Quantity)

	// Clamped to the per-item maximum
	view, err = svc.UpdateQuantity(ctx, "session-1", keychain.ID, 99)
	require.NoError(t, err)
	assert.Equal(t, 10, view.Items[0].Quantity)

	// Floor of one
	view, err = svc.UpdateQuantity(ctx, "session-1", keychain.ID, -5)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Items[0].Quantity)
}

func TestCartUpdateAbsentLine(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCartService()

	_, err := svc.UpdateQuantity(ctx, "session-1", uuid.New(), 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartRemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	keychain := testProduct("dragon-keychain", 500)
	svc, _ := newTestCartService(keychain)

	_, err := svc.Add(ctx, "session-1", &AddItemRequest{ProductID: keychain.ID, Quantity: 1})
	require.NoError(t, err)

	view, err := svc.Remove(ctx, "session-1", keychain.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)

	// Second removal of the same product succeeds silently
	view, err = svc.Remove(ctx, "session-1", keychain.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestCartClearAndCount(t *testing.T) {
	ctx := context.Background()
	keychain := testProduct("dragon-keychain", 500)
	svc, _ := newTestCartService(keychain)

	_, err := svc.Add(ctx, "session-1", &AddItemRequest{ProductID: keychain.ID, Quantity: 4})
	require.NoError(t, err)

	count, err := svc.Count(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	require.NoError(t, svc.Clear(ctx, "session-1"))

	count, err = svc.Count(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCartViewSkipsDeactivatedProducts(t *testing.T) {
	ctx := context.Background()
	keychain := testProduct("dragon-keychain", 500)
	planter := testProduct("geo-planter", 300)
	svc, finder := newTestCartService(keychain, planter)

	_, err := svc.Add(ctx, "session-1", &AddItemRequest{ProductID: keychain.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.Add(ctx, "session-1", &AddItemRequest{ProductID: planter.ID, Quantity: 1})
	require.NoError(t, err)

	// Product goes inactive after being added
	keychain.IsActive = false
	finder.products[keychain.ID] = keychain

	view, err := svc.View(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, planter.ID, view.Items[0].ProductID)
	assert.True(t, view.Subtotal.Equal(decimal.NewFromInt(300)))
}

func TestCartsAreIsolatedBySession(t *testing.T) {
	ctx := context.Background()
	keychain := testProduct("dragon-keychain", 500)
	svc, _ := newTestCartService(keychain)

	_, err := svc.Add(ctx, "session-1", &AddItemRequest{ProductID: keychain.ID, Quantity: 2})
	require.NoError(t, err)

	view, err := svc.View(ctx, "session-2")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

// internal/models/product_test.go
package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProductDiscountPercent(t *testing.T) {
	product := Product{
		Price:         decimal.NewFromInt(750),
		OriginalPrice: decimal.NewFromInt(1000),
	}
	assert.Equal(t, 25, product.DiscountPercent())

	// No original price set
	product = Product{Price: decimal.NewFromInt(500)}
	assert.Equal(t, 0, product.DiscountPercent())

	// Original price below selling price is not a discount
	product = Product{
		Price:         decimal.NewFromInt(500),
		OriginalPrice: decimal.NewFromInt(400),
	}
	assert.Equal(t, 0, product.DiscountPercent())
}

func TestProductPurchasable(t *testing.T) {
	product := Product{IsActive: true, StockStatus: StockStatusInStock}
	assert.True(t, product.Purchasable())

	product.StockStatus = StockStatusLowStock
	assert.True(t, product.Purchasable())

	product.StockStatus = StockStatusOutOfStock
	assert.False(t, product.Purchasable())

	product = Product{IsActive: false, StockStatus: StockStatusInStock}
	assert.False(t, product.Purchasable())
}

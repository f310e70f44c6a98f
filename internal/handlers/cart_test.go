// internal/handlers/cart_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/printcraft/store-backend/internal/config"
	"github.com/printcraft/store-backend/internal/models"
	"github.com/printcraft/store-backend/internal/services"
)

// stubFinder backs the cart with a fixed product list, no database.
type stubFinder struct {
	products map[uuid.UUID]models.Product
}

func (f *stubFinder) PurchasableByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	product, ok := f.products[id]
	if !ok || !product.Purchasable() {
		return nil, services.ErrNotFound
	}
	return &product, nil
}

func (f *stubFinder) ActiveByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Product, error) {
	result := make(map[uuid.UUID]models.Product)
	for _, id := range ids {
		if product, ok := f.products[id]; ok && product.IsActive {
			result[id] = product
		}
	}
	return result, nil
}

type CartHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	product models.Product
}

func (suite *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.product = models.Product{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Name:        "Dragon Keychain",
		Slug:        "dragon-keychain",
		Price:       decimal.NewFromInt(299),
		StockStatus: models.StockStatusInStock,
		IsActive:    true,
	}

	finder := &stubFinder{products: map[uuid.UUID]models.Product{
		suite.product.ID: suite.product,
	}}

	storeCfg := config.StoreConfig{
		MinOrderAmount:    199,
		FreeDeliveryAbove: 999,
		DeliveryCharge:    49,
		MaxQtyPerItem:     10,
	}

	cartService := services.NewCartService(services.NewMemoryCartStore(), finder, storeCfg)
	cartHandler := NewCartHandler(cartService)

	suite.router = gin.New()
	// Fixed session in place of the cookie middleware
	suite.router.Use(func(c *gin.Context) {
		c.Set("session_id", "test-session")
		c.Next()
	})

	cart := suite.router.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.GET("/count", cartHandler.GetCartCount)
		cart.POST("/items", cartHandler.AddItem)
		cart.PUT("/items/:productId", cartHandler.UpdateItem)
		cart.DELETE("/items/:productId", cartHandler.RemoveItem)
		cart.DELETE("", cartHandler.ClearCart)
	}
}

func (suite *CartHandlerTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *CartHandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func (suite *CartHandlerTestSuite) TestAddItem() {
	w := suite.request("POST", "/cart/items", gin.H{
		"product_id": suite.product.ID,
		"quantity":   2,
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	assert.True(suite.T(), response["success"].(bool))

	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(2), data["total_quantity"])
}

func (suite *CartHandlerTestSuite) TestAddUnknownProduct() {
	w := suite.request("POST", "/cart/items", gin.H{
		"product_id": uuid.New(),
		"quantity":   1,
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	response := suite.decode(w)
	assert.False(suite.T(), response["success"].(bool))
}

func (suite *CartHandlerTestSuite) TestAddExcessiveQuantity() {
	w := suite.request("POST", "/cart/items", gin.H{
		"product_id": suite.product.ID,
		"quantity":   99,
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *CartHandlerTestSuite) TestGetEmptyCart() {
	w := suite.request("GET", "/cart", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(0), data["item_count"])
}

func (suite *CartHandlerTestSuite) TestUpdateAndRemoveItem() {
	suite.request("POST", "/cart/items", gin.H{
		"product_id": suite.product.ID,
		"quantity":   1,
	})

	itemPath := fmt.Sprintf("/cart/items/%s", suite.product.ID)

	w := suite.request("PUT", itemPath, gin.H{"quantity": 4})
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	data := suite.decode(w)["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(4), data["total_quantity"])

	w = suite.request("DELETE", itemPath, nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	data = suite.decode(w)["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(0), data["item_count"])
}

func (suite *CartHandlerTestSuite) TestUpdateAbsentItem() {
	w := suite.request("PUT", fmt.Sprintf("/cart/items/%s", uuid.New()), gin.H{"quantity": 2})
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *CartHandlerTestSuite) TestCartCountAndClear() {
	suite.request("POST", "/cart/items", gin.H{
		"product_id": suite.product.ID,
		"quantity":   3,
	})

	w := suite.request("GET", "/cart/count", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	data := suite.decode(w)["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(3), data["count"])

	w = suite.request("DELETE", "/cart", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request("GET", "/cart/count", nil)
	data = suite.decode(w)["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(0), data["count"])
}

func (suite *CartHandlerTestSuite) TestInvalidProductIDInPath() {
	w := suite.request("DELETE", "/cart/items/not-a-uuid", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

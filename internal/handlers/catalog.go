// internal/handlers/catalog.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/printcraft/store-backend/internal/services"
	"github.com/printcraft/store-backend/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
	reviewService  *services.ReviewService
}

func NewCatalogHandler(catalogService *services.CatalogService, reviewService *services.ReviewService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		reviewService:  reviewService,
	}
}

// GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	queryParams := services.CatalogQueryParams{
		PaginationParams: params,
		CategorySlug:     c.Query("category"),
		SortBy:           c.Query("sort"),
	}

	if priceMinStr := c.Query("price_min"); priceMinStr != "" {
		if priceMin, err := decimal.NewFromString(priceMinStr); err == nil {
			queryParams.PriceMin = &priceMin
		}
	}

	if priceMaxStr := c.Query("price_max"); priceMaxStr != "" {
		if priceMax, err := decimal.NewFromString(priceMaxStr); err == nil {
			queryParams.PriceMax = &priceMax
		}
	}

	if inStockStr := c.Query("in_stock"); inStockStr != "" {
		if inStock, err := strconv.ParseBool(inStockStr); err == nil {
			queryParams.InStock = inStock
		}
	}

	products, total, err := h.catalogService.SearchProducts(c.Request.Context(), queryParams)
	if err != nil {
		respondServiceError(c, err, "product")
		return
	}

	result := utils.CreatePaginationResult(products, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /products/featured
func (h *CatalogHandler) GetFeaturedProducts(c *gin.Context) {
	limit := parseLimit(c.Query("limit"), 8)

	products, err := h.catalogService.GetFeaturedProducts(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err, "product")
		return
	}

	utils.SuccessResponse(c, products)
}

// GET /products/latest
func (h *CatalogHandler) GetLatestProducts(c *gin.Context) {
	limit := parseLimit(c.Query("limit"), 8)

	products, err := h.catalogService.GetLatestProducts(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err, "product")
		return
	}

	utils.SuccessResponse(c, products)
}

// GET /products/:slug
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, err, "product")
		return
	}

	related, err := h.catalogService.GetRelatedProducts(c.Request.Context(), product, 4)
	if err != nil {
		respondServiceError(c, err, "product")
		return
	}

	avgRating, reviewCount, err := h.reviewService.AverageRating(c.Request.Context(), product.ID)
	if err != nil {
		respondServiceError(c, err, "review")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product":        product,
		"related":        related,
		"average_rating": avgRating,
		"review_count":   reviewCount,
	})
}

// GET /categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context(), true)
	if err != nil {
		respondServiceError(c, err, "category")
		return
	}

	utils.SuccessResponse(c, categories)
}

func parseLimit(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	limit, err := strconv.Atoi(value)
	if err != nil || limit < 1 || limit > 50 {
		return fallback
	}
	return limit
}

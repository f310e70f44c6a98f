// internal/services/catalog_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/printcraft/store-backend/internal/models"
	"github.com/printcraft/store-backend/internal/utils"
)

type CatalogService struct {
	db *gorm.DB
}

// CatalogQueryParams are the storefront browse filters. Unknown values
// degrade to defaults rather than erroring, so malformed query strings
// still return a product list.
type CatalogQueryParams struct {
	utils.PaginationParams
	CategorySlug string
	PriceMin     *decimal.Decimal
	PriceMax     *decimal.Decimal
	SortBy       string
	InStock      bool
}

type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=3,max=200"`
	Description   string          `json:"description,omitempty"`
	ShortDesc     string          `json:"short_desc,omitempty" validate:"omitempty,max=300"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price,omitempty"`
	CategoryID    uuid.UUID       `json:"category_id" validate:"required"`
	Images        []string        `json:"images,omitempty"`
	Material      string          `json:"material,omitempty" validate:"omitempty,max=100"`
	Colors        string          `json:"colors,omitempty" validate:"omitempty,max=300"`
	Dimensions    string          `json:"dimensions,omitempty" validate:"omitempty,max=100"`
	WeightGrams   int             `json:"weight_grams,omitempty" validate:"omitempty,min=0"`
	StockStatus   string          `json:"stock_status,omitempty" validate:"omitempty,oneof=in_stock low_stock out_of_stock"`
	IsFeatured    bool            `json:"is_featured,omitempty"`
	IsActive      *bool           `json:"is_active,omitempty"`
	MetaTitle     string          `json:"meta_title,omitempty" validate:"omitempty,max=200"`
	MetaDesc      string          `json:"meta_description,omitempty" validate:"omitempty,max=300"`
}

type UpdateProductRequest struct {
	Name          string           `json:"name,omitempty" validate:"omitempty,min=3,max=200"`
	Slug          string           `json:"slug,omitempty" validate:"omitempty,min=3,max=220"`
	Description   *string          `json:"description,omitempty"`
	ShortDesc     *string          `json:"short_desc,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	CategoryID    *uuid.UUID       `json:"category_id,omitempty"`
	Images        []string         `json:"images,omitempty"`
	Material      string           `json:"material,omitempty"`
	Colors        *string          `json:"colors,omitempty"`
	Dimensions    *string          `json:"dimensions,omitempty"`
	WeightGrams   *int             `json:"weight_grams,omitempty" validate:"omitempty,min=0"`
	StockStatus   string           `json:"stock_status,omitempty" validate:"omitempty,oneof=in_stock low_stock out_of_stock"`
	IsFeatured    *bool            `json:"is_featured,omitempty"`
	IsActive      *bool            `json:"is_active,omitempty"`
	MetaTitle     string           `json:"meta_title,omitempty"`
	MetaDesc      string           `json:"meta_description,omitempty"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description,omitempty"`
	SortOrder   int    `json:"sort_order,omitempty"`
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// SearchProducts lists active products matching the filters. When a
// price range arrives with min greater than max, the max bound is
// dropped and the range is unbounded above.
func (s *CatalogService) SearchProducts(ctx context.Context, params CatalogQueryParams) ([]models.Product, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Product{}).
		Preload("Category").
		Where("is_active = ?", true)

	if params.CategorySlug != "" {
		var category models.Category
		if err := s.db.WithContext(ctx).Where("slug = ?", params.CategorySlug).First(&category).Error; err == nil {
			query = query.Where("category_id = ?", category.ID)
		}
		// Unknown category slug is ignored, not an error.
	}

	priceMin, priceMax := normalizePriceRange(params.PriceMin, params.PriceMax)
	if priceMin != nil {
		query = query.Where("price >= ?", *priceMin)
	}
	if priceMax != nil {
		query = query.Where("price <= ?", *priceMax)
	}

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(short_desc) LIKE ?",
			searchTerm, searchTerm, searchTerm,
		)
	}

	if params.InStock {
		query = query.Where("stock_status <> ?", models.StockStatusOutOfStock)
	}

	// Get total count
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query = applyCatalogSort(query, params.SortBy)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

// normalizePriceRange drops the upper bound of an inverted price range,
// leaving the range open above rather than returning an empty result.
func normalizePriceRange(min, max *decimal.Decimal) (*decimal.Decimal, *decimal.Decimal) {
	if min != nil && max != nil && min.GreaterThan(*max) {
		return min, nil
	}
	return min, max
}

// applyCatalogSort maps the storefront sort keys onto ORDER BY clauses.
// Unknown keys fall back to newest-first.
func applyCatalogSort(query *gorm.DB, sortBy string) *gorm.DB {
	switch sortBy {
	case "price_low":
		return query.Order("price ASC")
	case "price_high":
		return query.Order("price DESC")
	case "popular":
		return query.Order("view_count DESC")
	case "name":
		return query.Order("name ASC")
	default: // newest
		return query.Order("created_at DESC")
	}
}

// GetProductBySlug returns an active product and bumps its view counter.
func (s *CatalogService) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).Preload("Category").
		Where("slug = ? AND is_active = ?", slug, true).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	go s.incrementViewCount(product.ID)

	return &product, nil
}

// GetProductByID fetches any product regardless of active flag, for
// admin views.
func (s *CatalogService) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *CatalogService) GetFeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).
		Where("is_featured = ? AND is_active = ?", true, true).
		Order("created_at DESC").
		Limit(limit).
		Preload("Category").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch featured products: %w", err)
	}
	return products, nil
}

func (s *CatalogService) GetLatestProducts(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Preload("Category").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch latest products: %w", err)
	}
	return products, nil
}

// GetRelatedProducts lists other active products from the same category.
func (s *CatalogService) GetRelatedProducts(ctx context.Context, product *models.Product, limit int) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).
		Where("category_id = ? AND id <> ? AND is_active = ?", product.CategoryID, product.ID, true).
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch related products: %w", err)
	}
	return products, nil
}

// PurchasableByID implements ProductFinder for the cart: the product
// must exist, be active and not out of stock.
func (s *CatalogService) PurchasableByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !product.Purchasable() {
		return nil, ErrNotFound
	}
	return &product, nil
}

// ActiveByIDs implements ProductFinder: bulk lookup of active products
// for pricing cart lines. Missing or inactive IDs are simply absent
// from the result.
func (s *CatalogService) ActiveByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Product, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]models.Product{}, nil
	}

	var products []models.Product
	if err := s.db.WithContext(ctx).
		Where("id IN ? AND is_active = ?", ids, true).
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	result := make(map[uuid.UUID]models.Product, len(products))
	for _, p := range products {
		result[p.ID] = p
	}
	return result, nil
}

// Admin operations

func (s *CatalogService) AdminListProducts(ctx context.Context, params utils.PaginationParams) ([]models.Product, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Product{}).Preload("Category")

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ?", searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "name", "price", "view_count"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

// CreateProduct adds a catalog entry. The slug is derived from the name;
// a collision gets a short random suffix instead of failing.
func (s *CatalogService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !req.Price.IsPositive() {
		return nil, fmt.Errorf("price must be positive")
	}
	if req.OriginalPrice.IsPositive() && req.OriginalPrice.LessThan(req.Price) {
		return nil, fmt.Errorf("original price must not be below price")
	}

	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, "id = ?", req.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	slug := utils.Slugify(req.Name)
	var existing int64
	s.db.WithContext(ctx).Model(&models.Product{}).Where("slug = ?", slug).Count(&existing)
	if existing > 0 {
		suffix, err := utils.GenerateRandomString(4)
		if err != nil {
			return nil, fmt.Errorf("failed to generate slug suffix: %w", err)
		}
		slug = slug + "-" + strings.ToLower(suffix)
	}

	stockStatus := models.StockStatus(req.StockStatus)
	if stockStatus == "" {
		stockStatus = models.StockStatusInStock
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	metaTitle := req.MetaTitle
	if metaTitle == "" {
		metaTitle = req.Name
	}
	metaDesc := req.MetaDesc
	if metaDesc == "" {
		metaDesc = req.ShortDesc
	}

	product := &models.Product{
		Name:          req.Name,
		Slug:          slug,
		Description:   req.Description,
		ShortDesc:     req.ShortDesc,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		CategoryID:    req.CategoryID,
		Images:        req.Images,
		Material:      req.Material,
		Colors:        req.Colors,
		Dimensions:    req.Dimensions,
		WeightGrams:   req.WeightGrams,
		StockStatus:   stockStatus,
		IsFeatured:    req.IsFeatured,
		IsActive:      isActive,
		MetaTitle:     metaTitle,
		MetaDesc:      metaDesc,
	}

	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.db.WithContext(ctx).Preload("Category").First(product, "id = ?", product.ID)
	return product, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Slug != "" {
		updates["slug"] = utils.Slugify(req.Slug)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ShortDesc != nil {
		updates["short_desc"] = *req.ShortDesc
	}
	if req.Price != nil {
		if !req.Price.IsPositive() {
			return nil, fmt.Errorf("price must be positive")
		}
		updates["price"] = *req.Price
	}
	if req.OriginalPrice != nil {
		updates["original_price"] = *req.OriginalPrice
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Images != nil {
		updates["images"] = pq.StringArray(req.Images)
	}
	if req.Material != "" {
		updates["material"] = req.Material
	}
	if req.Colors != nil {
		updates["colors"] = *req.Colors
	}
	if req.Dimensions != nil {
		updates["dimensions"] = *req.Dimensions
	}
	if req.WeightGrams != nil {
		updates["weight_grams"] = *req.WeightGrams
	}
	if req.StockStatus != "" {
		updates["stock_status"] = req.StockStatus
	}
	if req.IsFeatured != nil {
		updates["is_featured"] = *req.IsFeatured
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.MetaTitle != "" {
		updates["meta_title"] = req.MetaTitle
	}
	if req.MetaDesc != "" {
		updates["meta_description"] = req.MetaDesc
	}

	if err := s.db.WithContext(ctx).Model(&product).Updates(updates).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.db.WithContext(ctx).Preload("Category").First(&product, "id = ?", id)
	return &product, nil
}

// DeactivateProduct hides the product from the storefront without
// touching historical order lines.
func (s *CatalogService) DeactivateProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := s.db.WithContext(ctx).Model(&product).Update("is_active", false).Error; err != nil {
		return nil, fmt.Errorf("failed to deactivate product: %w", err)
	}
	return &product, nil
}

// Categories

func (s *CatalogService) ListCategories(ctx context.Context, activeOnly bool) ([]models.Category, error) {
	query := s.db.WithContext(ctx).Model(&models.Category{}).Order("sort_order ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var categories []models.Category
	if err := query.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        utils.Slugify(req.Name),
		Description: req.Description,
		SortOrder:   req.SortOrder,
		IsActive:    true,
	}

	if err := s.db.WithContext(ctx).Create(category).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// DeleteCategory removes a category, refused while products still
// reference it.
func (s *CatalogService) DeleteCategory(ctx context.Context, id uuid.UUID) (*models.Category, int64, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, fmt.Errorf("database error: %w", err)
	}

	var productCount int64
	if err := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("category_id = ?", id).Count(&productCount).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count category products: %w", err)
	}

	if productCount > 0 {
		return &category, productCount, ErrCategoryInUse
	}

	if err := s.db.WithContext(ctx).Delete(&category).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to delete category: %w", err)
	}
	return &category, 0, nil
}

// Helper methods

func (s *CatalogService) incrementViewCount(productID uuid.UUID) {
	s.db.Model(&models.Product{}).Where("id = ?", productID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
}

// isUniqueViolation spots Postgres unique-constraint failures without
// pinning to a driver error type.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "duplicate key value")
}

// internal/services/cart_service.go
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/printcraft/store-backend/internal/config"
	"github.com/printcraft/store-backend/internal/models"
	"github.com/printcraft/store-backend/internal/utils"
)

// ProductFinder is the catalog lookup the cart depends on. Satisfied by
// CatalogService in production and by fakes in tests.
type ProductFinder interface {
	PurchasableByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ActiveByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Product, error)
}

type CartService struct {
	store    CartStore
	products ProductFinder
	storeCfg config.StoreConfig
}

// Quantity carries no required tag: zero is a meaningful input that the
// bounds check must classify, and required on an int rejects it first.
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity"`
	Color     string    `json:"color,omitempty" validate:"omitempty,max=50"`
}

type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

func NewCartService(store CartStore, products ProductFinder, storeCfg config.StoreConfig) *CartService {
	return &CartService{
		store:    store,
		products: products,
		storeCfg: storeCfg,
	}
}

// Add puts a product into the session's cart. Adding a product already
// in the cart merges into the existing line, clamped to the per-item
// maximum, rather than duplicating it.
func (s *CartService) Add(ctx context.Context, sessionID string, req *AddItemRequest) (*models.CartView, error) {
	if req.Quantity < 1 || req.Quantity > s.storeCfg.MaxQtyPerItem {
		return nil, ErrInvalidQuantity
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product, err := s.products.PurchasableByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if line := cart.Line(product.ID); line != nil {
		line.Quantity += req.Quantity
		if line.Quantity > s.storeCfg.MaxQtyPerItem {
			line.Quantity = s.storeCfg.MaxQtyPerItem
		}
		if req.Color != "" {
			line.Color = req.Color
		}
	} else {
		cart.Items = append(cart.Items, models.CartLine{
			ProductID: product.ID,
			Quantity:  req.Quantity,
			Color:     req.Color,
		})
	}

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}

	return s.buildView(ctx, cart)
}

// UpdateQuantity sets the quantity of an existing line, clamped to
// [1, max]. The product must already be in the cart.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*models.CartView, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	line := cart.Line(productID)
	if line == nil {
		return nil, ErrNotFound
	}

	if quantity < 1 {
		quantity = 1
	}
	if quantity > s.storeCfg.MaxQtyPerItem {
		quantity = s.storeCfg.MaxQtyPerItem
	}
	line.Quantity = quantity

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}

	return s.buildView(ctx, cart)
}

// Remove drops a line from the cart. Removing an absent product is a
// no-op, not an error.
func (s *CartService) Remove(ctx context.Context, sessionID string, productID uuid.UUID) (*models.CartView, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.RemoveLine(productID)

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}

	return s.buildView(ctx, cart)
}

// Clear empties the cart. Called by the visitor and after successful
// order placement.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

// View returns the cart priced against the live catalog. Lines whose
// product has since been deactivated or removed are excluded from the
// view but left in the stored cart, matching how the storefront renders
// stale carts.
func (s *CartService) View(ctx context.Context, sessionID string) (*models.CartView, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, cart)
}

// Count returns the total quantity across all lines, for the cart badge.
func (s *CartService) Count(ctx context.Context, sessionID string) (int, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return cart.TotalQuantity(), nil
}

func (s *CartService) buildView(ctx context.Context, cart *models.Cart) (*models.CartView, error) {
	view := &models.CartView{
		Items:          []models.CartViewItem{},
		Subtotal:       decimal.Zero,
		DeliveryCharge: decimal.Zero,
		Total:          decimal.Zero,
	}

	if cart.IsEmpty() {
		return view, nil
	}

	ids := make([]uuid.UUID, 0, len(cart.Items))
	for _, line := range cart.Items {
		ids = append(ids, line.ProductID)
	}

	products, err := s.products.ActiveByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, line := range cart.Items {
		product, ok := products[line.ProductID]
		if !ok {
			continue
		}

		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}

		view.Items = append(view.Items, models.CartViewItem{
			ProductID:   product.ID,
			Slug:        product.Slug,
			Name:        product.Name,
			Image:       image,
			UnitPrice:   product.Price,
			Quantity:    line.Quantity,
			Color:       line.Color,
			LineTotal:   lineTotal,
			StockStatus: product.StockStatus,
		})

		view.ItemCount++
		view.TotalQuantity += line.Quantity
		view.Subtotal = view.Subtotal.Add(lineTotal)
	}

	view.DeliveryCharge = s.deliveryCharge(view.Subtotal)
	view.Total = view.Subtotal.Add(view.DeliveryCharge)
	return view, nil
}

// deliveryCharge is the flat charge, waived above the free-delivery
// threshold and for empty carts.
func (s *CartService) deliveryCharge(subtotal decimal.Decimal) decimal.Decimal {
	if !subtotal.IsPositive() {
		return decimal.Zero
	}
	if subtotal.GreaterThanOrEqual(decimal.NewFromInt(int64(s.storeCfg.FreeDeliveryAbove))) {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(s.storeCfg.DeliveryCharge))
}

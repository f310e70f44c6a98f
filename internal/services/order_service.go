// internal/services/order_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/printcraft/store-backend/internal/config"
	"github.com/printcraft/store-backend/internal/models"
	"github.com/printcraft/store-backend/internal/utils"
)

// PaymentProvider creates payment intents for online checkout. Kept as
// an interface so tests and COD-only deployments run without a gateway.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amount decimal.Decimal, orderNumber, customerEmail string) (reference string, clientSecret string, err error)
}

// OrderNotifier sends customer and business emails for order events.
// Implementations must not block the caller.
type OrderNotifier interface {
	OrderPlaced(order *models.Order)
	OrderStatusChanged(order *models.Order)
}

type OrderService struct {
	db       *gorm.DB
	carts    *CartService
	payments PaymentProvider
	notifier OrderNotifier
	storeCfg config.StoreConfig
}

type CheckoutRequest struct {
	CustomerName  string `json:"customer_name" validate:"required,min=2,max=200"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	CustomerPhone string `json:"customer_phone" validate:"required,in_mobile"`
	Address       string `json:"address" validate:"required,min=10"`
	City          string `json:"city" validate:"required,min=2,max=100"`
	Pincode       string `json:"pincode" validate:"required,in_pincode"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cod online"`
	Notes         string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// CheckoutResult carries the created order plus, for online payment,
// the gateway client secret the frontend needs to collect the card.
type CheckoutResult struct {
	Order               *models.Order `json:"order"`
	PaymentClientSecret string        `json:"payment_client_secret,omitempty"`
}

type OrderListParams struct {
	utils.PaginationParams
	Status string
}

func NewOrderService(db *gorm.DB, carts *CartService, payments PaymentProvider, notifier OrderNotifier, storeCfg config.StoreConfig) *OrderService {
	return &OrderService{
		db:       db,
		carts:    carts,
		payments: payments,
		notifier: notifier,
		storeCfg: storeCfg,
	}
}

// Checkout converts the session cart into an order. Prices are the live
// catalog prices at this moment; the order items freeze them. The cart
// is cleared only after the order row is committed.
func (s *OrderService) Checkout(ctx context.Context, sessionID string, req *CheckoutRequest) (*CheckoutResult, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	view, err := s.carts.View(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if view.ItemCount == 0 {
		return nil, ErrEmptyCart
	}

	minOrder := decimal.NewFromInt(int64(s.storeCfg.MinOrderAmount))
	if view.Subtotal.LessThan(minOrder) {
		return nil, fmt.Errorf("%w: order subtotal %s is below the minimum %s",
			ErrBelowMinimumOrder, view.Subtotal.StringFixed(2), minOrder.StringFixed(2))
	}

	method := models.PaymentMethod(req.PaymentMethod)
	if method == models.PaymentMethodOnline && s.payments == nil {
		return nil, fmt.Errorf("online payment is not configured")
	}

	status := models.OrderStatusPending
	if method == models.PaymentMethodOnline {
		status = models.OrderStatusPendingPayment
	}

	order := &models.Order{
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		CustomerPhone:  req.CustomerPhone,
		Address:        req.Address,
		City:           req.City,
		Pincode:        req.Pincode,
		Subtotal:       view.Subtotal,
		DeliveryCharge: view.DeliveryCharge,
		Total:          view.Total,
		Status:         status,
		PaymentMethod:  method,
		Notes:          req.Notes,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var seq int64
		if err := tx.Model(&models.Order{}).Unscoped().Count(&seq).Error; err != nil {
			return fmt.Errorf("failed to derive order number: %w", err)
		}
		order.OrderNumber = models.FormatOrderNumber(seq + 1)

		for _, line := range view.Items {
			order.Items = append(order.Items, models.OrderItem{
				ProductID:   line.ProductID,
				ProductName: line.Name,
				UnitPrice:   line.UnitPrice,
				Quantity:    line.Quantity,
				Color:       line.Color,
			})
		}

		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &CheckoutResult{Order: order}

	if method == models.PaymentMethodOnline {
		reference, clientSecret, err := s.payments.CreateIntent(ctx, order.Total, order.OrderNumber, order.CustomerEmail)
		if err != nil {
			// The order stays in pending_payment; the customer can retry
			// or the admin cancels it.
			logrus.WithError(err).WithField("order_number", order.OrderNumber).
				Error("Failed to create payment intent")
			return nil, fmt.Errorf("failed to start payment: %w", err)
		}
		if err := s.db.WithContext(ctx).Model(order).
			Update("payment_reference", reference).Error; err != nil {
			return nil, fmt.Errorf("failed to store payment reference: %w", err)
		}
		order.PaymentReference = reference
		result.PaymentClientSecret = clientSecret
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		// The order exists; a stale cart is an annoyance, not a failure.
		logrus.WithError(err).WithField("session_id", sessionID).
			Warn("Failed to clear cart after checkout")
	}

	if s.notifier != nil && order.Status == models.OrderStatusPending {
		s.notifier.OrderPlaced(order)
	}

	return result, nil
}

// GetByNumber returns an order with its items for customer-facing
// tracking. The email must match the one on the order.
func (s *OrderService) GetByNumber(ctx context.Context, orderNumber, email string) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).Preload("Items").
		Where("order_number = ? AND LOWER(customer_email) = LOWER(?)", orderNumber, email).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}

// ConfirmPayment moves an order out of pending_payment once the gateway
// reports success. Repeat confirmations for the same reference are
// no-ops, so webhook retries are safe.
func (s *OrderService) ConfirmPayment(ctx context.Context, paymentReference string) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).Preload("Items").
		Where("payment_reference = ?", paymentReference).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if order.Status != models.OrderStatusPendingPayment {
		return &order, nil
	}

	if err := s.db.WithContext(ctx).Model(&order).
		Update("status", models.OrderStatusPending).Error; err != nil {
		return nil, fmt.Errorf("failed to confirm payment: %w", err)
	}
	order.Status = models.OrderStatusPending

	if s.notifier != nil {
		s.notifier.OrderPlaced(&order)
	}
	return &order, nil
}

// Admin operations

func (s *OrderService) ListOrders(ctx context.Context, params OrderListParams) ([]models.Order, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Order{}).Preload("Items")

	if params.Status != "" {
		if !models.OrderStatus(params.Status).IsValid() {
			return nil, 0, fmt.Errorf("unknown order status %q", params.Status)
		}
		query = query.Where("status = ?", params.Status)
	}

	if params.Search != "" {
		searchTerm := "%" + params.Search + "%"
		query = query.Where(
			"order_number ILIKE ? OR customer_name ILIKE ? OR customer_email ILIKE ?",
			searchTerm, searchTerm, searchTerm,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "total", "status"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, total, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}

// UpdateStatus advances an order along the fulfilment chain. Only the
// single next step or cancellation is accepted; pending_payment orders
// leave that state through payment confirmation, not manual edits.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, next models.OrderStatus) (*models.Order, error) {
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, next)
	}

	var order models.Order
	if err := s.db.WithContext(ctx).Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if order.Status == models.OrderStatusPendingPayment && next != models.OrderStatusCancelled {
		return nil, fmt.Errorf("%w: order %s awaits payment", ErrInvalidTransition, order.OrderNumber)
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s cannot move to %s", ErrInvalidTransition, order.Status, next)
	}

	if err := s.db.WithContext(ctx).Model(&order).Update("status", next).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	order.Status = next

	if s.notifier != nil {
		s.notifier.OrderStatusChanged(&order)
	}
	return &order, nil
}

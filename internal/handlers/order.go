// internal/handlers/order.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/printcraft/store-backend/internal/i18n"
	"github.com/printcraft/store-backend/internal/services"
	"github.com/printcraft/store-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// POST /checkout
func (h *OrderHandler) Checkout(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "session not established")
		return
	}

	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	result, err := h.orderService.Checkout(c.Request.Context(), sessionID, &req)
	if err != nil {
		respondServiceError(c, err, "order")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":               i18n.T(lang, i18n.KeyOrderPlaced, result.Order.OrderNumber),
		"order":                 result.Order,
		"payment_client_secret": result.PaymentClientSecret,
	})
}

// GET /orders/track
func (h *OrderHandler) TrackOrder(c *gin.Context) {
	orderNumber := c.Query("number")
	email := c.Query("email")
	if orderNumber == "" || email == "" {
		utils.BadRequestResponse(c, "Order number and email are required", nil)
		return
	}

	order, err := h.orderService.GetByNumber(c.Request.Context(), orderNumber, email)
	if err != nil {
		respondServiceError(c, err, "order")
		return
	}

	utils.SuccessResponse(c, order)
}

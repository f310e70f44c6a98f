// internal/handlers/cart.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/printcraft/store-backend/internal/i18n"
	"github.com/printcraft/store-backend/internal/services"
	"github.com/printcraft/store-backend/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "session not established")
		return
	}

	view, err := h.cartService.View(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, err, "cart")
		return
	}

	utils.SuccessResponse(c, view)
}

// GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "session not established")
		return
	}

	count, err := h.cartService.Count(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, err, "cart")
		return
	}

	utils.SuccessResponse(c, gin.H{"count": count})
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "session not established")
		return
	}

	var req services.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	view, err := h.cartService.Add(c.Request.Context(), sessionID, &req)
	if err != nil {
		respondServiceError(c, err, "product")
		return
	}

	utils.SuccessResponseWithMeta(c, view, gin.H{
		"message": i18n.T(lang, i18n.KeyCartItemAdded),
	})
}

// PUT /cart/items/:productId
func (h *CartHandler) UpdateItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "session not established")
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req services.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	view, err := h.cartService.UpdateQuantity(c.Request.Context(), sessionID, productID, req.Quantity)
	if err != nil {
		respondServiceError(c, err, "cart item")
		return
	}

	utils.SuccessResponseWithMeta(c, view, gin.H{
		"message": i18n.T(lang, i18n.KeyCartItemUpdated),
	})
}

// DELETE /cart/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "session not established")
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	view, err := h.cartService.Remove(c.Request.Context(), sessionID, productID)
	if err != nil {
		respondServiceError(c, err, "cart item")
		return
	}

	utils.SuccessResponseWithMeta(c, view, gin.H{
		"message": i18n.T(lang, i18n.KeyCartItemRemoved),
	})
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "session not established")
		return
	}

	if err := h.cartService.Clear(c.Request.Context(), sessionID); err != nil {
		respondServiceError(c, err, "cart")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartCleared),
	})
}

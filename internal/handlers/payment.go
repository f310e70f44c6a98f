// internal/handlers/payment.go
package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/printcraft/store-backend/internal/services"
	"github.com/printcraft/store-backend/internal/utils"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
	orderService   *services.OrderService
}

func NewPaymentHandler(paymentService *services.PaymentService, orderService *services.OrderService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		orderService:   orderService,
	}
}

// POST /payments/webhook
//
// Stripe retries failed deliveries, so every branch that has verified
// the signature must answer 200 to stop the retry loop.
func (h *PaymentHandler) HandleWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 65536))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	intentID, err := h.paymentService.VerifyWebhook(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		logrus.WithError(err).Warn("Rejected payment webhook")
		c.Status(http.StatusBadRequest)
		return
	}

	if intentID == "" {
		// Event type we do not act on.
		c.Status(http.StatusOK)
		return
	}

	if _, err := h.orderService.ConfirmPayment(c.Request.Context(), intentID); err != nil {
		logrus.WithError(err).WithField("payment_intent", intentID).
			Error("Failed to confirm payment from webhook")
	}

	c.Status(http.StatusOK)
}

// GET /payments/status/:intentId
//
// Polled by the frontend after a payment redirect. Confirms the order
// directly when Stripe already reports success, covering the window
// before the webhook lands.
func (h *PaymentHandler) GetPaymentStatus(c *gin.Context) {
	intentID := c.Param("intentId")
	if intentID == "" {
		utils.BadRequestResponse(c, "Payment intent ID is required", nil)
		return
	}

	status, err := h.paymentService.GetIntentStatus(intentID)
	if err != nil {
		utils.NotFoundResponse(c, "payment")
		return
	}

	if status == "succeeded" {
		if _, err := h.orderService.ConfirmPayment(c.Request.Context(), intentID); err != nil {
			logrus.WithError(err).WithField("payment_intent", intentID).
				Error("Failed to confirm payment from status poll")
		}
	}

	utils.SuccessResponse(c, gin.H{"status": status})
}

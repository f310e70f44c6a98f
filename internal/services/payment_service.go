// internal/services/payment_service.go
package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"
	"github.com/stripe/stripe-go/v74/webhook"

	"github.com/printcraft/store-backend/internal/config"
)

// PaymentService wraps the Stripe gateway. It implements
// PaymentProvider for online checkout.
type PaymentService struct {
	config *config.Config
}

func NewPaymentService(config *config.Config) *PaymentService {
	// Initialize Stripe
	stripe.Key = config.Payment.StripeSecretKey

	return &PaymentService{config: config}
}

// Configured reports whether a Stripe secret key is present. Without
// one the store is COD-only.
func (s *PaymentService) Configured() bool {
	return s.config.Payment.StripeSecretKey != ""
}

// CreateIntent opens a Stripe PaymentIntent for the order total. The
// returned reference is the intent ID stored on the order; the client
// secret goes back to the frontend.
func (s *PaymentService) CreateIntent(ctx context.Context, amount decimal.Decimal, orderNumber, customerEmail string) (string, string, error) {
	// Stripe wants the amount in the smallest currency unit.
	amountInPaise := amount.Mul(decimal.NewFromInt(100)).IntPart()

	params := &stripe.PaymentIntentParams{
		Amount:       stripe.Int64(amountInPaise),
		Currency:     stripe.String(s.config.Payment.Currency),
		ReceiptEmail: stripe.String(customerEmail),
	}
	params.Context = ctx
	params.AddMetadata("order_number", orderNumber)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	return pi.ID, pi.ClientSecret, nil
}

// VerifyWebhook checks the Stripe signature and, for a successful
// payment event, returns the payment intent ID to confirm. An empty ID
// means the event type is not one we act on.
func (s *PaymentService) VerifyWebhook(payload []byte, signature string) (string, error) {
	event, err := webhook.ConstructEvent(payload, signature, s.config.Payment.StripeWebhookSecret)
	if err != nil {
		return "", fmt.Errorf("webhook signature verification failed: %w", err)
	}

	if event.Type != "payment_intent.succeeded" {
		return "", nil
	}

	intentID, _ := event.Data.Object["id"].(string)
	if intentID == "" {
		return "", fmt.Errorf("webhook event has no payment intent id")
	}
	return intentID, nil
}

// GetIntentStatus fetches the live status of an intent, used when the
// frontend polls after redirect instead of waiting for the webhook.
func (s *PaymentService) GetIntentStatus(intentID string) (string, error) {
	pi, err := paymentintent.Get(intentID, nil)
	if err != nil {
		return "", fmt.Errorf("failed to get payment intent: %w", err)
	}
	return string(pi.Status), nil
}

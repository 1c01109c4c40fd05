package payment

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Webhook event types dispatched by the processor.
const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
	EventPaymentCanceled  = "payment_intent.canceled"
)

// Event is the subset of a payment webhook event the processor reads.
type Event struct {
	Type string `json:"type"`
	Data struct {
		Object EventIntent `json:"object"`
	} `json:"data"`
}

// EventIntent is the payment intent embedded in a webhook event.
type EventIntent struct {
	ID       string            `json:"id"`
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Metadata map[string]string `json:"metadata"`

	LastPaymentError *struct {
		Message string `json:"message"`
	} `json:"last_payment_error"`
	CancellationReason string `json:"cancellation_reason"`
}

// WebhookProcessor dispatches webhook events to logging-only handlers.
// It does not verify the event signature cryptographically; the handler
// layer only checks that a signature header and a webhook secret are
// both present. Full HMAC verification is required before this can be
// trusted in production.
type WebhookProcessor struct {
	logger zerolog.Logger
}

// NewWebhookProcessor creates a webhook processor.
func NewWebhookProcessor(logger zerolog.Logger) *WebhookProcessor {
	return &WebhookProcessor{
		logger: logger.With().Str("component", "stripe-webhook").Logger(),
	}
}

// Process parses the raw event body and dispatches on its type.
// Unrecognised event types are logged and acknowledged.
func (p *WebhookProcessor) Process(body []byte) error {
	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("failed to parse webhook event: %w", err)
	}

	switch event.Type {
	case EventPaymentSucceeded:
		p.handleSuccess(event.Data.Object)
	case EventPaymentFailed:
		p.handleFailure(event.Data.Object)
	case EventPaymentCanceled:
		p.handleCancellation(event.Data.Object)
	default:
		p.logger.Info().Str("event_type", event.Type).Msg("unhandled webhook event type")
	}

	return nil
}

func (p *WebhookProcessor) handleSuccess(intent EventIntent) {
	p.logger.Info().
		Str("payment_intent_id", intent.ID).
		Str("order_id", intent.Metadata["order_id"]).
		Float64("amount", float64(intent.Amount)/100).
		Str("currency", intent.Currency).
		Str("customer_email", intent.Metadata["customer_email"]).
		Str("status", "paid").
		Time("received_at", time.Now()).
		Msg("payment succeeded")
}

func (p *WebhookProcessor) handleFailure(intent EventIntent) {
	reason := "Unknown error"
	if intent.LastPaymentError != nil && intent.LastPaymentError.Message != "" {
		reason = intent.LastPaymentError.Message
	}

	p.logger.Warn().
		Str("payment_intent_id", intent.ID).
		Str("order_id", intent.Metadata["order_id"]).
		Str("failure_reason", reason).
		Time("received_at", time.Now()).
		Msg("payment failed")
}

func (p *WebhookProcessor) handleCancellation(intent EventIntent) {
	reason := intent.CancellationReason
	if reason == "" {
		reason = "User cancelled"
	}

	p.logger.Info().
		Str("payment_intent_id", intent.ID).
		Str("order_id", intent.Metadata["order_id"]).
		Str("cancellation_reason", reason).
		Time("received_at", time.Now()).
		Msg("payment cancelled")
}

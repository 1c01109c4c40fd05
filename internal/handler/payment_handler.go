package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"stylehub/internal/config"
	"stylehub/internal/model"
	"stylehub/internal/payment"

	"github.com/rs/zerolog"
)

// IntentCreator creates payment intents with the payment API.
type IntentCreator interface {
	CreateIntent(ctx context.Context, req payment.IntentRequest) (*payment.Intent, error)
}

// PaymentHandler handles the payment-intent endpoint. A single POST
// route dispatches on the "action" field of the request body.
type PaymentHandler struct {
	client    IntentCreator
	processor *payment.WebhookProcessor
	cfg       config.StripeConfig
	logger    zerolog.Logger
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(client IntentCreator, processor *payment.WebhookProcessor, cfg config.StripeConfig, logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		client:    client,
		processor: processor,
		cfg:       cfg,
		logger:    logger.With().Str("handler", "payment").Logger(),
	}
}

// intentResponse is the success payload for create_payment_intent.
type intentResponse struct {
	Success         bool   `json:"success"`
	ClientSecret    string `json:"client_secret"`
	PaymentIntentID string `json:"payment_intent_id"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
}

// Handle handles POST /api/payments requests.
func (h *PaymentHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", h.logger)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body", h.logger)
		return
	}

	var envelope struct {
		Action string `json:"action"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	switch envelope.Action {
	case "create_payment_intent":
		h.createIntent(w, r, body)
	case "webhook":
		h.webhook(w, r, body)
	default:
		h.logger.Warn().Str("action", envelope.Action).Msg("unknown payment action")
		writeError(w, http.StatusBadRequest, "Invalid action", h.logger)
	}
}

func (h *PaymentHandler) createIntent(w http.ResponseWriter, r *http.Request, body []byte) {
	var req payment.IntentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	intent, err := h.client.CreateIntent(r.Context(), req)
	if err != nil {
		var upstreamErr *payment.UpstreamError
		switch {
		case errors.Is(err, model.ErrMissingStripeKey):
			writeDomainError(w, model.ErrMissingStripeKey, h.logger)
		case errors.Is(err, model.ErrInvalidAmount):
			writeDomainError(w, model.ErrInvalidAmount, h.logger)
		case errors.As(err, &upstreamErr):
			writeJSON(w, upstreamErr.StatusCode, ErrorResponse{
				Error:   model.ErrCodePaymentFailed,
				Message: upstreamErr.Message,
			})
		default:
			h.logger.Error().Err(err).Msg("payment intent creation failed")
			writeError(w, http.StatusInternalServerError, "failed to create payment intent", h.logger)
		}
		return
	}

	writeJSON(w, http.StatusOK, intentResponse{
		Success:         true,
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.PaymentIntentID,
		Amount:          intent.Amount,
		Currency:        intent.Currency,
	})
}

func (h *PaymentHandler) webhook(w http.ResponseWriter, r *http.Request, body []byte) {
	signature := r.Header.Get("Stripe-Signature")
	if signature == "" || h.cfg.WebhookSecret == "" {
		writeError(w, http.StatusBadRequest, "Missing signature or webhook secret", h.logger)
		return
	}

	if err := h.processor.Process(body); err != nil {
		h.logger.Error().Err(err).Msg("webhook processing failed")
		writeError(w, http.StatusInternalServerError, "webhook processing failed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"stylehub/internal/config"
	"stylehub/internal/model"

	"github.com/rs/zerolog"
)

// MinimumAmount is the smallest chargeable amount in currency units.
const MinimumAmount = 0.50

// DefaultCurrency is used when the caller does not name one.
const DefaultCurrency = "inr"

// OrderData is the optional order context attached to a payment intent
// as metadata.
type OrderData struct {
	OrderID  string             `json:"orderId,omitempty"`
	Shipping model.ShippingInfo `json:"shipping,omitempty"`
	Items    []model.CartItem   `json:"items,omitempty"`
}

// IntentRequest is the input for creating a payment intent. Amount is in
// currency units; conversion to minor units happens here.
type IntentRequest struct {
	Amount    float64    `json:"amount"`
	Currency  string     `json:"currency,omitempty"`
	OrderData *OrderData `json:"orderData,omitempty"`
}

// Intent is the broker's view of a created payment intent.
type Intent struct {
	PaymentIntentID string `json:"payment_intent_id"`
	ClientSecret    string `json:"client_secret"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
}

// UpstreamError carries a payment API rejection together with the status
// code to relay to the caller.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("payment API returned %d: %s", e.StatusCode, e.Message)
}

// Client brokers payment-intent creation against the Stripe HTTP API.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a payment-intent client. A missing secret key is not
// an error here; it surfaces as a configuration error on first use.
func NewClient(cfg config.StripeConfig, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.APIBaseURL, "/"),
		secretKey:  cfg.SecretKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger.With().Str("component", "stripe-client").Logger(),
	}
}

// CreateIntent validates the amount, converts it to minor units and
// creates a payment intent with the payment API.
func (c *Client) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	if c.secretKey == "" {
		c.logger.Error().Msg("stripe secret key is not configured")
		return nil, model.ErrMissingStripeKey
	}

	if req.Amount < MinimumAmount {
		return nil, model.ErrInvalidAmount
	}

	currency := strings.ToLower(req.Currency)
	if currency == "" {
		currency = DefaultCurrency
	}

	minorUnits := int64(math.Round(req.Amount * 100))

	orderID := ""
	customerEmail := ""
	customerPhone := ""
	itemsCount := 0
	if req.OrderData != nil {
		orderID = req.OrderData.OrderID
		customerEmail = req.OrderData.Shipping.Email
		customerPhone = req.OrderData.Shipping.Phone
		itemsCount = len(req.OrderData.Items)
	}
	if orderID == "" {
		orderID = fmt.Sprintf("ORDER_%d", time.Now().UnixMilli())
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(minorUnits, 10))
	form.Set("currency", currency)
	form.Set("automatic_payment_methods[enabled]", "true")
	form.Set("metadata[order_id]", orderID)
	form.Set("metadata[customer_email]", customerEmail)
	form.Set("metadata[customer_phone]", customerPhone)
	form.Set("metadata[items_count]", strconv.Itoa(itemsCount))

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/v1/payment_intents",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build payment intent request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error().Err(err).Msg("payment intent request failed")
		return nil, fmt.Errorf("payment intent request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		message := "Unknown error"
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			message = apiErr.Error.Message
		}
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Str("order_id", orderID).
			Str("upstream_error", message).
			Msg("payment API rejected intent creation")
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: message}
	}

	var raw struct {
		ID           string `json:"id"`
		ClientSecret string `json:"client_secret"`
		Amount       int64  `json:"amount"`
		Currency     string `json:"currency"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode payment intent response: %w", err)
	}

	c.logger.Info().
		Str("payment_intent_id", raw.ID).
		Str("order_id", orderID).
		Int64("amount", raw.Amount).
		Str("currency", raw.Currency).
		Msg("payment intent created")

	return &Intent{
		PaymentIntentID: raw.ID,
		ClientSecret:    raw.ClientSecret,
		Amount:          raw.Amount,
		Currency:        raw.Currency,
	}, nil
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"stylehub/internal/checkout"
	"stylehub/internal/model"

	"github.com/rs/zerolog"
)

// CheckoutHandler handles checkout and order confirmation HTTP requests.
type CheckoutHandler struct {
	service checkout.Service
	logger  zerolog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(service checkout.Service, logger zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		logger:  logger.With().Str("handler", "checkout").Logger(),
	}
}

// checkoutRequest is the payload for POST /api/checkout.
type checkoutRequest struct {
	Shipping      model.ShippingInfo `json:"shipping"`
	PaymentMethod string             `json:"paymentMethod"`
}

// orderResponse is the confirmation view of a placed order.
type orderResponse struct {
	OrderID           string             `json:"orderId"`
	Items             []model.CartItem   `json:"items"`
	Shipping          model.ShippingInfo `json:"shipping"`
	PaymentMethod     string             `json:"paymentMethod"`
	PaymentMethodName string             `json:"paymentMethodName"`
	Totals            model.OrderTotals  `json:"totals"`
	Status            string             `json:"status"`
	Timestamp         time.Time          `json:"timestamp"`
	EstimatedDelivery time.Time          `json:"estimatedDelivery"`
}

func newOrderResponse(snapshot *model.OrderSnapshot) orderResponse {
	return orderResponse{
		OrderID:           snapshot.OrderID,
		Items:             snapshot.Items,
		Shipping:          snapshot.Shipping,
		PaymentMethod:     string(snapshot.PaymentMethod),
		PaymentMethodName: snapshot.PaymentMethod.DisplayName(),
		Totals:            snapshot.Totals,
		Status:            snapshot.Status,
		Timestamp:         snapshot.Timestamp,
		EstimatedDelivery: checkout.EstimatedDelivery(snapshot.PaymentMethod, snapshot.Timestamp),
	}
}

// PlaceOrder handles POST /api/checkout requests. The response blocks
// until the payment driver confirms; a closed connection cancels the
// pending attempt and nothing is finalised.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	sid, ok := sessionID(w, r, h.logger)
	if !ok {
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	method, err := model.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid payment method", h.logger)
		return
	}

	snapshot, err := h.service.PlaceOrder(r.Context(), sid, req.Shipping, method)
	if err != nil {
		h.writeCheckoutError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newOrderResponse(snapshot))
}

// CreateUPIRequest handles POST /api/checkout/upi requests, returning
// the UPI URI and QR image for the session's current cart total.
func (h *CheckoutHandler) CreateUPIRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	sid, ok := sessionID(w, r, h.logger)
	if !ok {
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	upiReq, err := h.service.CreateUPIRequest(r.Context(), sid, req.Shipping)
	if err != nil {
		h.writeCheckoutError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, upiReq)
}

// LastOrder handles GET /api/orders/last requests.
func (h *CheckoutHandler) LastOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	sid, ok := sessionID(w, r, h.logger)
	if !ok {
		return
	}

	snapshot, err := h.service.LastOrder(r.Context(), sid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve order", h.logger)
		return
	}
	if snapshot == nil {
		writeDomainError(w, model.ErrNoOrder, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, newOrderResponse(snapshot))
}

func (h *CheckoutHandler) writeCheckoutError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *checkout.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   model.ErrCodeValidationFailed,
			Message: validationErr.Error(),
			Fields:  validationErr.Fields,
		})
		return
	}

	var paymentErr *model.PaymentError
	if errors.As(err, &paymentErr) {
		writeJSON(w, http.StatusBadGateway, ErrorResponse{
			Error:   model.ErrCodePaymentFailed,
			Message: paymentErr.Reason,
		})
		return
	}

	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeDomainError(w, domainErr, h.logger)
		return
	}

	// The client went away mid-checkout; there is nobody to answer.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		h.logger.Info().Msg("checkout request cancelled by client")
		writeError(w, statusClientClosedRequest, "request cancelled", h.logger)
		return
	}

	h.logger.Error().Err(err).Msg("checkout failed")
	writeError(w, http.StatusInternalServerError, "checkout failed", h.logger)
}

// statusClientClosedRequest mirrors nginx's non-standard 499 code.
const statusClientClosedRequest = 499

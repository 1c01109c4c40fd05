package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"stylehub/internal/model"
	"stylehub/internal/session"

	"github.com/rs/zerolog"
)

// Service orchestrates the checkout flow: validate the shipping form,
// run the selected payment driver, and finalise the order on success.
type Service interface {
	// PlaceOrder runs the full checkout for a session and returns the
	// confirmed order snapshot. Driver failures are non-fatal: the session
	// state is untouched and the caller may retry or switch method.
	PlaceOrder(ctx context.Context, sessionID string, shipping model.ShippingInfo, method model.PaymentMethod) (*model.OrderSnapshot, error)

	// CreateUPIRequest validates the form and builds the QR payment
	// request for display without confirming anything.
	CreateUPIRequest(ctx context.Context, sessionID string, shipping model.ShippingInfo) (*model.UPIPaymentRequest, error)

	// LastOrder reads the session's confirmed order snapshot. Returns
	// (nil, nil) when no order has been placed.
	LastOrder(ctx context.Context, sessionID string) (*model.OrderSnapshot, error)
}

// EstimatedDelivery returns the display-only delivery estimate for a
// payment method: a week out for cash on delivery, five days otherwise.
func EstimatedDelivery(method model.PaymentMethod, from time.Time) time.Time {
	days := 5
	if method == model.PaymentCOD {
		days = 7
	}
	return from.AddDate(0, 0, days)
}

type service struct {
	store   session.Store
	drivers map[model.PaymentMethod]Driver
	upi     *UPIDriver
	logger  zerolog.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewService creates the checkout orchestrator. The UPI driver is named
// separately because it additionally serves QR request generation.
func NewService(store session.Store, upi *UPIDriver, others []Driver, logger zerolog.Logger) Service {
	drivers := map[model.PaymentMethod]Driver{
		model.PaymentUPI: upi,
	}
	for _, d := range others {
		drivers[d.Method()] = d
	}

	return &service{
		store:    store,
		drivers:  drivers,
		upi:      upi,
		logger:   logger.With().Str("service", "checkout").Logger(),
		inflight: make(map[string]struct{}),
	}
}

// begin reserves the session's single checkout slot. A second concurrent
// attempt (for example a double-submit) is rejected instead of producing
// two orders.
func (s *service) begin(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[sessionID]; busy {
		return model.ErrCheckoutInProgress
	}
	s.inflight[sessionID] = struct{}{}
	return nil
}

func (s *service) end(sessionID string) {
	s.mu.Lock()
	delete(s.inflight, sessionID)
	s.mu.Unlock()
}

func (s *service) PlaceOrder(ctx context.Context, sessionID string, shipping model.ShippingInfo, method model.PaymentMethod) (*model.OrderSnapshot, error) {
	if fieldErrs := ValidateShipping(shipping); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	driver, ok := s.drivers[method]
	if !ok {
		return nil, fmt.Errorf("no payment driver for method %q", method)
	}

	if err := s.begin(sessionID); err != nil {
		return nil, err
	}
	defer s.end(sessionID)

	items, err := s.store.Cart(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, model.ErrCartEmpty
	}

	totals := model.ComputeTotals(model.CartSubtotal(items))

	order := PendingOrder{
		SessionID: sessionID,
		Items:     items,
		Shipping:  shipping,
		Totals:    totals,
	}

	confirmation, err := driver.Attempt(ctx, order)
	if err != nil {
		// An abandoned session cancels the pending confirmation; nothing
		// is finalised and no stale order is created.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			s.logger.Info().
				Str("session_id", sessionID).
				Str("method", string(method)).
				Msg("checkout abandoned before payment confirmation")
			return nil, err
		}

		s.logger.Warn().
			Err(err).
			Str("session_id", sessionID).
			Str("method", string(method)).
			Msg("payment attempt failed")

		var paymentErr *model.PaymentError
		if errors.As(err, &paymentErr) {
			return nil, err
		}
		return nil, model.NewPaymentError("Payment failed. Please try again.", err)
	}

	snapshot, err := s.finalize(ctx, sessionID, order, method)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("session_id", sessionID).
		Str("order_id", snapshot.OrderID).
		Str("method", string(method)).
		Str("reference", confirmation.Reference).
		Float64("total", totals.Total).
		Msg("order confirmed")

	return snapshot, nil
}

// finalize builds the immutable order snapshot, writes it to the
// session's single snapshot slot, and clears the cart. The snapshot is
// stored as one serialised value, so the confirmation view never sees a
// partially written order.
func (s *service) finalize(ctx context.Context, sessionID string, order PendingOrder, method model.PaymentMethod) (*model.OrderSnapshot, error) {
	snapshot := &model.OrderSnapshot{
		OrderID:       newOrderID(),
		Items:         order.Items,
		Shipping:      order.Shipping,
		PaymentMethod: method,
		Totals:        order.Totals,
		Status:        model.OrderStatusConfirmed,
		Timestamp:     time.Now().UTC(),
	}

	if err := s.store.SaveOrder(ctx, sessionID, snapshot); err != nil {
		return nil, fmt.Errorf("failed to store order snapshot: %w", err)
	}

	if err := s.store.ClearCart(ctx, sessionID); err != nil {
		// The order is already confirmed and stored; a stale cart is
		// recoverable, losing the order is not.
		s.logger.Warn().
			Err(err).
			Str("session_id", sessionID).
			Str("order_id", snapshot.OrderID).
			Msg("failed to clear cart after checkout")
	}

	return snapshot, nil
}

func (s *service) CreateUPIRequest(ctx context.Context, sessionID string, shipping model.ShippingInfo) (*model.UPIPaymentRequest, error) {
	if fieldErrs := ValidateShipping(shipping); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	items, err := s.store.Cart(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, model.ErrCartEmpty
	}

	totals := model.ComputeTotals(model.CartSubtotal(items))
	return s.upi.BuildRequest(totals.Total), nil
}

func (s *service) LastOrder(ctx context.Context, sessionID string) (*model.OrderSnapshot, error) {
	snapshot, err := s.store.LastOrder(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order snapshot: %w", err)
	}
	if snapshot == nil {
		s.logger.Debug().Str("session_id", sessionID).Msg("no order snapshot for session")
		return nil, nil
	}
	return snapshot, nil
}

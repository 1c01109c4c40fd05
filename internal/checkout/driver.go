package checkout

import (
	"context"
	"fmt"
	"time"

	"stylehub/internal/model"
)

// PendingOrder is the order a payment driver attempts to confirm. It is
// assembled by the orchestrator from the session cart and the validated
// shipping form.
type PendingOrder struct {
	SessionID string
	Items     []model.CartItem
	Shipping  model.ShippingInfo
	Totals    model.OrderTotals
}

// Confirmation is a successful payment outcome.
type Confirmation struct {
	Method    model.PaymentMethod
	Reference string
	Message   string
}

// Driver is the single capability all payment methods implement: attempt
// a payment and eventually report its outcome. Implementations must
// honour context cancellation so an abandoned checkout discards any
// pending simulated confirmation instead of completing a stale order.
type Driver interface {
	Method() model.PaymentMethod
	Attempt(ctx context.Context, order PendingOrder) (*Confirmation, error)
}

// Delays configures the simulated confirmation delay per payment method.
// These stand in for real settlement events; a production implementation
// replaces them with webhook-driven confirmation or provider polling.
type Delays struct {
	COD  time.Duration
	UPI  time.Duration
	Card time.Duration
}

// DefaultDelays mirrors the storefront's simulated processing times.
func DefaultDelays() Delays {
	return Delays{
		COD:  2 * time.Second,
		UPI:  10 * time.Second,
		Card: 3 * time.Second,
	}
}

// wait blocks for d or until the context is cancelled.
func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// newOrderID derives an order id from the current time, matching the
// ORDER_<millis> form used across the storefront.
func newOrderID() string {
	return fmt.Sprintf("ORDER_%d", time.Now().UnixMilli())
}

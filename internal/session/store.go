package session

import (
	"context"
	"time"

	"stylehub/internal/model"
)

// Store is session-scoped storage for the cart and the single-slot order
// snapshot. The snapshot slot is overwritten by each order, never
// appended to, and is written as one serialised value so a reader never
// observes a partially written order.
type Store interface {
	// Cart returns the session's cart items, or nil when the session has
	// no cart yet.
	Cart(ctx context.Context, sessionID string) ([]model.CartItem, error)

	// SaveCart replaces the session's cart items.
	SaveCart(ctx context.Context, sessionID string, items []model.CartItem) error

	// ClearCart removes the session's cart.
	ClearCart(ctx context.Context, sessionID string) error

	// LastOrder returns the session's last order snapshot, or nil when no
	// order has been placed in this session.
	LastOrder(ctx context.Context, sessionID string) (*model.OrderSnapshot, error)

	// SaveOrder overwrites the session's order snapshot slot.
	SaveOrder(ctx context.Context, sessionID string, snapshot *model.OrderSnapshot) error
}

const (
	// Cart for a session: session:{id}:cart -> JSON []CartItem
	keyCart = "session:%s:cart"

	// Last confirmed order for a session: session:{id}:last_order -> JSON OrderSnapshot
	keyLastOrder = "session:%s:last_order"
)

// TTLSession bounds how long abandoned session data survives.
var TTLSession = 24 * time.Hour

package service

import (
	"context"

	"stylehub/internal/catalog"
	"stylehub/internal/model"
)

// ProductService defines operations for browsing the catalogue.
type ProductService interface {
	// List retrieves products matching the filter.
	List(ctx context.Context, filter catalog.Filter) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)
}

// ReviewService defines operations for product reviews.
type ReviewService interface {
	// GetProductReviews retrieves a product's reviews with the rating aggregate.
	GetProductReviews(ctx context.Context, productID string) (*model.ReviewSummary, error)

	// AddReview validates and appends a review for a product.
	AddReview(ctx context.Context, productID string, req *model.ReviewRequest) (*model.Review, error)
}

// CartService defines operations on the session-scoped cart. Every
// mutation returns the updated cart view with recomputed totals.
type CartService interface {
	// Get returns the session's cart.
	Get(ctx context.Context, sessionID string) (*model.CartView, error)

	// AddItem adds a product to the cart, merging with an existing line
	// for the same product and size.
	AddItem(ctx context.Context, sessionID, productID, size string, quantity int) (*model.CartView, error)

	// UpdateItem sets the quantity of an existing cart line.
	UpdateItem(ctx context.Context, sessionID, productID, size string, quantity int) (*model.CartView, error)

	// RemoveItem removes a cart line.
	RemoveItem(ctx context.Context, sessionID, productID, size string) (*model.CartView, error)

	// Clear empties the session's cart.
	Clear(ctx context.Context, sessionID string) error
}

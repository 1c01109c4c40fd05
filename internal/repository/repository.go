package repository

import (
	"context"

	"stylehub/internal/model"
)

// ReviewRepository defines the interface for review data access. The
// review collection is append-only with repository-assigned identity.
type ReviewRepository interface {
	// ListByProduct retrieves all reviews for a product, newest first.
	ListByProduct(ctx context.Context, productID string) ([]model.Review, error)

	// Insert appends a review and returns it with its assigned id.
	Insert(ctx context.Context, review *model.Review) (*model.Review, error)
}

package repository

import (
	"context"
	"fmt"

	"stylehub/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// reviewRepository implements ReviewRepository using PostgreSQL.
type reviewRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewReviewRepository creates a new PostgreSQL-backed review repository.
func NewReviewRepository(pool *pgxpool.Pool, logger zerolog.Logger) ReviewRepository {
	return &reviewRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "review").Logger(),
	}
}

// ListByProduct retrieves all reviews for a product, newest first.
func (r *reviewRepository) ListByProduct(ctx context.Context, productID string) ([]model.Review, error) {
	query := `
		SELECT id, product_id, user_name, rating, comment, created_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", productID).Msg("failed to query reviews")
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []model.Review
	for rows.Next() {
		var review model.Review
		err := rows.Scan(&review.ID, &review.ProductID, &review.UserName, &review.Rating, &review.Comment, &review.Date)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan review row")
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating review rows")
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, nil
}

// Insert appends a review and returns it with its assigned id.
func (r *reviewRepository) Insert(ctx context.Context, review *model.Review) (*model.Review, error) {
	query := `
		INSERT INTO reviews (product_id, user_name, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	inserted := *review
	err := r.pool.QueryRow(ctx, query,
		review.ProductID,
		review.UserName,
		review.Rating,
		review.Comment,
		review.Date,
	).Scan(&inserted.ID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("product_id", review.ProductID).
			Msg("failed to insert review")
		return nil, fmt.Errorf("failed to insert review: %w", err)
	}

	r.logger.Debug().
		Int64("review_id", inserted.ID).
		Str("product_id", review.ProductID).
		Msg("review inserted")

	return &inserted, nil
}

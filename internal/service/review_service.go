package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"stylehub/internal/model"
	"stylehub/internal/repository"

	"github.com/rs/zerolog"
)

// reviewService implements ReviewService.
type reviewService struct {
	reviewRepo repository.ReviewRepository
	products   ProductService
	logger     zerolog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(reviewRepo repository.ReviewRepository, products ProductService, logger zerolog.Logger) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		products:   products,
		logger:     logger.With().Str("service", "review").Logger(),
	}
}

// GetProductReviews retrieves a product's reviews, newest first, with the
// average rating rounded to one decimal place.
func (s *reviewService) GetProductReviews(ctx context.Context, productID string) (*model.ReviewSummary, error) {
	reviews, err := s.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", productID).Msg("failed to list reviews")
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	var totalRating int
	for _, review := range reviews {
		totalRating += review.Rating
	}

	average := 0.0
	if len(reviews) > 0 {
		average = math.Round(float64(totalRating)/float64(len(reviews))*10) / 10
	}

	if reviews == nil {
		reviews = []model.Review{}
	}

	return &model.ReviewSummary{
		Reviews:       reviews,
		AverageRating: average,
		TotalCount:    len(reviews),
	}, nil
}

// AddReview validates and appends a review for a product.
func (s *reviewService) AddReview(ctx context.Context, productID string, req *model.ReviewRequest) (*model.Review, error) {
	if req == nil {
		return nil, fmt.Errorf("review request is nil")
	}

	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	userName := strings.TrimSpace(req.UserName)
	comment := strings.TrimSpace(req.Comment)

	if userName == "" {
		return nil, fmt.Errorf("user name is required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		s.logger.Warn().
			Str("product_id", productID).
			Int("rating", req.Rating).
			Msg("invalid rating")
		return nil, model.ErrInvalidRating
	}
	if comment == "" {
		return nil, fmt.Errorf("comment is required")
	}

	review, err := s.reviewRepo.Insert(ctx, &model.Review{
		ProductID: productID,
		UserName:  userName,
		Rating:    req.Rating,
		Comment:   comment,
		Date:      time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", productID).Msg("failed to add review")
		return nil, fmt.Errorf("failed to add review: %w", err)
	}

	s.logger.Info().
		Int64("review_id", review.ID).
		Str("product_id", productID).
		Int("rating", review.Rating).
		Msg("review added")

	return review, nil
}

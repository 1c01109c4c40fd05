package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"stylehub/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockReviewRepository is a mock implementation of repository.ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) ListByProduct(ctx context.Context, productID string) ([]model.Review, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Review), args.Error(1)
}

func (m *MockReviewRepository) Insert(ctx context.Context, review *model.Review) (*model.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func TestReviewService_GetProductReviews(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	products := NewProductService(testCatalog(), logger)

	t.Run("Average rounds to one decimal", func(t *testing.T) {
		mockRepo := new(MockReviewRepository)
		service := NewReviewService(mockRepo, products, logger)

		reviews := []model.Review{
			{ID: 3, ProductID: "P001", Rating: 5, Date: time.Now()},
			{ID: 2, ProductID: "P001", Rating: 4, Date: time.Now().Add(-time.Hour)},
			{ID: 1, ProductID: "P001", Rating: 4, Date: time.Now().Add(-2 * time.Hour)},
		}
		mockRepo.On("ListByProduct", ctx, "P001").Return(reviews, nil)

		summary, err := service.GetProductReviews(ctx, "P001")

		require.NoError(t, err)
		// 13/3 = 4.333... rounds to 4.3
		assert.Equal(t, 4.3, summary.AverageRating)
		assert.Equal(t, 3, summary.TotalCount)
		assert.Equal(t, reviews, summary.Reviews)
		mockRepo.AssertExpectations(t)
	})

	t.Run("No reviews yields zero average and empty slice", func(t *testing.T) {
		mockRepo := new(MockReviewRepository)
		service := NewReviewService(mockRepo, products, logger)

		mockRepo.On("ListByProduct", ctx, "P002").Return([]model.Review(nil), nil)

		summary, err := service.GetProductReviews(ctx, "P002")

		require.NoError(t, err)
		assert.Equal(t, 0.0, summary.AverageRating)
		assert.Equal(t, 0, summary.TotalCount)
		assert.NotNil(t, summary.Reviews)
		assert.Empty(t, summary.Reviews)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockRepo := new(MockReviewRepository)
		service := NewReviewService(mockRepo, products, logger)

		mockRepo.On("ListByProduct", ctx, "P001").Return(nil, errors.New("database error"))

		summary, err := service.GetProductReviews(ctx, "P001")

		require.Error(t, err)
		assert.Nil(t, summary)
	})
}

func TestReviewService_AddReview(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	products := NewProductService(testCatalog(), logger)

	t.Run("Success trims and stores", func(t *testing.T) {
		mockRepo := new(MockReviewRepository)
		service := NewReviewService(mockRepo, products, logger)

		mockRepo.On("Insert", ctx, mock.MatchedBy(func(r *model.Review) bool {
			return r.ProductID == "P001" &&
				r.UserName == "Asha" &&
				r.Comment == "Great fit" &&
				r.Rating == 5 &&
				!r.Date.IsZero()
		})).Return(&model.Review{ID: 1, ProductID: "P001", UserName: "Asha", Rating: 5, Comment: "Great fit"}, nil)

		review, err := service.AddReview(ctx, "P001", &model.ReviewRequest{
			UserName: "  Asha  ",
			Rating:   5,
			Comment:  "  Great fit  ",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), review.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unknown product", func(t *testing.T) {
		mockRepo := new(MockReviewRepository)
		service := NewReviewService(mockRepo, products, logger)

		review, err := service.AddReview(ctx, "P999", &model.ReviewRequest{
			UserName: "Asha", Rating: 5, Comment: "x",
		})

		require.ErrorIs(t, err, model.ErrProductNotFound)
		assert.Nil(t, review)
		mockRepo.AssertNotCalled(t, "Insert")
	})

	t.Run("Rating out of range", func(t *testing.T) {
		mockRepo := new(MockReviewRepository)
		service := NewReviewService(mockRepo, products, logger)

		for _, rating := range []int{0, -1, 6} {
			review, err := service.AddReview(ctx, "P001", &model.ReviewRequest{
				UserName: "Asha", Rating: rating, Comment: "x",
			})

			require.ErrorIs(t, err, model.ErrInvalidRating)
			assert.Nil(t, review)
		}
		mockRepo.AssertNotCalled(t, "Insert")
	})

	t.Run("Missing user name", func(t *testing.T) {
		mockRepo := new(MockReviewRepository)
		service := NewReviewService(mockRepo, products, logger)

		review, err := service.AddReview(ctx, "P001", &model.ReviewRequest{
			UserName: "   ", Rating: 5, Comment: "x",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "user name is required")
		assert.Nil(t, review)
	})

	t.Run("Missing comment", func(t *testing.T) {
		mockRepo := new(MockReviewRepository)
		service := NewReviewService(mockRepo, products, logger)

		review, err := service.AddReview(ctx, "P001", &model.ReviewRequest{
			UserName: "Asha", Rating: 5, Comment: "   ",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "comment is required")
		assert.Nil(t, review)
	})

	t.Run("Nil request", func(t *testing.T) {
		mockRepo := new(MockReviewRepository)
		service := NewReviewService(mockRepo, products, logger)

		review, err := service.AddReview(ctx, "P001", nil)

		require.Error(t, err)
		assert.Nil(t, review)
	})
}

package integration

import (
	"context"
	"testing"
	"time"

	"stylehub/internal/model"
	"stylehub/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewReviewRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("Insert assigns sequential ids", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		first, err := repo.Insert(ctx, &model.Review{
			ProductID: "P001",
			UserName:  "Asha",
			Rating:    5,
			Comment:   "Great fit",
			Date:      time.Now().UTC(),
		})
		require.NoError(t, err)
		assert.Greater(t, first.ID, int64(0))

		second, err := repo.Insert(ctx, &model.Review{
			ProductID: "P001",
			UserName:  "Ravi",
			Rating:    4,
			Comment:   "Good value",
			Date:      time.Now().UTC(),
		})
		require.NoError(t, err)
		assert.Greater(t, second.ID, first.ID)
	})

	t.Run("ListByProduct returns newest first", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		now := time.Now().UTC()
		older := &model.Review{ProductID: "P001", UserName: "Asha", Rating: 5, Comment: "Great fit", Date: now.Add(-2 * time.Hour)}
		newer := &model.Review{ProductID: "P001", UserName: "Mira", Rating: 4, Comment: "Good value", Date: now}
		other := &model.Review{ProductID: "P002", UserName: "Ravi", Rating: 3, Comment: "Okay", Date: now.Add(-time.Hour)}

		for _, review := range []*model.Review{older, newer, other} {
			_, err := repo.Insert(ctx, review)
			require.NoError(t, err)
		}

		reviews, err := repo.ListByProduct(ctx, "P001")
		require.NoError(t, err)
		require.Len(t, reviews, 2)
		assert.Equal(t, "Mira", reviews[0].UserName)
		assert.Equal(t, "Asha", reviews[1].UserName)
	})

	t.Run("ListByProduct returns empty for unreviewed product", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		reviews, err := repo.ListByProduct(ctx, "P999")
		require.NoError(t, err)
		assert.Empty(t, reviews)
	})

	t.Run("Round-trips review fields", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		date := time.Now().UTC().Truncate(time.Microsecond)
		inserted, err := repo.Insert(ctx, &model.Review{
			ProductID: "P003",
			UserName:  "Asha",
			Rating:    2,
			Comment:   "Runs small, size up",
			Date:      date,
		})
		require.NoError(t, err)

		reviews, err := repo.ListByProduct(ctx, "P003")
		require.NoError(t, err)
		require.Len(t, reviews, 1)

		got := reviews[0]
		assert.Equal(t, inserted.ID, got.ID)
		assert.Equal(t, "P003", got.ProductID)
		assert.Equal(t, "Asha", got.UserName)
		assert.Equal(t, 2, got.Rating)
		assert.Equal(t, "Runs small, size up", got.Comment)
		assert.True(t, got.Date.Equal(date))
	})
}

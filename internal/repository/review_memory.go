package repository

import (
	"context"
	"sort"
	"sync"

	"stylehub/internal/model"
)

// memoryReviewRepository implements ReviewRepository in process memory.
// It backs unit tests and database-less deployments; identity is an
// auto-incrementing counter guarded by the mutex.
type memoryReviewRepository struct {
	mu      sync.RWMutex
	nextID  int64
	reviews []model.Review
}

// NewMemoryReviewRepository creates an in-memory review repository,
// optionally pre-populated with seed reviews.
func NewMemoryReviewRepository(seed []model.Review) ReviewRepository {
	repo := &memoryReviewRepository{nextID: 1}
	for _, review := range seed {
		review.ID = repo.nextID
		repo.nextID++
		repo.reviews = append(repo.reviews, review)
	}
	return repo
}

func (r *memoryReviewRepository) ListByProduct(ctx context.Context, productID string) ([]model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []model.Review
	for _, review := range r.reviews {
		if review.ProductID == productID {
			matched = append(matched, review)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})

	return matched, nil
}

func (r *memoryReviewRepository) Insert(ctx context.Context, review *model.Review) (*model.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inserted := *review
	inserted.ID = r.nextID
	r.nextID++
	r.reviews = append(r.reviews, inserted)

	return &inserted, nil
}

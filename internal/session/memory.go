package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"stylehub/internal/model"
)

// memoryStore implements Store in process memory for tests and
// redis-less runs. Values are kept JSON-serialised so the atomicity
// characteristics match the Redis store.
type memoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore creates an in-memory session store.
func NewMemoryStore() Store {
	return &memoryStore{values: make(map[string][]byte)}
}

func (s *memoryStore) get(key string, out any) (bool, error) {
	s.mu.RLock()
	data, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to decode session value: %w", err)
	}
	return true, nil
}

func (s *memoryStore) set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode session value: %w", err)
	}
	s.mu.Lock()
	s.values[key] = data
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Cart(ctx context.Context, sessionID string) ([]model.CartItem, error) {
	var items []model.CartItem
	ok, err := s.get(fmt.Sprintf(keyCart, sessionID), &items)
	if err != nil || !ok {
		return nil, err
	}
	return items, nil
}

func (s *memoryStore) SaveCart(ctx context.Context, sessionID string, items []model.CartItem) error {
	return s.set(fmt.Sprintf(keyCart, sessionID), items)
}

func (s *memoryStore) ClearCart(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.values, fmt.Sprintf(keyCart, sessionID))
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) LastOrder(ctx context.Context, sessionID string) (*model.OrderSnapshot, error) {
	var snapshot model.OrderSnapshot
	ok, err := s.get(fmt.Sprintf(keyLastOrder, sessionID), &snapshot)
	if err != nil || !ok {
		return nil, err
	}
	return &snapshot, nil
}

func (s *memoryStore) SaveOrder(ctx context.Context, sessionID string, snapshot *model.OrderSnapshot) error {
	return s.set(fmt.Sprintf(keyLastOrder, sessionID), snapshot)
}

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"stylehub/internal/config"
	"stylehub/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// redisStore implements Store on a Redis client. Each value is a single
// JSON blob, so writes are atomic from the reader's perspective.
type redisStore struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewRedisStore creates a Redis-backed session store and verifies
// connectivity.
func NewRedisStore(ctx context.Context, cfg config.RedisConfig, logger zerolog.Logger) (Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger = logger.With().Str("component", "redis-session-store").Logger()
	logger.Info().Str("addr", cfg.Addr).Int("db", cfg.DB).Msg("redis session store initialised")

	return &redisStore{client: client, logger: logger}, nil
}

func (s *redisStore) Cart(ctx context.Context, sessionID string) ([]model.CartItem, error) {
	key := fmt.Sprintf(keyCart, sessionID)
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to read cart")
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	var items []model.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to decode cart")
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return items, nil
}

func (s *redisStore) SaveCart(ctx context.Context, sessionID string, items []model.CartItem) error {
	key := fmt.Sprintf(keyCart, sessionID)
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := s.client.Set(ctx, key, data, TTLSession).Err(); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to save cart")
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (s *redisStore) ClearCart(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(keyCart, sessionID)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (s *redisStore) LastOrder(ctx context.Context, sessionID string) (*model.OrderSnapshot, error) {
	key := fmt.Sprintf(keyLastOrder, sessionID)
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to read order snapshot")
		return nil, fmt.Errorf("failed to read order snapshot: %w", err)
	}

	var snapshot model.OrderSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to decode order snapshot")
		return nil, fmt.Errorf("failed to decode order snapshot: %w", err)
	}
	return &snapshot, nil
}

func (s *redisStore) SaveOrder(ctx context.Context, sessionID string, snapshot *model.OrderSnapshot) error {
	key := fmt.Sprintf(keyLastOrder, sessionID)
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode order snapshot: %w", err)
	}

	if err := s.client.Set(ctx, key, data, TTLSession).Err(); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to save order snapshot")
		return fmt.Errorf("failed to save order snapshot: %w", err)
	}

	s.logger.Debug().
		Str("session_id", sessionID).
		Str("order_id", snapshot.OrderID).
		Msg("order snapshot saved")

	return nil
}

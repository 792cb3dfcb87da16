// internal/session/redis.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps session state in Redis so carts survive process restarts
// and horizontal scaling.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) GetCart(ctx context.Context, visitorID string) (map[string]int, error) {
	data, err := s.client.Get(ctx, cartKeyPrefix+visitorID).Bytes()
	if errors.Is(err, redis.Nil) {
		return map[string]int{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	cart := map[string]int{}
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return cart, nil
}

func (s *RedisStore) SaveCart(ctx context.Context, visitorID string, cart map[string]int) error {
	if len(cart) == 0 {
		if err := s.client.Del(ctx, cartKeyPrefix+visitorID).Err(); err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}
		return nil
	}

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKeyPrefix+visitorID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (s *RedisStore) SaveBatch(ctx context.Context, visitorID string, orderIDs []string) error {
	data, err := json.Marshal(orderIDs)
	if err != nil {
		return fmt.Errorf("failed to encode batch: %w", err)
	}
	if err := s.client.Set(ctx, batchKeyPrefix+visitorID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save batch: %w", err)
	}
	return nil
}

func (s *RedisStore) PopBatch(ctx context.Context, visitorID string) ([]string, error) {
	data, err := s.client.GetDel(ctx, batchKeyPrefix+visitorID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to pop batch: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to decode batch: %w", err)
	}
	return ids, nil
}

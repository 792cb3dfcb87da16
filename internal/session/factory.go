// internal/session/factory.go
package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/okaimono/shotengai-backend/internal/config"
)

// NewStore connects to Redis and falls back to the in-memory store when the
// server is unreachable, so a missing Redis never blocks local development.
func NewStore(cfg config.RedisConfig, ttl time.Duration) Store {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logrus.WithError(err).Warn("Redis unavailable, using in-memory session store")
		return NewMemoryStore()
	}

	return NewRedisStore(client, ttl)
}

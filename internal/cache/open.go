package cache

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Open builds the read cache: Redis-backed when redisURL is set, in-memory otherwise.
// The returned close func releases the Redis connection.
func Open(ctx context.Context, redisURL string, ttl time.Duration, logger *zerolog.Logger) (*Cache, func() error, error) {
	if redisURL == "" {
		return New(Options{TTL: ttl, Logger: logger}), func() error { return nil }, nil
	}
	client, err := Connect(ctx, redisURL)
	if err != nil {
		return nil, nil, err
	}
	return New(Options{Store: NewRedisStore(client), TTL: ttl, Logger: logger}), client.Close, nil
}

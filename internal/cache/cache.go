// Package cache keeps recent upstream reads for a short time and collapses concurrent
// requests for the same key into one upstream call.
package cache

import (
	"context"
	"io"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Store persists cached payloads. Implementations must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// Cache wraps a Store with request deduplication.
type Cache struct {
	store  Store
	ttl    time.Duration
	group  singleflight.Group
	logger zerolog.Logger
	// gen is bumped by Invalidate; loads started under an older value are not stored.
	gen atomic.Uint64
}

// Options configures a Cache.
type Options struct {
	Store  Store
	TTL    time.Duration
	Logger *zerolog.Logger
}

// New constructs a Cache. A nil store falls back to an in-memory store.
// A non-positive TTL keeps deduplication but stores nothing.
func New(opts Options) *Cache {
	store := opts.Store
	if store == nil {
		store = NewMemoryStore()
	}
	logger := zerolog.New(io.Discard)
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Cache{store: store, ttl: opts.TTL, logger: logger}
}

// Fetch returns the cached value for key or loads it with fn.
// Errors from fn are returned to every waiting caller and never stored.
// The shared load ignores the cancellation of whichever caller started it;
// each caller stops waiting when its own ctx is done.
func (c *Cache) Fetch(ctx context.Context, key string, fn func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	if c.ttl > 0 {
		if v, ok, err := c.store.Get(ctx, key); err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("cache: read failed")
		} else if ok {
			return v, nil
		}
	}

	gen := c.gen.Load()
	loadCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key+"#"+strconv.FormatUint(gen, 10), func() (any, error) {
		data, err := fn(loadCtx)
		if err != nil {
			return nil, err
		}
		if c.ttl > 0 {
			if c.gen.Load() != gen {
				c.logger.Debug().Str("key", key).Msg("cache: invalidated during load, not stored")
				return data, nil
			}
			if err := c.store.Set(loadCtx, key, data, c.ttl); err != nil {
				c.logger.Warn().Err(err).Str("key", key).Msg("cache: write failed")
			}
		}
		return data, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			c.logger.Debug().Str("key", key).Msg("cache: shared in-flight fetch")
		}
		return res.Val.([]byte), nil
	}
}

// Invalidate removes every entry whose key starts with one of the prefixes.
func (c *Cache) Invalidate(ctx context.Context, prefixes ...string) error {
	c.gen.Add(1)
	for _, p := range prefixes {
		if err := c.store.DeletePrefix(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

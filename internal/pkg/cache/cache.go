// Package cache provides a read-through JSON cache over Redis with TTL
// expiry and key-pattern invalidation on writes. It is an optimization
// only: correctness never depends on it, and every failure falls back to
// the loader.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ridepool/carpool/internal/pkg/database"
	"github.com/ridepool/carpool/internal/pkg/logger"
)

// Loader fetches the value on a cache miss.
type Loader func(ctx context.Context) (interface{}, error)

// Cache is a read-through cache. A nil *Cache is valid and bypasses
// caching entirely, which keeps callers free of nil checks.
type Cache struct {
	redis *database.RedisClient
	ttl   time.Duration
}

// New creates a cache with the given TTL.
func New(redisClient *database.RedisClient, ttl time.Duration) *Cache {
	return &Cache{redis: redisClient, ttl: ttl}
}

// Remember returns the cached value for key into dest, or runs the loader,
// caches its result and decodes it into dest.
func (c *Cache) Remember(ctx context.Context, key string, dest interface{}, load Loader) error {
	if c == nil {
		value, err := load(ctx)
		if err != nil {
			return err
		}
		return recode(value, dest)
	}

	raw, err := c.redis.Get(ctx, key)
	if err == nil {
		if err := json.Unmarshal([]byte(raw), dest); err == nil {
			return nil
		}
		// Corrupt entry: drop it and reload.
		_ = c.redis.Delete(ctx, key)
	} else if err != redis.Nil {
		logger.Warn("cache read failed",
			logger.String("key", key),
			logger.ErrorField(err))
	}

	value, err := load(ctx)
	if err != nil {
		return err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := c.redis.Set(ctx, key, encoded, c.ttl); err != nil {
		logger.Warn("cache write failed",
			logger.String("key", key),
			logger.ErrorField(err))
	}

	return json.Unmarshal(encoded, dest)
}

// Invalidate removes every key matching the pattern. Failures are logged
// and swallowed; the TTL bounds staleness either way.
func (c *Cache) Invalidate(ctx context.Context, pattern string) {
	if c == nil {
		return
	}
	if err := c.redis.DeletePattern(ctx, pattern); err != nil {
		logger.Warn("cache invalidation failed",
			logger.String("pattern", pattern),
			logger.ErrorField(err))
	}
}

func recode(value, dest interface{}) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(encoded, dest)
}

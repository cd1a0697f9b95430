package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrMiss indicates the requested key was not found in the fallback cache.
var ErrMiss = errors.New("cache miss")

// Fallback is the persistent response cache backed by Redis.
// It stores raw response bodies keyed by derived cache keys. Entries have no
// modeled expiry; absence of a key is an expected state.
type Fallback struct {
	redis *redis.Client
}

// NewFallback creates a fallback cache over the given Redis client.
func NewFallback(redisClient *redis.Client) *Fallback {
	if redisClient == nil {
		panic("redis client cannot be nil")
	}
	return &Fallback{
		redis: redisClient,
	}
}

// Get retrieves a cached response body by key.
// Returns ErrMiss if the key doesn't exist.
func (f *Fallback) Get(ctx context.Context, key string) (string, error) {
	body, err := f.redis.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			FallbackMisses.Inc()
			return "", ErrMiss
		}
		FallbackErrors.WithLabelValues("get").Inc()
		return "", fmt.Errorf("redis get: %w", err)
	}

	FallbackHits.Inc()
	return body, nil
}

// Set stores a response body under the given key without expiry.
func (f *Fallback) Set(ctx context.Context, key, body string) error {
	if err := f.redis.Set(ctx, key, body, 0).Err(); err != nil {
		FallbackErrors.WithLabelValues("set").Inc()
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

// Delete removes a cached entry. Deleting an absent key is not an error.
func (f *Fallback) Delete(ctx context.Context, key string) error {
	if err := f.redis.Del(ctx, key).Err(); err != nil {
		FallbackErrors.WithLabelValues("delete").Inc()
		return fmt.Errorf("redis del: %w", err)
	}

	return nil
}

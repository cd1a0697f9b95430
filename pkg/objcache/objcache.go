package objcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
)

// DefaultMemorySize is the in-process tier capacity used by New when the
// caller passes no size.
const DefaultMemorySize = 1024

// entry is an in-process tier record. found=false is a cached miss: the store
// was consulted and had nothing, so the next lookup can skip it.
type entry[T any] struct {
	value *T
	found bool
}

// Cache is the two-tier object cache. The in-process tier is an LRU whose
// eviction only forces a re-read of the store, so bounding it does not affect
// correctness. Safe for concurrent use.
type Cache[T any] struct {
	memory *lru.Cache[string, entry[T]]
	store  Store
	logger zerolog.Logger
}

// New creates a two-tier object cache over the given persistent store.
// A memorySize of 0 selects DefaultMemorySize.
func New[T any](store Store, memorySize int, logger zerolog.Logger) (*Cache[T], error) {
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if memorySize == 0 {
		memorySize = DefaultMemorySize
	}

	memory, err := lru.New[string, entry[T]](memorySize)
	if err != nil {
		return nil, fmt.Errorf("creating memory tier: %w", err)
	}

	return &Cache[T]{
		memory: memory,
		store:  store,
		logger: logger,
	}, nil
}

// GetItem returns the cached value for key, or ok=false when absent.
// The in-process tier is consulted first, including cached misses. On an
// in-process miss the store is read and the result, found or not, populates
// the in-process tier. Store read failures are logged and degrade to a miss.
func (c *Cache[T]) GetItem(ctx context.Context, key string) (*T, bool) {
	if e, ok := c.memory.Get(key); ok {
		if e.found {
			Hits.WithLabelValues("memory").Inc()
		} else {
			Misses.Inc()
		}
		return e.value, e.found
	}

	data, err := c.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.memory.Add(key, entry[T]{})
			Misses.Inc()
			return nil, false
		}

		// Transient store failure: degrade to a miss without caching it.
		Errors.WithLabelValues("get").Inc()
		c.logger.Warn().Err(err).Str("cache_key", key).Msg("Object store read failed")
		return nil, false
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		Errors.WithLabelValues("get").Inc()
		c.logger.Warn().Err(err).Str("cache_key", key).Msg("Invalid object cache entry")
		return nil, false
	}

	c.memory.Add(key, entry[T]{value: &value, found: true})
	Hits.WithLabelValues("store").Inc()
	return &value, true
}

// SetItem writes the value through to the store and then updates the
// in-process tier. A store failure is returned to the caller and leaves the
// in-process tier untouched, since the durable state did not change.
func (c *Cache[T]) SetItem(ctx context.Context, key string, value T, tags ...string) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value: %w", err)
	}

	if err := c.store.Set(ctx, key, data, tags); err != nil {
		Errors.WithLabelValues("set").Inc()
		return fmt.Errorf("object store set: %w", err)
	}

	c.memory.Add(key, entry[T]{value: &value, found: true})
	return nil
}

// UnsetItem removes the key from both tiers. Removing an absent key is a
// no-op, not an error.
func (c *Cache[T]) UnsetItem(ctx context.Context, key string) error {
	if err := c.store.Delete(ctx, key); err != nil {
		Errors.WithLabelValues("delete").Inc()
		return fmt.Errorf("object store delete: %w", err)
	}

	c.memory.Add(key, entry[T]{})
	return nil
}

// FlushTag removes every value carrying the tag from the store and drops the
// affected keys from the in-process tier.
func (c *Cache[T]) FlushTag(ctx context.Context, tag string) error {
	keys, err := c.store.FlushByTag(ctx, tag)
	if err != nil {
		Errors.WithLabelValues("flush_tag").Inc()
		return fmt.Errorf("object store flush tag: %w", err)
	}

	for _, key := range keys {
		c.memory.Remove(key)
	}

	return nil
}

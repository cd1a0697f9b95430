package objcache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound indicates the requested key was not found in the store.
var ErrNotFound = errors.New("object not found")

// Store is the persistent tier of the object cache. Set may associate tags
// with a key; FlushByTag removes every key carrying a tag and reports which
// keys were removed so callers can drop them from faster tiers.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, tags []string) error
	Delete(ctx context.Context, key string) error
	FlushByTag(ctx context.Context, tag string) ([]string, error)
}

const (
	objPrefix = "obj:"
	tagPrefix = "obj:tag:"
)

// RedisStore implements Store on a Redis client. Values live under "obj:<key>";
// each tag is a Redis set of the keys that carry it.
type RedisStore struct {
	redis *redis.Client
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a Redis-backed object store.
func NewRedisStore(redisClient *redis.Client) *RedisStore {
	if redisClient == nil {
		panic("redis client cannot be nil")
	}
	return &RedisStore{
		redis: redisClient,
	}
}

// Get retrieves the raw value for a key. Returns ErrNotFound on absence.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.redis.Get(ctx, objPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	return data, nil
}

// Set stores the raw value and registers the key under each tag.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, tags []string) error {
	pipe := s.redis.TxPipeline()
	pipe.Set(ctx, objPrefix+key, value, 0)
	for _, tag := range tags {
		pipe.SAdd(ctx, tagPrefix+tag, key)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

// Delete removes the value for a key. Tag set members are left behind and
// cleaned up lazily on the next FlushByTag.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.redis.Del(ctx, objPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}

	return nil
}

// FlushByTag removes every key registered under the tag, plus the tag set
// itself, and returns the removed keys.
func (s *RedisStore) FlushByTag(ctx context.Context, tag string) ([]string, error) {
	keys, err := s.redis.SMembers(ctx, tagPrefix+tag).Result()
	if err != nil {
		return nil, fmt.Errorf("redis smembers: %w", err)
	}

	pipe := s.redis.TxPipeline()
	for _, key := range keys {
		pipe.Del(ctx, objPrefix+key)
	}
	pipe.Del(ctx, tagPrefix+tag)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("redis flush tag: %w", err)
	}

	return keys, nil
}

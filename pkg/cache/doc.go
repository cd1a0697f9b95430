// Package cache provides the fallback response cache and cache key
// derivation for connectors.
//
// The fallback cache is a persistent key/value store of raw response bodies
// backed by Redis. When fallback caching is enabled for a connector, a
// populated entry is served instead of performing a live request. Entries
// carry no expiry of their own; the backing store's eviction policy applies.
//
// Cache keys are derived from a connector-scoped identifier with a stable
// 64-bit hash, so the same identifier always maps to the same key across
// process restarts, and two connectors never share keys for the same
// identifier.
//
// Usage:
//
//	fb := cache.NewFallback(redisClient)
//	key := cache.Key("weather", uri.String())
//
//	body, err := fb.Get(ctx, key)
//	if errors.Is(err, cache.ErrMiss) {
//		// perform the live request
//	}
package cache

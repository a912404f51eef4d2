// Package redis provides the read-side cache used by the pet catalog.
// Services depend on the CacheService interface rather than the
// concrete Redis client, so tests can substitute an in-memory fake.
package redis

import (
	"context"
	"time"
)

// CacheService is the cache abstraction consumed by the service layer.
type CacheService interface {
	// Set stores a value under key with a TTL.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Get returns the value for key, or "" and nil when absent.
	Get(ctx context.Context, key string) (string, error)
	// Delete removes a key if present.
	Delete(ctx context.Context, key string) error
	// DeleteByPattern removes all keys matching a glob pattern.
	DeleteByPattern(ctx context.Context, pattern string) error
}

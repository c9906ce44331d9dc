package cache

import (
	"context"
	"time"
)

// Cache is a key-value store with per-key TTL. It is injected into services
// and is never the source of truth: staleness is bounded by the TTL or an
// explicit Delete on write, whichever comes sooner.
type Cache interface {
	// Get returns the cached value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

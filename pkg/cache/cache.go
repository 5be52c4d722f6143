// Package cache provides pluggable byte caches used to memoize pipeline
// stages. Conversion and layout are deterministic over their inputs, so a
// content-hash key fully identifies a result.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys. Implementations must
// be safe for concurrent use.
type Cache interface {
	// Get returns the cached value and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Package cache stores rendered artifacts and computed figures so repeated
// renders of an unchanged chart are free.
//
// Three backends implement [Cache]: [FileCache] for the CLI's local cache
// directory, [RedisCache] for a shared cache, and [NullCache] when caching
// is disabled. Keys come from a [Keyer]; [DefaultKeyer] derives them from a
// content hash of the chart spec plus the render options, so any change to
// a chart produces new keys and stale entries simply stop being read.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found. A miss is not
	// an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) error
}

// Default lifetimes.
const (
	LayoutTTL   = 7 * 24 * time.Hour
	ArtifactTTL = 30 * 24 * time.Hour
)

// Package cache stores rendered artifacts so repeated requests for the same
// dungeon skip the render stage.
//
// A dungeon is fully determined by its seed and generator configuration, so
// an artifact key is a hash of those plus the output format and style. The
// HTTP server keeps artifacts in a bounded in-memory LRU ([MemoryCache]);
// the CLI keeps Graphviz output on disk ([FileCache]) under the XDG cache
// directory. [NullCache] disables caching.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long a rendered artifact stays valid.
const TTLArtifact = 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key.
	Delete(ctx context.Context, key string) error

	// Close releases resources.
	Close() error
}

// Package cache provides the artifact cache used by the render pipeline.
//
// Rendered outputs (DOT text, SVG bytes, JSON reports) are cached under
// keys derived from the snapshot content hash plus render options, so
// re-rendering an unchanged document is a read, not a Graphviz run.
//
// Backends:
//   - file: local directory cache for CLI usage
//   - redis: shared cache for multi-instance deployments
//   - null: disabled caching for tests and --no-cache runs
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by helpers that require a hit when an item is
// not found in cache. [Cache.Get] itself reports misses via its bool result.
var ErrCacheMiss = errors.New("cache miss")

// TTLArtifact is the default time-to-live for rendered artifacts. Artifacts
// are keyed by content hash, so expiry only bounds disk and memory growth.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is the storage interface shared by all backends.
// A zero TTL stores entries without expiration; a negative TTL means the
// entry is already stale and must never come back from Get.
type Cache interface {
	// Get retrieves a value. The bool result reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given time-to-live.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer derives cache keys from render inputs.
type Keyer interface {
	// ArtifactKey keys a rendered artifact by the snapshot's content hash,
	// the output format, and the style options that shaped it.
	ArtifactKey(snapshotHash, format string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render options that participate in artifact keys.
// Two renders with equal snapshot hashes but different options must not
// share an entry.
type ArtifactKeyOpts struct {
	Style    string
	Detailed bool
}

// DefaultKeyer derives keys by hashing the structured inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// ArtifactKey implements Keyer.
func (k *DefaultKeyer) ArtifactKey(snapshotHash, format string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", snapshotHash, format, opts)
}

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation, e.g.
// separating per-store snapshots from ad-hoc file renders.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ArtifactKey implements Keyer.
func (k *ScopedKeyer) ArtifactKey(snapshotHash, format string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(snapshotHash, format, opts)
}

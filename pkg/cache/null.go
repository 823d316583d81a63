package cache

import (
	"context"
	"time"
)

// NullCache discards every artifact and reports every lookup as a miss,
// so each render goes through Graphviz. It backs --no-cache runs and
// keeps pipeline tests deterministic.
type NullCache struct{}

// NewNullCache creates a cache with storage disabled.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get reports a miss for every key.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the artifact.
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete is a no-op; there is never anything to remove.
func (c *NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close is a no-op.
func (c *NullCache) Close() error {
	return nil
}

var _ Cache = (*NullCache)(nil)

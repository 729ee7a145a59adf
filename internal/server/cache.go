package server

import (
	"context"
	"sync"
	"time"

	"github.com/mj1618/groupie/internal/model"
	"github.com/mj1618/groupie/internal/platform"
	"github.com/mj1618/groupie/internal/snapshot"
)

// SnapshotCache provides a TTL-based cache for window snapshots so that
// bursts of tool calls share one pair of queries.
type SnapshotCache struct {
	mu        sync.Mutex
	windows   []model.Window
	timestamp time.Time
	valid     bool
	ttl       time.Duration
}

// NewSnapshotCache creates a new cache. A ttl of 0 disables caching.
func NewSnapshotCache(ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{ttl: ttl}
}

// Fetch returns the cached snapshot if within TTL, otherwise fetches fresh.
// Failed fetches are not cached.
func (c *SnapshotCache) Fetch(ctx context.Context, q platform.Querier) ([]model.Window, error) {
	if c.ttl == 0 {
		return snapshot.Fetch(ctx, q)
	}

	c.mu.Lock()
	if c.valid && time.Since(c.timestamp) < c.ttl {
		windows := append([]model.Window(nil), c.windows...)
		c.mu.Unlock()
		return windows, nil
	}
	c.mu.Unlock()

	windows, err := snapshot.Fetch(ctx, q)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.windows = append([]model.Window(nil), windows...)
	c.timestamp = time.Now()
	c.valid = true
	c.mu.Unlock()

	return windows, nil
}

// Invalidate drops the cached snapshot.
func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.windows = nil
	c.valid = false
}

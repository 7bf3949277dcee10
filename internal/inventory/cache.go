package inventory

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/netitem/internal/metrics"
)

// CacheConfig sizes the snapshot cache. A Size of zero disables caching.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// cachedSnapshot wraps a snapshot with version metadata for cache invalidation
type cachedSnapshot struct {
	Version  string
	Snapshot Snapshot
	CachedAt time.Time
}

// snapshotCache is an in-memory LRU of decoded snapshots keyed by player id,
// with time-based expiration and version-based invalidation.
type snapshotCache struct {
	lru *expirable.LRU[string, *cachedSnapshot]
}

func newSnapshotCache(cfg CacheConfig) *snapshotCache {
	if cfg.Size <= 0 {
		return &snapshotCache{}
	}
	return &snapshotCache{
		lru: expirable.NewLRU[string, *cachedSnapshot](cfg.Size, nil, cfg.TTL),
	}
}

// Get returns the cached snapshot when present and written by the current schema version.
func (c *snapshotCache) Get(playerID string) (Snapshot, bool) {
	if c.lru == nil {
		return Snapshot{}, false
	}
	entry, found := c.lru.Get(playerID)
	if !found {
		metrics.CacheMisses.Inc()
		return Snapshot{}, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(playerID)
		metrics.CacheMisses.Inc()
		return Snapshot{}, false
	}

	metrics.CacheHits.Inc()
	return entry.Snapshot, true
}

// Set stores a snapshot with the current schema version.
func (c *snapshotCache) Set(playerID string, snap Snapshot) {
	if c.lru == nil {
		return
	}
	c.lru.Add(playerID, &cachedSnapshot{
		Version:  CacheSchemaVersion,
		Snapshot: snap,
		CachedAt: time.Now(),
	})
}

// Invalidate removes a player's snapshot.
func (c *snapshotCache) Invalidate(playerID string) {
	if c.lru == nil {
		return
	}
	c.lru.Remove(playerID)
}

// Len returns the number of cached snapshots.
func (c *snapshotCache) Len() int {
	if c.lru == nil {
		return 0
	}
	return c.lru.Len()
}

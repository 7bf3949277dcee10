package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/netitem/internal/netitem"
)

func TestSnapshotCache(t *testing.T) {
	cache := newSnapshotCache(CacheConfig{Size: 2, TTL: time.Minute})
	snap, err := NewSnapshot().WithSlot(0, netitem.New(1, 1, 0))
	require.NoError(t, err)

	_, found := cache.Get("alice")
	assert.False(t, found)

	cache.Set("alice", snap)
	got, found := cache.Get("alice")
	assert.True(t, found)
	assert.Equal(t, snap, got)

	cache.Invalidate("alice")
	_, found = cache.Get("alice")
	assert.False(t, found)
}

func TestSnapshotCache_Eviction(t *testing.T) {
	cache := newSnapshotCache(CacheConfig{Size: 2, TTL: time.Minute})

	cache.Set("a", NewSnapshot())
	cache.Set("b", NewSnapshot())
	cache.Set("c", NewSnapshot())

	assert.Equal(t, 2, cache.Len())
	_, found := cache.Get("a")
	assert.False(t, found, "least recently used entry is evicted")
}

func TestSnapshotCache_VersionMismatch(t *testing.T) {
	cache := newSnapshotCache(CacheConfig{Size: 2, TTL: time.Minute})
	cache.lru.Add("alice", &cachedSnapshot{Version: "0.1", Snapshot: NewSnapshot()})

	_, found := cache.Get("alice")
	assert.False(t, found)
	assert.Zero(t, cache.Len(), "stale entry is removed")
}

func TestSnapshotCache_Disabled(t *testing.T) {
	cache := newSnapshotCache(CacheConfig{})

	cache.Set("alice", NewSnapshot())
	_, found := cache.Get("alice")
	assert.False(t, found)
	assert.Zero(t, cache.Len())
	cache.Invalidate("alice")
}

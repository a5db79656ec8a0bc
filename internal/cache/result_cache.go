// Package cache stores parse results keyed by content fingerprint. The
// in-memory tier is bounded with an insertion-order truncation policy; the
// optional persistent tier is a port implemented by hosts.
package cache

import (
	"runtime"

	"schemadoc/internal/domain"
)

// DefaultCapacity is the entry cap before the cache is pruned.
const DefaultCapacity = 100

// ResultCache is a bounded fingerprint-keyed store. Eviction truncates to the
// most recently inserted half once the cap is exceeded; it is not recency
// (LRU) based. No internal locking: single-writer use per engine instance.
type ResultCache struct {
	capacity int
	entries  map[uint64]*domain.ParseResult
	order    []uint64

	hits   int64
	misses int64
}

// New creates a ResultCache holding at most capacity entries. Non-positive
// capacity falls back to DefaultCapacity.
func New(capacity int) *ResultCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &ResultCache{
		capacity: capacity,
		entries:  make(map[uint64]*domain.ParseResult),
	}
}

// Get returns the cached result for key, if present.
func (c *ResultCache) Get(key uint64) (*domain.ParseResult, bool) {
	result, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return result, ok
}

// Put inserts a result. When the entry count exceeds capacity, the cache is
// pruned to the most recently inserted half.
func (c *ResultCache) Put(key uint64, result *domain.ParseResult) {
	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, key)
	}
	c.entries[key] = result

	if len(c.entries) > c.capacity {
		c.prune()
	}
}

func (c *ResultCache) prune() {
	keep := c.capacity / 2
	cut := len(c.order) - keep
	for _, key := range c.order[:cut] {
		delete(c.entries, key)
	}
	c.order = append(c.order[:0], c.order[cut:]...)
}

// Clear empties the cache and hints the collector to reclaim the trees.
func (c *ResultCache) Clear() {
	c.entries = make(map[uint64]*domain.ParseResult)
	c.order = nil
	runtime.GC()
}

// Len returns the current entry count.
func (c *ResultCache) Len() int {
	return len(c.entries)
}

// Stats returns a snapshot of this tier's counters.
func (c *ResultCache) Stats() domain.CacheStats {
	return domain.CacheStats{
		Entries: len(c.entries),
		Hits:    c.hits,
		Misses:  c.misses,
	}
}

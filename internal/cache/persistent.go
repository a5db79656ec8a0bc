package cache

import "schemadoc/internal/domain"

// MemoryPersistentCache is the in-repo second-tier cache: unbounded and alive
// for the process lifetime. Cross-process persistence belongs to the host.
type MemoryPersistentCache struct {
	entries map[uint64]*domain.ParseResult
	hits    int64
	misses  int64
}

// NewMemoryPersistentCache creates an enabled second-tier cache.
func NewMemoryPersistentCache() *MemoryPersistentCache {
	return &MemoryPersistentCache{entries: make(map[uint64]*domain.ParseResult)}
}

func (c *MemoryPersistentCache) Get(key uint64) (*domain.ParseResult, bool) {
	result, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return result, ok
}

func (c *MemoryPersistentCache) Put(key uint64, result *domain.ParseResult) {
	c.entries[key] = result
}

func (c *MemoryPersistentCache) Stats() domain.CacheStats {
	return domain.CacheStats{Entries: len(c.entries), Hits: c.hits, Misses: c.misses}
}

func (c *MemoryPersistentCache) Enabled() bool {
	return true
}

// NoopPersistentCache is the disabled tier used when no host cache is wired.
type NoopPersistentCache struct{}

func (NoopPersistentCache) Get(uint64) (*domain.ParseResult, bool) { return nil, false }

func (NoopPersistentCache) Put(uint64, *domain.ParseResult) {}

func (NoopPersistentCache) Stats() domain.CacheStats { return domain.CacheStats{} }

func (NoopPersistentCache) Enabled() bool { return false }

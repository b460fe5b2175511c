package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache keeps hot entries in process memory
type MemoryCache struct {
	cache *gocache.Cache
}

type memoryEntry struct {
	data     []byte
	storedAt time.Time
}

// NewMemoryCache creates a memory cache with a default TTL and janitor interval
func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{cache: gocache.New(defaultTTL, cleanupInterval)}
}

// Get retrieves a live entry
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	if val, found := c.cache.Get(key); found {
		return val.(memoryEntry).data, true
	}
	return nil, false
}

// Age reports the time since a live entry was stored
func (c *MemoryCache) Age(key string) (time.Duration, bool) {
	if val, found := c.cache.Get(key); found {
		return time.Since(val.(memoryEntry).storedAt), true
	}
	return 0, false
}

// Set stores a value with the given TTL
func (c *MemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	c.cache.Set(key, memoryEntry{data: value, storedAt: time.Now()}, ttl)
	return nil
}

// Delete removes one entry
func (c *MemoryCache) Delete(key string) error {
	c.cache.Delete(key)
	return nil
}

// Clear removes every entry
func (c *MemoryCache) Clear() error {
	c.cache.Flush()
	return nil
}

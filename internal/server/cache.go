package server

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache holds rendered responses for the listing endpoints. Its entries do
// not expire on their own; they are flushed whenever the registry is swapped.
type Cache struct {
	cacheInstance *gocache.Cache
}

func NewCache() *Cache {
	return &Cache{cacheInstance: gocache.New(gocache.NoExpiration, 10*time.Minute)}
}

// Put stores value under key until the next Flush.
func (c *Cache) Put(key string, value []byte) {
	c.cacheInstance.Set(key, value, gocache.NoExpiration)
}

// Get fetches a value from the cache, returning the value as well as whether
// or not the value was found (semantics similar to map).
func (c *Cache) Get(key string) ([]byte, bool) {
	v, ok := c.cacheInstance.Get(key)
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

// Flush drops every cached response.
func (c *Cache) Flush() {
	c.cacheInstance.Flush()
}

// Len returns the number of cached responses.
func (c *Cache) Len() int {
	return c.cacheInstance.ItemCount()
}

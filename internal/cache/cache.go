// Package cache provides a general-purpose, TTL-bearing local cache used to
// memoize scoring results for repeated hand/settings pairs (common during a
// player reviewing the same win from several clients at once).
package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

type Cache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// New builds a cache capped at maxCost total cost of admitted entries,
// with a default TTL applied by Set. Set charges every entry a cost of 1
// regardless of its size, so maxCost bounds the number of entries, not
// their bytes.
func New(maxCost int64, ttl time.Duration) (*Cache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e7,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("cache: new ristretto cache: %w", err)
	}
	return &Cache{cache: c, ttl: ttl}, nil
}

func (c *Cache) Set(key string, value any) bool {
	return c.cache.SetWithTTL(key, value, 1, c.ttl)
}

func (c *Cache) Get(key string) (any, bool) {
	return c.cache.Get(key)
}

func (c *Cache) Delete(key string) {
	c.cache.Del(key)
}

func (c *Cache) Close() {
	c.cache.Close()
}

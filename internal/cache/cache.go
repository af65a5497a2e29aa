// Package cache keeps the latest captured snapshot of each case in memory so
// a sync pass can skip reloading its baseline from the database.
package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/JustJay7/court-case-sync/internal/snapshot"
)

// Entry is the cached baseline of one case.
type Entry struct {
	Capture snapshot.Capture
	Hash    string
}

type Cache interface {
	Get(caseID string) (*Entry, bool)
	Set(caseID string, value *Entry)
	Delete(caseID string)
	Clear()
	Stats() CacheStats
}

type CacheStats struct {
	Hits       int64     `json:"hits"`
	Misses     int64     `json:"misses"`
	Evictions  int64     `json:"evictions"`
	Size       int       `json:"size"`
	LastAccess time.Time `json:"last_access"`
}

type LRUCache struct {
	cache   *cache.Cache
	mu      sync.Mutex
	stats   CacheStats
	maxSize int
}

func NewCache(maxSize int, ttl time.Duration) Cache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &LRUCache{
		cache:   cache.New(ttl, ttl*2),
		maxSize: maxSize,
	}
}

func (c *LRUCache) Get(caseID string) (*Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.LastAccess = time.Now()

	if data, found := c.cache.Get(Key(caseID)); found {
		if entry, ok := data.(*Entry); ok {
			c.stats.Hits++
			return entry, true
		}
	}

	c.stats.Misses++
	return nil, false
}

func (c *LRUCache) Set(caseID string, value *Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := Key(caseID)
	if _, exists := c.cache.Get(key); !exists && c.cache.ItemCount() >= c.maxSize {
		c.removeOldest()
	}

	c.cache.Set(key, value, cache.DefaultExpiration)
}

func (c *LRUCache) Delete(caseID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Delete(Key(caseID))
}

func (c *LRUCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Flush()
	c.stats = CacheStats{}
}

func (c *LRUCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.Size = c.cache.ItemCount()
	return c.stats
}

// removeOldest evicts the entry closest to expiry, which is the one written
// longest ago since all entries share one TTL.
func (c *LRUCache) removeOldest() {
	items := c.cache.Items()
	if len(items) == 0 {
		return
	}

	var (
		oldestKey string
		oldest    int64
	)
	for key, item := range items {
		if oldestKey == "" || item.Expiration < oldest {
			oldestKey = key
			oldest = item.Expiration
		}
	}

	c.cache.Delete(oldestKey)
	c.stats.Evictions++
}

func Key(caseID string) string {
	return fmt.Sprintf("snapshot:%s", caseID)
}

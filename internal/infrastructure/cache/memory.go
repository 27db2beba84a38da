package cache

import (
	"context"
	"sync"
	"time"

	"github.com/ladle-app/backend/internal/domain"
)

// cacheItem holds one rendered scale result with its expiration
type cacheItem struct {
	Lines      []string
	Expiration time.Time
}

// MemoryCache is a thread-safe in-memory cache for rendered scale
// results with TTL support
type MemoryCache struct {
	data  map[string]cacheItem
	mutex sync.RWMutex
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache() *MemoryCache {
	cache := &MemoryCache{
		data: make(map[string]cacheItem),
	}

	// Start cleanup goroutine to remove expired entries every 10 minutes
	go cache.cleanupExpired()

	return cache
}

// Get retrieves a scale result from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]string, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists {
		return nil, domain.ErrCacheMiss
	}

	if time.Now().After(item.Expiration) {
		return nil, domain.ErrCacheMiss
	}

	// Callers must not be able to mutate cached entries
	lines := make([]string, len(item.Lines))
	copy(lines, item.Lines)
	return lines, nil
}

// Set stores a scale result in the cache with TTL
func (c *MemoryCache) Set(ctx context.Context, key string, value []string, ttl time.Duration) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	lines := make([]string, len(value))
	copy(lines, value)

	c.data[key] = cacheItem{
		Lines:      lines,
		Expiration: time.Now().Add(ttl),
	}

	return nil
}

// Delete removes a scale result from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// cleanupExpired removes expired entries from the cache periodically
func (c *MemoryCache) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mutex.Lock()
		now := time.Now()
		for key, item := range c.data {
			if now.After(item.Expiration) {
				delete(c.data, key)
			}
		}
		c.mutex.Unlock()
	}
}

// Size returns the current number of items in the cache (for debugging/monitoring)
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// Clear removes all items from the cache
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data = make(map[string]cacheItem)
}

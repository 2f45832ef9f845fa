// Package cache provides response caching for the advisor backend: a
// generic in-memory TTL cache and a byte-oriented Store that is backed
// by Redis when one is configured.
package cache

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// InMemory is a thread-safe in-memory cache with a default TTL and
// optional per-entry overrides.
type InMemory[T any] struct {
	mu    sync.RWMutex
	items map[string]entry[T]
	ttl   time.Duration
}

// New creates a new in-memory cache. defaultTTL applies to entries set
// with SetDefault; a zero defaultTTL means entries never expire.
func New[T any](defaultTTL time.Duration) *InMemory[T] {
	c := &InMemory[T]{
		items: make(map[string]entry[T]),
		ttl:   defaultTTL,
	}
	if defaultTTL > 0 {
		// Background cleanup goroutine
		go c.cleanup(defaultTTL)
	}
	return c
}

// Get retrieves a value from the cache. Returns false if not found or expired.
func (c *InMemory[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.items[key]
	if !ok || (!e.expiresAt.IsZero() && time.Now().After(e.expiresAt)) {
		var zero T
		return zero, false
	}
	return e.value, true
}

// Set stores a value with its own TTL. A zero ttl means the entry never
// expires.
func (c *InMemory[T]) Set(key string, value T, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := time.Time{}
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}
	c.items[key] = entry[T]{value: value, expiresAt: expiresAt}
}

// SetDefault stores a value with the cache's default TTL.
func (c *InMemory[T]) SetDefault(key string, value T) {
	c.Set(key, value, c.ttl)
}

// Delete removes a value from the cache.
func (c *InMemory[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

// cleanup periodically removes expired entries.
func (c *InMemory[T]) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for k, v := range c.items {
			if !v.expiresAt.IsZero() && now.After(v.expiresAt) {
				delete(c.items, k)
			}
		}
		c.mu.Unlock()
	}
}

package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// item is a cached value with expiration
type item[V any] struct {
	value     V
	expiresAt time.Time
}

func (it *item[V]) expired(now time.Time) bool {
	return now.After(it.expiresAt)
}

// Cache is a thread-safe in-memory cache with TTL support
type Cache[V any] struct {
	mu              sync.RWMutex
	items           map[string]*item[V]
	defaultTTL      time.Duration
	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	stopOnce        sync.Once
	now             func() time.Time
}

// New creates a cache with the given default TTL and starts the background
// sweeper. Call Stop to release it.
func New[V any](defaultTTL time.Duration) *Cache[V] {
	interval := defaultTTL / 2
	if interval <= 0 {
		interval = time.Second
	}
	c := &Cache[V]{
		items:           make(map[string]*item[V]),
		defaultTTL:      defaultTTL,
		cleanupInterval: interval,
		stopCleanup:     make(chan struct{}),
		now:             time.Now,
	}
	go c.cleanup()
	return c
}

// Get retrieves a value from cache
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero V
	it, ok := c.items[key]
	if !ok || it.expired(c.now()) {
		return zero, false
	}
	return it.value, true
}

// Set stores a value in cache with default TTL
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.defaultTTL)
}

// SetWithTTL stores a value in cache with custom TTL
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = &item[V]{value: value, expiresAt: c.now().Add(ttl)}
}

// Delete removes a key from cache
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Invalidate drops every key with the given prefix. An empty prefix only
// drops expired entries.
func (c *Cache[V]) Invalidate(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, it := range c.items {
		if prefix == "" {
			if it.expired(now) {
				delete(c.items, key)
			}
			continue
		}
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
}

// GetOrLoad returns the cached value for key, or calls load and caches its
// result. Load errors are returned and never cached.
func (c *Cache[V]) GetOrLoad(ctx context.Context, key string, load func(context.Context) (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := load(ctx)
	if err != nil {
		var zero V
		return zero, err
	}
	if c.defaultTTL > 0 {
		c.Set(key, v)
	}
	return v, nil
}

// Size returns the number of entries, expired ones included.
func (c *Cache[V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stats returns cache statistics
type Stats struct {
	Size      int
	Expired   int
	TotalKeys int
}

// GetStats returns cache statistics
func (c *Cache[V]) GetStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := Stats{TotalKeys: len(c.items)}
	now := c.now()
	for _, it := range c.items {
		if it.expired(now) {
			stats.Expired++
		}
	}
	stats.Size = stats.TotalKeys - stats.Expired
	return stats
}

func (c *Cache[V]) cleanup() {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.Invalidate("")
		case <-c.stopCleanup:
			return
		}
	}
}

// Stop stops the cleanup goroutine. Safe to call more than once.
func (c *Cache[V]) Stop() {
	c.stopOnce.Do(func() { close(c.stopCleanup) })
}

package advisor

import (
	"sync"
	"time"
)

const (
	defaultCacheTTL      = 15 * time.Minute
	cacheCleanupInterval = 5 * time.Minute
)

type cacheEntry[V any] struct {
	expiry time.Time
	value  V
}

// responseCache is a TTL cache for backend responses.
type responseCache[V any] struct {
	entries map[string]cacheEntry[V]
	stopCh  chan struct{}
	now     func() time.Time
	ttl     time.Duration
	mu      sync.RWMutex
	once    sync.Once
}

func newResponseCache[V any](ttl time.Duration) *responseCache[V] {
	if ttl == 0 {
		ttl = defaultCacheTTL
	}

	c := &responseCache[V]{
		entries: make(map[string]cacheEntry[V]),
		ttl:     ttl,
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}

	go c.cleanup()

	return c
}

func (c *responseCache[V]) get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero V
	entry, ok := c.entries[key]
	if !ok || c.now().After(entry.expiry) {
		return zero, false
	}
	return entry.value, true
}

func (c *responseCache[V]) set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry[V]{value: value, expiry: c.now().Add(c.ttl)}
}

func (c *responseCache[V]) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *responseCache[V]) evictExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, entry := range c.entries {
		if now.After(entry.expiry) {
			delete(c.entries, key)
		}
	}
}

func (c *responseCache[V]) cleanup() {
	ticker := time.NewTicker(cacheCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.evictExpired()
		}
	}
}

// Close stops the cleanup goroutine.
func (c *responseCache[V]) Close() {
	c.once.Do(func() { close(c.stopCh) })
}

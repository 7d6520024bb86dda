// Package cache implements the in-memory lookup cache: a bounded,
// TTL-expiring key/value store with strict FIFO eviction.
package cache

import (
	"sync"
	"time"
)

// Defaults match the production lookup cache sizing.
const (
	DefaultTTL        = time.Hour
	DefaultMaxEntries = 50
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Cache is a mutex-guarded map plus an insertion-ordered key queue.
// Eviction is pure FIFO on insertion order, not LRU: reading an entry
// never changes its eviction position.
type Cache[V any] struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxEntries int
	entries    map[string]entry[V]
	order      []string // oldest-inserted first
	now        func() time.Time
}

// New creates a cache with the given TTL and capacity. Non-positive
// arguments fall back to the defaults.
func New[V any](ttl time.Duration, maxEntries int) *Cache[V] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Cache[V]{
		ttl:        ttl,
		maxEntries: maxEntries,
		entries:    make(map[string]entry[V], maxEntries),
		order:      make([]string, 0, maxEntries),
		now:        time.Now,
	}
}

// Get returns the value stored under key if present and unexpired.
// An expired entry is purged on access; a genuine miss mutates nothing.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if c.now().Sub(e.storedAt) > c.ttl {
		c.remove(key)
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with the current timestamp. Re-setting an
// existing key moves it to the newest position (delete+insert), so it is
// immune to the eviction its original insertion order would have caused.
// When at capacity the single oldest-inserted key is evicted first.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		c.remove(key)
	} else if len(c.entries) >= c.maxEntries {
		c.remove(c.order[0])
	}
	c.entries[key] = entry[V]{value: value, storedAt: c.now()}
	c.order = append(c.order, key)
}

// Clear drops all entries.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[V], c.maxEntries)
	c.order = c.order[:0]
}

// Len returns the number of entries, expired or not.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// PurgeExpired removes every expired entry and reports how many were
// dropped. Purely an eager form of the purge Get performs on access.
func (c *Cache[V]) PurgeExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	purged := 0
	for _, key := range append([]string(nil), c.order...) {
		if now.Sub(c.entries[key].storedAt) > c.ttl {
			c.remove(key)
			purged++
		}
	}
	return purged
}

// remove must be called with the mutex held.
func (c *Cache[V]) remove(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

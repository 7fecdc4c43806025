package river

import (
	"sync"
	"time"
)

type cacheKey struct {
	source string
	name   string
	limit  int
}

type cacheEntry struct {
	response   *Response
	insertedAt time.Time
}

// ResultCache is a TTL-bounded in-memory store of river responses keyed by
// the exact (source, name, limit) tuple. Staleness is checked lazily at
// lookup time; a stale entry is never returned. The lock is held only for
// the duration of a lookup or store, never across a fetch.
type ResultCache struct {
	mu         sync.Mutex
	entries    map[cacheKey]cacheEntry
	ttl        time.Duration
	maxEntries int
}

func NewResultCache(ttl time.Duration, maxEntries int) *ResultCache {
	if maxEntries <= 0 {
		maxEntries = 256
	}
	return &ResultCache{
		entries:    make(map[cacheKey]cacheEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

// Get returns the cached response for the key, or nil on a miss. Stale
// entries are evicted on lookup.
func (c *ResultCache) Get(source, name string, limit int) *Response {
	key := cacheKey{source: source, name: name, limit: limit}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil
	}

	if time.Since(entry.insertedAt) >= c.ttl {
		delete(c.entries, key)
		return nil
	}

	return entry.response
}

// Store inserts or overwrites the entry for the key with the current
// timestamp. When the cache is full the oldest entry is evicted first.
func (c *ResultCache) Store(source, name string, limit int, response *Response) {
	key := cacheKey{source: source, name: name, limit: limit}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictOldest()
	}

	c.entries[key] = cacheEntry{
		response:   response,
		insertedAt: time.Now(),
	}
}

// Sweep removes all stale entries and returns how many were evicted.
func (c *ResultCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, entry := range c.entries {
		if time.Since(entry.insertedAt) >= c.ttl {
			delete(c.entries, key)
			removed++
		}
	}

	return removed
}

// Len returns the current number of entries, stale ones included.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

func (c *ResultCache) evictOldest() {
	var oldestKey cacheKey
	var oldest time.Time
	first := true

	for key, entry := range c.entries {
		if first || entry.insertedAt.Before(oldest) {
			oldest = entry.insertedAt
			oldestKey = key
			first = false
		}
	}

	if !first {
		delete(c.entries, oldestKey)
	}
}

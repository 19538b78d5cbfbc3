package cache

import "sync"

// Cache is a generic thread-safe memoization cache with a soft limit.
// A softLimit of 0 means unbounded: entries accumulate until Clear.
// When a positive softLimit is exceeded, oldest entries are evicted.
//
// Cache is safe for concurrent use.
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*cacheEntry[V]
	softLimit int
	tick      int64 // Monotonic access counter

	hits      uint64
	misses    uint64
	evictions uint64
}

// cacheEntry holds a cached value with its access time.
type cacheEntry[V any] struct {
	value V
	atime int64 // Access time (tick value)
}

// New creates a new cache with the given soft limit.
// A softLimit of 0 or less means unbounded.
func New[K comparable, V any](softLimit int) *Cache[K, V] {
	if softLimit < 0 {
		softLimit = 0
	}
	return &Cache[K, V]{
		entries:   make(map[K]*cacheEntry[V]),
		softLimit: softLimit,
	}
}

// Get retrieves a value from the cache.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}

	c.tick++
	entry.atime = c.tick
	c.hits++

	return entry.value, true
}

// Set stores a value in the cache.
// If the cache exceeds the soft limit after insertion, oldest entries
// are evicted.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.insert(key, value)
}

// GetOrCreate returns the cached value for key, or creates it.
// The create function runs under the cache lock, so at most one creation
// happens per key even with concurrent callers.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		c.tick++
		entry.atime = c.tick
		c.hits++
		return entry.value
	}

	c.misses++
	value := create()
	c.insert(key, value)

	return value
}

// GetOrCreateErr is GetOrCreate for fallible creation. When create returns
// an error, nothing is inserted and the error is returned; the next call
// for the same key will attempt creation again.
func (c *Cache[K, V]) GetOrCreateErr(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		c.tick++
		entry.atime = c.tick
		c.hits++
		return entry.value, nil
	}

	c.misses++
	value, err := create()
	if err != nil {
		var zero V
		return zero, err
	}
	c.insert(key, value)

	return value, nil
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		delete(c.entries, key)
		return true
	}
	return false
}

// Clear removes all entries from the cache. Statistics are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*cacheEntry[V])
	c.tick = 0
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Capacity returns the soft limit of the cache (0 = unbounded).
func (c *Cache[K, V]) Capacity() int {
	return c.softLimit
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Len:       len(c.entries),
		Capacity:  c.softLimit,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}

// insert stores key → value and evicts if over the soft limit.
// Caller must hold c.mu.
func (c *Cache[K, V]) insert(key K, value V) {
	c.tick++
	c.entries[key] = &cacheEntry[V]{
		value: value,
		atime: c.tick,
	}

	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
}

// evictOldest removes entries until the cache is at 3/4 of the soft limit.
// Caller must hold c.mu.
func (c *Cache[K, V]) evictOldest() {
	targetSize := c.softLimit * 3 / 4
	if targetSize < 1 {
		targetSize = 1
	}

	toEvict := len(c.entries) - targetSize
	if toEvict <= 0 {
		return
	}

	// Collect entries with their access times.
	type aged struct {
		key   K
		atime int64
	}
	byAge := make([]aged, 0, len(c.entries))
	for key, e := range c.entries {
		byAge = append(byAge, aged{key: key, atime: e.atime})
	}

	// Partial selection sort: only the oldest toEvict entries need ordering.
	for i := 0; i < toEvict && i < len(byAge); i++ {
		minIdx := i
		for j := i + 1; j < len(byAge); j++ {
			if byAge[j].atime < byAge[minIdx].atime {
				minIdx = j
			}
		}
		if minIdx != i {
			byAge[i], byAge[minIdx] = byAge[minIdx], byAge[i]
		}
		delete(c.entries, byAge[i].key)
		c.evictions++
	}
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the soft limit (0 = unbounded).
	Capacity int
	// Hits is the number of lookups answered from the cache.
	Hits uint64
	// Misses is the number of lookups that required creation.
	Misses uint64
	// Evictions is the number of entries removed by the soft limit.
	Evictions uint64
}

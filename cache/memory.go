package cache

import "sync"

// Memory is a thread-safe in-memory cache. Entries never expire; they live
// until replaced, deleted or cleared.
type Memory[V any] struct {
	entries map[Key]V
	mu      sync.RWMutex
}

// NewMemory creates an empty in-memory cache.
func NewMemory[V any]() *Memory[V] {
	return &Memory[V]{
		entries: make(map[Key]V),
	}
}

// Get retrieves a value from the cache.
func (c *Memory[V]) Get(key Key) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Set stores a value in the cache.
func (c *Memory[V]) Set(key Key, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Delete removes a value from the cache.
func (c *Memory[V]) Delete(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len returns the number of entries in the cache.
func (c *Memory[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear removes all entries from the cache.
func (c *Memory[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[Key]V)
}

package cache

import (
	"errors"
)

// ErrInvalidCapacity is returned by New for a non-positive capacity.
var ErrInvalidCapacity = errors.New("cache: capacity must be positive")

// Cache is a fixed-capacity in-memory key/value cache with LRU eviction.
//
// The core design is intentionally explicit and "mechanical":
// a map gives O(1) key lookup, and an arena-backed doubly-linked list
// maintains recency ordering. The map stores arena indices, never
// pointers, so no reference into the list ever dangles.
//
// Concurrency model:
// Cache performs no I/O and owns no goroutines; every operation is
// synchronous and completes on the caller's goroutine. Cache is NOT safe
// for concurrent use. Promotion rewrites shared list links, so callers
// that share one Cache must serialize Get/Put externally (one mutex
// around the whole structure is enough).
type Cache[K comparable, V any] struct {
	capacity int
	index    map[K]int
	list     recencyList[K, V]

	stats Stats
}

// Stats holds observational counters. They never influence behavior.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Size      int
	Capacity  int
}

// New constructs an empty cache that holds at most capacity entries.
//
// Capacity is fixed for the life of the cache; resizing is not supported.
// New returns ErrInvalidCapacity when capacity <= 0.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Cache[K, V]{
		capacity: capacity,
		index:    make(map[K]int, capacity),
		list:     newRecencyList[K, V](capacity),
	}, nil
}

// Get reads a key and, on a hit, promotes it to most recently used.
//
// A miss returns the zero value and false; it is a normal result, not an
// error, and causes no structural change. This is the only read that
// mutates state: recency is a side effect of observation.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	i, ok := c.index[key]
	if !ok {
		c.stats.Misses++
		var zero V
		return zero, false
	}
	c.list.moveToFront(i)
	c.stats.Hits++
	return c.list.nodes[i].val, true
}

// Peek reads a key without touching recency order.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	i, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return c.list.nodes[i].val, true
}

// Put writes/overwrites a key and promotes it to most recently used.
//
// Overwriting an existing key updates the value in place; size does not
// change and nothing is evicted. Inserting a new key while full evicts
// the least recently used entry first, and its key is returned so
// callers can invalidate secondary state keyed on it. The arena slot of
// the evicted entry is reused for the new one, so a full cache performs
// no allocation on this path.
//
// Complexity: O(1) time and O(1) extra space, independent of size.
func (c *Cache[K, V]) Put(key K, value V) (evicted K, hadEviction bool) {
	if i, ok := c.index[key]; ok {
		c.list.nodes[i].val = value
		c.list.moveToFront(i)
		return evicted, false
	}

	if len(c.index) == c.capacity {
		tail := c.list.tail
		evicted = c.list.nodes[tail].key
		c.list.unlink(tail)
		c.list.release(tail)
		delete(c.index, evicted)
		c.stats.Evictions++
		hadEviction = true
	}

	i := c.list.alloc(key, value)
	c.list.pushFront(i)
	c.index[key] = i
	return evicted, hadEviction
}

// Delete removes a key if present and reports whether it was resident.
func (c *Cache[K, V]) Delete(key K) bool {
	i, ok := c.index[key]
	if !ok {
		return false
	}
	c.list.unlink(i)
	c.list.release(i)
	delete(c.index, key)
	return true
}

// Clear removes every entry. Capacity and stats counters are kept.
func (c *Cache[K, V]) Clear() {
	c.list.reset()
	clear(c.index)
}

// Size returns the number of currently resident entries.
func (c *Cache[K, V]) Size() int {
	return len(c.index)
}

// Capacity returns the fixed capacity set at construction.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Keys returns resident keys in MRU -> LRU order.
//
// This is a debug/teaching helper used by the demo.
func (c *Cache[K, V]) Keys() []K {
	return c.list.keysInOrder()
}

// Stats returns a snapshot of the hit/miss/eviction counters.
func (c *Cache[K, V]) Stats() Stats {
	s := c.stats
	s.Size = len(c.index)
	s.Capacity = c.capacity
	return s
}

// Package cache implements a fixed-capacity, generic, in-process LRU cache.
//
// Goals for this package:
//   - Make the core data structures explicit (key index + recency list)
//   - Provide O(1) Get/Put/Delete via map index + intrusive list links
//   - Keep nodes in a flat arena addressed by stable integer indices,
//     so the index never holds a pointer that can dangle
//   - Report evictions to the caller so secondary state can be invalidated
//   - Stay synchronous and goroutine-free; callers own all locking
package cache

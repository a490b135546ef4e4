// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cache caches tessellated meshes keyed by path and fill
// options, so repeated fills of the same geometry skip the sweep
// entirely.
//
// Meshes is the domain surface. The generic Sharded underneath splits
// entries across independently locked shards with per-shard LRU
// eviction, so concurrent renderers contend only when they touch the
// same shard.
package cache

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/tess/internal/lru"
)

const (
	// ShardCount is the number of independently locked shards. A power
	// of two, so shard selection is a mask of the key hash.
	ShardCount = 16

	shardMask = ShardCount - 1

	// DefaultCapacity is the per-shard entry limit when none is given.
	DefaultCapacity = 256
)

// Hasher computes the shard-selection hash for a key.
type Hasher[K any] func(K) uint64

// Sharded is a thread-safe LRU cache split into ShardCount shards,
// each with its own lock and recency list. Hit, miss and eviction
// counters are atomic.
//
// A Sharded must not be copied after creation.
type Sharded[K comparable, V any] struct {
	shards   [ShardCount]shard[K, V]
	hasher   Hasher[K]
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]*entry[K, V]
	order   *lru.List[K]
}

type entry[K comparable, V any] struct {
	value V
	node  *lru.Node[K]
}

// NewSharded returns a cache holding up to capacity entries per shard,
// ShardCount*capacity in total. capacity <= 0 selects DefaultCapacity.
// The hasher picks the shard, so it must distribute keys well in the
// low bits.
func NewSharded[K comparable, V any](capacity int, hasher Hasher[K]) *Sharded[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Sharded[K, V]{hasher: hasher, capacity: capacity}
	for i := range c.shards {
		c.shards[i].entries = make(map[K]*entry[K, V])
		c.shards[i].order = lru.New[K]()
	}
	return c
}

func (c *Sharded[K, V]) shardFor(key K) *shard[K, V] {
	return &c.shards[c.hasher(key)&shardMask]
}

// Get returns the value cached under key and marks it most recently
// used.
func (c *Sharded[K, V]) Get(key K) (V, bool) {
	s := c.shardFor(key)

	s.mu.RLock()
	_, exists := s.entries[key]
	s.mu.RUnlock()

	if exists {
		// The entry may have been evicted between the two locks.
		s.mu.Lock()
		if e, ok := s.entries[key]; ok {
			s.order.MoveToFront(e.node)
			value := e.value
			s.mu.Unlock()
			c.hits.Add(1)
			return value, true
		}
		s.mu.Unlock()
	}

	c.misses.Add(1)
	var zero V
	return zero, false
}

// Set stores value under key, evicting least recently used entries if
// the shard is full. The value is not copied; callers must treat it
// as immutable from here on.
func (c *Sharded[K, V]) Set(key K, value V) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		e.value = value
		s.order.MoveToFront(e.node)
		return
	}
	c.insertLocked(s, key, value)
}

// GetOrCreate returns the value cached under key, calling create to
// fill the entry on a miss. create runs with the shard lock held, so
// concurrent callers with the same key compute it once; keep create
// bounded. A create error is returned as-is and nothing is stored.
func (c *Sharded[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	s := c.shardFor(key)

	s.mu.RLock()
	_, exists := s.entries[key]
	s.mu.RUnlock()

	if exists {
		s.mu.Lock()
		if e, ok := s.entries[key]; ok {
			s.order.MoveToFront(e.node)
			value := e.value
			s.mu.Unlock()
			c.hits.Add(1)
			return value, nil
		}
		s.mu.Unlock()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another goroutine may have filled the entry while we waited.
	if e, ok := s.entries[key]; ok {
		s.order.MoveToFront(e.node)
		c.hits.Add(1)
		return e.value, nil
	}

	c.misses.Add(1)
	value, err := create()
	if err != nil {
		var zero V
		return zero, err
	}
	c.insertLocked(s, key, value)
	return value, nil
}

// insertLocked adds a new entry, evicting to stay under capacity. The
// shard lock must be held and the key must be absent.
func (c *Sharded[K, V]) insertLocked(s *shard[K, V], key K, value V) {
	for s.order.Len() >= c.capacity {
		old, ok := s.order.RemoveOldest()
		if !ok {
			break
		}
		delete(s.entries, old)
		c.evictions.Add(1)
	}
	s.entries[key] = &entry[K, V]{value: value, node: s.order.PushFront(key)}
}

// Delete removes key and reports whether an entry was removed.
func (c *Sharded[K, V]) Delete(key K) bool {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false
	}
	s.order.Remove(e.node)
	delete(s.entries, key)
	return true
}

// Clear empties every shard. Statistics keep counting.
func (c *Sharded[K, V]) Clear() {
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		s.entries = make(map[K]*entry[K, V])
		s.order.Clear()
		s.mu.Unlock()
	}
}

// Len counts entries across all shards.
func (c *Sharded[K, V]) Len() int {
	total := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		total += len(s.entries)
		s.mu.RUnlock()
	}
	return total
}

// Capacity returns the per-shard entry limit.
func (c *Sharded[K, V]) Capacity() int {
	return c.capacity
}

// ShardLen reports the entry count of each shard, for inspecting key
// distribution.
func (c *Sharded[K, V]) ShardLen() [ShardCount]int {
	var lens [ShardCount]int
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		lens[i] = len(s.entries)
		s.mu.RUnlock()
	}
	return lens
}

// Stats is a point-in-time snapshot of cache effectiveness.
type Stats struct {
	Len       int
	Capacity  int // per shard
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns the fraction of lookups served from the cache.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Stats returns a snapshot of the counters.
func (c *Sharded[K, V]) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

// ResetStats zeroes the hit, miss and eviction counters.
func (c *Sharded[K, V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}

// Package cache provides a capacity-bounded in-memory cache with per-entry
// TTL and least-recently-used eviction.
package cache

import (
	"sync"
	"time"
)

// entry is a cache slot threaded onto an intrusive doubly linked list that
// tracks recency. head is the most recently used entry, tail the least.
type entry[V any] struct {
	key       string
	value     V
	expiresAt time.Time // zero means no expiry
	prev      *entry[V]
	next      *entry[V]
}

// Cache is a thread-safe LRU cache with optional per-entry expiry.
// Every operation runs under a single mutex covering the map and the
// recency list, so callers always observe a fully consistent structure.
type Cache[V any] struct {
	mu         sync.Mutex
	items      map[string]*entry[V]
	head       *entry[V]
	tail       *entry[V]
	maxSize    int
	defaultTTL time.Duration
	now        func() time.Time
	onEvict    func(key string, value V)
}

// Option configures a Cache.
type Option[V any] func(*Cache[V])

// WithClock replaces the time source. Tests use this to control expiry
// without sleeping.
func WithClock[V any](now func() time.Time) Option[V] {
	return func(c *Cache[V]) {
		c.now = now
	}
}

// WithOnEvict registers a callback invoked whenever an entry is removed to
// satisfy the capacity bound. It is called while the cache lock is held and
// must not call back into the cache.
func WithOnEvict[V any](fn func(key string, value V)) Option[V] {
	return func(c *Cache[V]) {
		c.onEvict = fn
	}
}

// New creates a cache holding at most maxSize entries. Entries written with
// Set expire after defaultTTL; a defaultTTL <= 0 means entries written with
// Set never expire. maxSize must be positive.
func New[V any](maxSize int, defaultTTL time.Duration, opts ...Option[V]) *Cache[V] {
	if maxSize <= 0 {
		panic("cache: max size must be positive")
	}
	c := &Cache[V]{
		items:      make(map[string]*entry[V]),
		maxSize:    maxSize,
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value stored under key. An expired entry is removed and
// reported as absent. A hit marks the entry most recently used.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.items[key]
	if !ok {
		return zero, false
	}
	if c.expired(e, c.now()) {
		c.unlink(e)
		return zero, false
	}
	c.moveToFront(e)
	return e.value, true
}

// Set stores value under key with the configured default TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.defaultTTL)
}

// SetWithTTL stores value under key, expiring after ttl. A ttl <= 0 stores
// the entry without expiry, leaving capacity eviction as the only way it is
// removed. The entry is marked most recently used; if the insert pushes the
// cache over capacity, the least recently used other entry is evicted.
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = c.now().Add(ttl)
	}

	if e, ok := c.items[key]; ok {
		e.value = value
		e.expiresAt = expiresAt
		c.moveToFront(e)
		return
	}

	e := &entry[V]{key: key, value: value, expiresAt: expiresAt}
	c.items[key] = e
	c.pushFront(e)

	for len(c.items) > c.maxSize {
		lru := c.tail
		c.unlink(lru)
		if c.onEvict != nil {
			c.onEvict(lru.key, lru.value)
		}
	}
}

// Delete removes the entry under key, reporting whether it was present.
func (c *Cache[V]) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		return false
	}
	c.unlink(e)
	return true
}

// Clear removes all entries.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*entry[V])
	c.head = nil
	c.tail = nil
}

// Len reports the number of live entries. Entries found expired during the
// scan are purged and excluded from the count.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for e := c.tail; e != nil; {
		prev := e.prev
		if c.expired(e, now) {
			c.unlink(e)
		}
		e = prev
	}
	return len(c.items)
}

func (c *Cache[V]) expired(e *entry[V], now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// pushFront links e in as the most recently used entry.
func (c *Cache[V]) pushFront(e *entry[V]) {
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

// unlink removes e from both the recency list and the index.
func (c *Cache[V]) unlink(e *entry[V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
	e.prev = nil
	e.next = nil
	delete(c.items, e.key)
}

func (c *Cache[V]) moveToFront(e *entry[V]) {
	if c.head == e {
		return
	}
	if e.prev != nil {
		e.prev.next = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
	e.prev = nil
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
}

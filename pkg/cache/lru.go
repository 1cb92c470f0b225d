package cache

import (
	"container/list"
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// DefaultCapacity is the entry limit used when no capacity option is given.
const DefaultCapacity = 1000

// entry holds a cached value together with its key so eviction can
// remove the map record from a list element alone.
type entry[V any] struct {
	value V
	key   string
}

// LRU is an in-memory cache with least-recently-used eviction.
//
// It uses a hash map for O(1) lookups and a doubly-linked list for O(1)
// eviction ordering. The most recently accessed items are at the front
// of the list; the least recently used are at the back. Capacity is
// fixed at construction; entries never expire on their own.
type LRU[V any] struct {
	items    map[string]*list.Element
	eviction *list.List
	opts     *lruOptions
	onEvict  func(key string, value V)
	group    singleflight.Group
	mu       sync.Mutex
	closed   bool
}

// NewLRU creates a new in-memory LRU cache.
//
// Example:
//
//	c := cache.NewLRU[string](cache.WithCapacity(1000))
//	defer c.Close()
func NewLRU[V any](opts ...Option) *LRU[V] {
	o := defaultLRUOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &LRU[V]{
		items:    make(map[string]*list.Element),
		eviction: list.New(),
		opts:     o,
	}
}

// SetEvictCallback sets a callback function that is called when items
// leave the cache: LRU eviction, manual deletion, and clearing.
func (c *LRU[V]) SetEvictCallback(fn func(key string, value V)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = fn
}

// Get retrieves a value by key.
// Returns ErrNotFound if the key does not exist.
// Accessing a key marks it as recently used.
func (c *LRU[V]) Get(_ context.Context, key string) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		var zero V
		return zero, ErrNotFound
	}

	// Move to front: mark as recently used.
	c.eviction.MoveToFront(elem)

	return elem.Value.(*entry[V]).value, nil
}

// Set stores a value, evicting the least recently used entry when the
// cache is at capacity.
func (c *LRU[V]) Set(_ context.Context, key string, value V) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	// Update existing entry.
	if elem, ok := c.items[key]; ok {
		elem.Value.(*entry[V]).value = value
		c.eviction.MoveToFront(elem)
		return nil
	}

	if len(c.items) >= c.opts.capacity {
		c.evictOldest()
	}

	elem := c.eviction.PushFront(&entry[V]{key: key, value: value})
	c.items[key] = elem

	return nil
}

// Delete removes a key from the cache.
func (c *LRU[V]) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	if elem, ok := c.items[key]; ok {
		c.removeElement(elem)
	}

	return nil
}

// GetOrSet retrieves a value from the cache, or calls fn to compute it
// on a miss. Concurrent misses for the same key are deduplicated via
// singleflight, so fn runs once per key at a time.
//
// If fn returns an error, nothing is cached and the error is returned.
// fn must not call back into this cache for the same key.
func (c *LRU[V]) GetOrSet(ctx context.Context, key string, fn func(ctx context.Context) (V, error)) (V, error) {
	// Fast path: try cache first.
	if v, err := c.Get(ctx, key); err == nil {
		return v, nil
	}

	// Slow path: deduplicate concurrent misses.
	v, err, _ := c.group.Do(key, func() (any, error) {
		return fn(ctx)
	})
	if err != nil {
		var zero V
		return zero, err
	}

	val := v.(V)

	// Best-effort cache the result.
	_ = c.Set(ctx, key, val)

	return val, nil
}

// Has checks whether a key exists without affecting recency.
func (c *LRU[V]) Has(_ context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.items[key]
	return ok, nil
}

// Clear removes all entries from the cache.
func (c *LRU[V]) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	if c.onEvict != nil {
		for _, elem := range c.items {
			e := elem.Value.(*entry[V])
			c.onEvict(e.key, e.value)
		}
	}

	c.items = make(map[string]*list.Element)
	c.eviction.Init()

	return nil
}

// Len reports the number of entries currently held.
func (c *LRU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Close marks the cache as closed. Close is idempotent; reads still
// succeed after Close, writes fail with ErrClosed.
func (c *LRU[V]) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// evictOldest removes the least recently used entry.
// Caller must hold the mutex.
func (c *LRU[V]) evictOldest() {
	if elem := c.eviction.Back(); elem != nil {
		c.removeElement(elem)
	}
}

// removeElement removes a specific element and triggers the eviction callback.
// Caller must hold the mutex.
func (c *LRU[V]) removeElement(elem *list.Element) {
	c.eviction.Remove(elem)
	e := elem.Value.(*entry[V])
	delete(c.items, e.key)

	if c.onEvict != nil {
		c.onEvict(e.key, e.value)
	}
}

var _ Cache[any] = (*LRU[any])(nil)

// Package cache provides a generic bounded cache with least-recently-used eviction.
//
// # Interface
//
// The [Cache] interface is generic over value type V:
//
//   - Get(ctx, key) (V, error) — retrieve a value
//   - Set(ctx, key, value) error — store a value
//   - Delete(ctx, key) error — remove a key
//   - Has(ctx, key) (bool, error) — check existence
//   - Clear(ctx) error — remove all entries
//   - Len() int — current entry count
//   - Close() error — mark the cache closed
//
// # LRU Cache
//
// [NewLRU] creates an in-memory cache with a fixed capacity. It uses a
// hash map for O(1) lookups and a doubly-linked list for O(1) eviction
// ordering. When the cache is full, the least recently used entry is
// evicted to make room:
//
//	c := cache.NewLRU[string](cache.WithCapacity(1000))
//	defer c.Close()
//
//	c.Set(ctx, "greeting", "hello")
//	val, err := c.Get(ctx, "greeting")   // val = "hello"
//
// Entries never expire on their own; the cache is bounded purely by
// capacity.
//
// # Eviction Callbacks
//
// The cache supports eviction callbacks for observing displaced entries:
//
//	c.SetEvictCallback(func(key string, value string) {
//	    // entry left the cache
//	})
//
// # Cache Stampede Protection
//
// [LRU.GetOrSet] deduplicates concurrent computations of the same
// missing key via singleflight:
//
//	val, err := c.GetOrSet(ctx, "key", func(ctx context.Context) (string, error) {
//	    return computeExpensiveValue()
//	})
package cache

package cache

// Option configures the LRU cache.
type Option func(*lruOptions)

type lruOptions struct {
	capacity int
}

func defaultLRUOptions() *lruOptions {
	return &lruOptions{
		capacity: DefaultCapacity,
	}
}

// WithCapacity sets the maximum number of entries in the cache.
// When the limit is reached, the least recently used entry is evicted.
// Values below 1 fall back to DefaultCapacity.
func WithCapacity(n int) Option {
	return func(o *lruOptions) {
		if n > 0 {
			o.capacity = n
		}
	}
}

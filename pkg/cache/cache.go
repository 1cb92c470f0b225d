package cache

import "context"

// Cache is a generic bounded key-value cache.
//
// Implementations evict entries by their own policy when full; callers
// must treat any Set as potentially displacing another entry.
type Cache[V any] interface {
	// Get retrieves a value by key.
	// Returns ErrNotFound if the key does not exist.
	Get(ctx context.Context, key string) (V, error)

	// Set stores a value, evicting another entry if the cache is full.
	Set(ctx context.Context, key string, value V) error

	// Delete removes a key from the cache.
	Delete(ctx context.Context, key string) error

	// Has checks whether a key exists.
	Has(ctx context.Context, key string) (bool, error)

	// Clear removes all entries from the cache.
	Clear(ctx context.Context) error

	// Len reports the number of entries currently held.
	Len() int

	// Close marks the cache as closed; subsequent writes fail with ErrClosed.
	Close() error
}

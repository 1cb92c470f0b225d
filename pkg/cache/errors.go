package cache

import "errors"

// Sentinel errors for cache operations.
var (
	// ErrNotFound is returned when a key does not exist in the cache.
	ErrNotFound = errors.New("cache: entry not found")

	// ErrClosed is returned when a write is attempted on a closed cache.
	ErrClosed = errors.New("cache: closed")
)

package common

import "time"

// CacheInterface is the contract shared by the in-memory and Redis cache
// backends. Provider adapters and the search-history store only ever talk
// to this interface; the backend is chosen at startup via CACHE_BACKEND.
type CacheInterface interface {
	// Set stores a value under key for the given duration
	Set(key string, value interface{}, duration time.Duration)

	// Get retrieves a value by key, reporting whether it was found
	Get(key string) (interface{}, bool)

	// Delete removes a value by key
	Delete(key string)

	// GetOrSet returns the cached value for key, loading and storing it
	// with loader on a miss
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)

	// Close releases any underlying connections
	Close() error
}

package common

import "time"

// CacheInterface is the contract both cache backends implement. Values are
// JSON-encoded bytes so the in-memory and Redis implementations behave
// identically across restarts.
type CacheInterface interface {
	// Set stores a value under key for the given duration
	Set(key string, value []byte, duration time.Duration)

	// Get retrieves a value by key; false when absent or expired
	Get(key string) ([]byte, bool)

	// Delete removes a key
	Delete(key string)

	// Close closes any underlying connections (for Redis, etc.)
	Close() error
}

// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
// Backends wrap or return it directly so callers can tell a miss apart
// from a backend failure with errors.Is.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache defines the interface for cache and snapshot storage operations.
// Implementations can be SQLite, Redis, in-memory, or any other backend.
//
// Example usage:
//
//	cache := someCache // implements Cache interface
//
//	// Store a value
//	err := cache.Set(ctx, "schedules:snapshot", data, 12*time.Hour)
//
//	// Retrieve a value
//	data, err := cache.Get(ctx, "schedules:snapshot")
//	if err != nil {
//		// handle error or cache miss
//	}
//
//	// Delete a value
//	err = cache.Delete(ctx, "schedules:snapshot")
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte, ErrCacheMiss if the key doesn't
	// exist, or another error when the backend itself fails.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}

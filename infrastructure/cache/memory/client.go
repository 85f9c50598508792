// ABOUTME: In-memory cache implementation using the patrickmn/go-cache library
// ABOUTME: Suitable for single-instance deployments where persistence is not needed

package memory

import (
	"context"
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"pools-app-api/core/interfaces"
)

// ErrCacheMiss is returned when a key is not found in the cache.
var ErrCacheMiss = interfaces.ErrCacheMiss

// Client implements the Cache interface with an in-process store
type Client struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache client.
// defaultExpiration applies when Set is called with ttl 0;
// cleanupInterval controls how often expired entries are purged.
func NewMemoryCache(defaultExpiration, cleanupInterval time.Duration) *Client {
	return &Client{
		cache: gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	val, found := c.cache.Get(key)
	if !found {
		return nil, ErrCacheMiss
	}

	data, ok := val.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected cached type %T for key %q", val, key)
	}

	return data, nil
}

// Set stores a value in the cache with TTL. A ttl of 0 stores the value
// with no expiration.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if len(value) == 0 {
		return errors.New("value cannot be empty")
	}

	if ttl == 0 {
		c.cache.Set(key, value, gocache.NoExpiration)
		return nil
	}

	c.cache.Set(key, value, ttl)
	return nil
}

// Delete removes a value from the cache
func (c *Client) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	c.cache.Delete(key)
	return nil
}

// Count returns the number of entries currently stored
func (c *Client) Count() int {
	return c.cache.ItemCount()
}

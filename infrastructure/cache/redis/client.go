// ABOUTME: Redis-based cache implementation for shared caching across instances
// ABOUTME: Stores snapshot documents as JSON via the ReJSON module

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nitishm/go-rejson/v4"
	"github.com/redis/go-redis/v9"

	"pools-app-api/core/interfaces"
)

// ErrCacheMiss is returned when a key is not found in Redis.
var ErrCacheMiss = interfaces.ErrCacheMiss

// Client implements the Cache interface using Redis with ReJSON
type Client struct {
	client  *redis.Client
	handler *rejson.Handler
}

// NewRedisCache creates a new Redis cache client and verifies connectivity
func NewRedisCache(addr, password string, db int) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	handler := rejson.NewReJSONHandler()
	handler.SetGoRedisClient(client)

	return &Client{client: client, handler: handler}, nil
}

// Get retrieves a value from the cache
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	val, err := c.handler.JSONGet(key, ".")
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	data, ok := val.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected Redis reply type %T for key %q", val, key)
	}

	return data, nil
}

// Set stores a value in the cache with TTL. The value must be valid JSON
// since it is stored as a ReJSON document. A ttl of 0 stores the value
// with no expiration.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if len(value) == 0 {
		return errors.New("value cannot be empty")
	}

	if _, err := c.handler.JSONSet(key, ".", json.RawMessage(value)); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	if ttl != 0 {
		if err := c.client.Expire(ctx, key, ttl).Err(); err != nil {
			return fmt.Errorf("failed to set expiration: %w", err)
		}
	}

	return nil
}

// Delete removes a value from the cache
func (c *Client) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	return nil
}

// Count returns the number of keys in the current database
func (c *Client) Count(ctx context.Context) (int64, error) {
	return c.client.DBSize(ctx).Result()
}

// Close closes the underlying Redis connection
func (c *Client) Close() error {
	return c.client.Close()
}

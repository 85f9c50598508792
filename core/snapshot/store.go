// ABOUTME: Snapshot store persists a scraped schedule collection through the cache
// ABOUTME: Load reports misses explicitly so the caller decides when to rebuild

package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pools-app-api/core/interfaces"
	"pools-app-api/core/schedule"
)

// Key is the cache key the schedule snapshot lives under.
const Key = "schedules:snapshot"

// Store persists schedule collections through any Cache backend
type Store struct {
	cache  interfaces.Cache
	logger interfaces.Logger
}

// NewStore creates a snapshot store
func NewStore(cache interfaces.Cache, logger interfaces.Logger) *Store {
	return &Store{
		cache:  cache,
		logger: logger,
	}
}

// Load reads the snapshot from the cache. A miss is not an error: it
// returns (nil, false, nil) and the caller decides whether to rebuild.
// A backend failure, or a snapshot that exists but does not decode, is
// an error, never silently treated as a miss.
func (s *Store) Load(ctx context.Context) (*schedule.Collection, bool, error) {
	data, err := s.cache.Get(ctx, Key)
	if errors.Is(err, interfaces.ErrCacheMiss) {
		s.logger.Debug("snapshot miss", map[string]interface{}{
			"key": Key,
		})
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read snapshot under %q: %w", Key, err)
	}

	collection := schedule.NewCollection()
	if err := json.Unmarshal(data, collection); err != nil {
		return nil, false, fmt.Errorf("corrupt snapshot under %q: %w", Key, err)
	}

	s.logger.Info("loaded schedule snapshot", map[string]interface{}{
		"facilities": collection.Len(),
	})

	return collection, true, nil
}

// Save serializes the collection and stores it with the given TTL
func (s *Store) Save(ctx context.Context, collection *schedule.Collection, ttl time.Duration) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	if err := s.cache.Set(ctx, Key, data, ttl); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}

	s.logger.Info("saved schedule snapshot", map[string]interface{}{
		"facilities": collection.Len(),
		"bytes":      len(data),
		"ttl":        ttl.String(),
	})

	return nil
}

// Invalidate drops the stored snapshot so the next Load misses
func (s *Store) Invalidate(ctx context.Context) error {
	return s.cache.Delete(ctx, Key)
}

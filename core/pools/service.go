// ABOUTME: Pool schedule orchestration service: load-or-build plus refresh
// ABOUTME: Holds the current collection and swaps it atomically on rebuild

package pools

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pools-app-api/core/directory"
	"pools-app-api/core/interfaces"
	"pools-app-api/core/schedule"
	"pools-app-api/core/scrape"
	"pools-app-api/core/snapshot"
)

// Scraper produces a fresh schedule collection from the source site
type Scraper interface {
	FetchSchedules(ctx context.Context) (*schedule.Collection, []scrape.Warning, error)
}

// Service owns the current schedule collection. Reads are served from
// memory; the snapshot store bridges restarts and Refresh rebuilds from
// the source site.
type Service struct {
	mu      sync.RWMutex
	current *schedule.Collection

	scraper   Scraper
	directory interfaces.FacilityDirectory
	store     *snapshot.Store
	ttl       time.Duration
	logger    interfaces.Logger
}

// NewService creates the orchestration service
func NewService(scraper Scraper, directory interfaces.FacilityDirectory, store *snapshot.Store, ttl time.Duration, logger interfaces.Logger) *Service {
	return &Service{
		scraper:   scraper,
		directory: directory,
		store:     store,
		ttl:       ttl,
		logger:    logger,
	}
}

// Current returns the collection, loading the snapshot or rebuilding from
// the source when nothing is held in memory yet.
func (s *Service) Current(ctx context.Context) (*schedule.Collection, error) {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()

	if current != nil {
		return current, nil
	}

	loaded, ok, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		s.mu.Lock()
		// Another caller may have raced the load; first writer wins.
		if s.current == nil {
			s.current = loaded
		}
		current = s.current
		s.mu.Unlock()
		return current, nil
	}

	return s.Refresh(ctx)
}

// Refresh scrapes the source site, merges directory metadata, persists the
// result, and makes it the current collection. Directory or persistence
// failures are logged but do not discard a successful scrape.
func (s *Service) Refresh(ctx context.Context) (*schedule.Collection, error) {
	collection, warnings, err := s.scraper.FetchSchedules(ctx)
	if err != nil {
		return nil, fmt.Errorf("schedule refresh failed: %w", err)
	}

	if len(warnings) > 0 {
		s.logger.Warn("schedule refresh had parse warnings", map[string]interface{}{
			"count": len(warnings),
		})
	}

	if s.directory != nil {
		entries, err := s.directory.FetchDirectory(ctx)
		if err != nil {
			s.logger.Warn("directory fetch failed, serving schedules without metadata", map[string]interface{}{
				"error": err.Error(),
			})
		} else if missing := directory.Apply(collection, entries); len(missing) > 0 {
			s.logger.Warn("facilities missing from directory", map[string]interface{}{
				"count":      len(missing),
				"facilities": missing,
			})
		}
	}

	if err := s.store.Save(ctx, collection, s.ttl); err != nil {
		s.logger.Error("failed to persist snapshot", map[string]interface{}{
			"error": err.Error(),
		})
	}

	s.mu.Lock()
	s.current = collection
	s.mu.Unlock()

	return collection, nil
}

package pools

import (
	"context"
	"errors"
	"testing"
	"time"

	"pools-app-api/core/domain"
	"pools-app-api/core/interfaces"
	"pools-app-api/core/schedule"
	"pools-app-api/core/scrape"
	"pools-app-api/core/snapshot"
)

// mockScraper returns a canned collection and counts invocations
type mockScraper struct {
	collection *schedule.Collection
	warnings   []scrape.Warning
	err        error
	calls      int
}

func (m *mockScraper) FetchSchedules(ctx context.Context) (*schedule.Collection, []scrape.Warning, error) {
	m.calls++
	return m.collection, m.warnings, m.err
}

// mockDirectory returns canned directory entries
type mockDirectory struct {
	entries map[string]interfaces.DirectoryEntry
	err     error
}

func (m *mockDirectory) FetchDirectory(ctx context.Context) (map[string]interfaces.DirectoryEntry, error) {
	return m.entries, m.err
}

// mockCache is an in-memory Cache for snapshot plumbing
type mockCache struct {
	data map[string][]byte
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string][]byte)}
}

func (c *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, ok := c.data[key]
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}
	return val, nil
}

func (c *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.data[key] = value
	return nil
}

func (c *mockCache) Delete(ctx context.Context, key string) error {
	delete(c.data, key)
	return nil
}

// mockLogger discards all output
type mockLogger struct{}

func (l *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (l *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (l *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (l *mockLogger) Error(msg string, fields map[string]interface{}) {}

func scrapedCollection(t *testing.T) *schedule.Collection {
	t.Helper()

	c := schedule.NewCollection()
	date := domain.NewDate(2024, time.May, 26)
	if err := c.AddAvailability("High Park Pool", date, domain.Interval{Start: 750, End: 1200}); err != nil {
		t.Fatalf("AddAvailability returned error: %v", err)
	}
	return c
}

func newTestService(t *testing.T, scraper *mockScraper, dir interfaces.FacilityDirectory, cache *mockCache) *Service {
	t.Helper()

	logger := &mockLogger{}
	store := snapshot.NewStore(cache, logger)
	return NewService(scraper, dir, store, 12*time.Hour, logger)
}

func TestCurrent_ColdStartScrapesAndPersists(t *testing.T) {
	scraper := &mockScraper{collection: scrapedCollection(t)}
	cache := newMockCache()
	service := newTestService(t, scraper, nil, cache)

	collection, err := service.Current(context.Background())
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}

	if collection.Len() != 1 {
		t.Errorf("facilities = %d, want 1", collection.Len())
	}
	if scraper.calls != 1 {
		t.Errorf("scraper calls = %d, want 1", scraper.calls)
	}
	if _, ok := cache.data[snapshot.Key]; !ok {
		t.Error("cold start should persist a snapshot")
	}
}

func TestCurrent_SecondCallServedFromMemory(t *testing.T) {
	scraper := &mockScraper{collection: scrapedCollection(t)}
	service := newTestService(t, scraper, nil, newMockCache())
	ctx := context.Background()

	first, _ := service.Current(ctx)
	second, err := service.Current(ctx)
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}

	if first != second {
		t.Error("second call should return the same in-memory collection")
	}
	if scraper.calls != 1 {
		t.Errorf("scraper calls = %d, want 1", scraper.calls)
	}
}

func TestCurrent_WarmStartLoadsSnapshotWithoutScraping(t *testing.T) {
	cache := newMockCache()

	// Seed the cache through a first service instance.
	seeder := newTestService(t, &mockScraper{collection: scrapedCollection(t)}, nil, cache)
	if _, err := seeder.Refresh(context.Background()); err != nil {
		t.Fatalf("seeding refresh failed: %v", err)
	}

	scraper := &mockScraper{err: errors.New("source down")}
	service := newTestService(t, scraper, nil, cache)

	collection, err := service.Current(context.Background())
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if collection.Len() != 1 {
		t.Errorf("facilities = %d, want 1 from snapshot", collection.Len())
	}
	if scraper.calls != 0 {
		t.Errorf("scraper calls = %d, want 0 on warm start", scraper.calls)
	}
}

func TestRefresh_MergesDirectoryMetadata(t *testing.T) {
	scraper := &mockScraper{collection: scrapedCollection(t)}
	dir := &mockDirectory{entries: map[string]interfaces.DirectoryEntry{
		"High Park Pool": {
			Address: "1873 Bloor St W",
			Phone:   "416-555-0101",
			Type:    domain.FacilityTypeOutdoorPool,
		},
	}}
	service := newTestService(t, scraper, dir, newMockCache())

	collection, err := service.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}

	facility, _ := collection.Facility("High Park Pool")
	if facility.Address != "1873 Bloor St W" {
		t.Errorf("address = %q, metadata not merged", facility.Address)
	}
	if facility.Type != domain.FacilityTypeOutdoorPool {
		t.Errorf("type = %q, want outdoor-pool", facility.Type)
	}
}

func TestRefresh_DirectoryFailureIsNonFatal(t *testing.T) {
	scraper := &mockScraper{collection: scrapedCollection(t)}
	dir := &mockDirectory{err: errors.New("directory down")}
	service := newTestService(t, scraper, dir, newMockCache())

	collection, err := service.Refresh(context.Background())
	if err != nil {
		t.Fatalf("directory failure should not sink the refresh: %v", err)
	}

	facility, _ := collection.Facility("High Park Pool")
	if facility.Address != "" {
		t.Errorf("address = %q, want empty without directory", facility.Address)
	}
}

func TestRefresh_ScrapeFailurePropagates(t *testing.T) {
	scraper := &mockScraper{err: errors.New("source down")}
	service := newTestService(t, scraper, nil, newMockCache())

	if _, err := service.Refresh(context.Background()); err == nil {
		t.Error("Refresh should fail when the scrape fails")
	}
}

func TestRefresh_ReplacesCurrentCollection(t *testing.T) {
	scraper := &mockScraper{collection: scrapedCollection(t)}
	service := newTestService(t, scraper, nil, newMockCache())
	ctx := context.Background()

	first, _ := service.Current(ctx)

	replacement := schedule.NewCollection()
	if _, err := replacement.Ensure("Sunnyside Pool"); err != nil {
		t.Fatalf("Ensure returned error: %v", err)
	}
	scraper.collection = replacement

	refreshed, err := service.Refresh(ctx)
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if refreshed == first {
		t.Error("Refresh should produce a new collection")
	}

	current, _ := service.Current(ctx)
	if current != refreshed {
		t.Error("Current should serve the refreshed collection")
	}
}

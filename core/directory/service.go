// ABOUTME: Facility directory service that scrapes name/address/phone listings
// ABOUTME: Uses colly to walk the per-type facility listing pages

package directory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gocolly/colly"

	"pools-app-api/core/domain"
	"pools-app-api/core/interfaces"
	"pools-app-api/core/schedule"
)

const (
	collyUserAgent = "PoolsAPI/1.0"
	maxBodySize    = 5 * 1024 * 1024
	fetchTimeout   = 10 * time.Second
)

// DirectoryService scrapes the facility listing pages, one per facility
// type, into a name-keyed metadata map
type DirectoryService struct {
	deps interfaces.Dependencies
	urls map[domain.FacilityType]string
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(deps interfaces.Dependencies, urls map[domain.FacilityType]string) *DirectoryService {
	return &DirectoryService{
		deps: deps,
		urls: urls,
	}
}

// FetchDirectory scrapes every configured listing page and merges the rows
// into one map keyed by facility display name. A page that fails to load is
// logged and skipped; the fetch only fails outright when no page loads.
func (s *DirectoryService) FetchDirectory(ctx context.Context) (map[string]interfaces.DirectoryEntry, error) {
	entries := make(map[string]interfaces.DirectoryEntry)
	var fetched int

	for _, facilityType := range domain.FacilityTypes() {
		url, ok := s.urls[facilityType]
		if !ok {
			continue
		}

		if err := s.fetchListing(url, facilityType, entries); err != nil {
			s.deps.Logger.Warn("failed to fetch directory page", map[string]interface{}{
				"type":  string(facilityType),
				"url":   url,
				"error": err.Error(),
			})
			continue
		}
		fetched++
	}

	if fetched == 0 && len(s.urls) > 0 {
		return nil, fmt.Errorf("all %d directory pages failed to load", len(s.urls))
	}

	s.deps.Logger.Info("scraped facility directory", map[string]interface{}{
		"pages":   fetched,
		"entries": len(entries),
	})

	return entries, nil
}

// fetchListing scrapes one listing page into the shared entries map.
// A facility listed on multiple pages keeps its first-seen type.
func (s *DirectoryService) fetchListing(url string, facilityType domain.FacilityType, entries map[string]interfaces.DirectoryEntry) error {
	c := colly.NewCollector(
		colly.UserAgent(collyUserAgent),
		colly.MaxBodySize(maxBodySize),
		colly.Async(false),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(fetchTimeout)

	c.OnHTML("table tbody tr", func(e *colly.HTMLElement) {
		name := strings.TrimSpace(e.ChildText(`td[data-info="Name"]`))
		if name == "" {
			return
		}
		if _, seen := entries[name]; seen {
			return
		}

		entries[name] = interfaces.DirectoryEntry{
			Address: strings.TrimSpace(e.ChildText(`td[data-info="Address"]`)),
			Phone:   strings.TrimSpace(e.ChildText(`td[data-info="Phone"]`)),
			Type:    facilityType,
		}
	})

	var fetchErr error
	c.OnError(func(_ *colly.Response, err error) {
		fetchErr = err
	})

	if err := c.Visit(url); err != nil {
		return err
	}
	c.Wait()

	return fetchErr
}

// Apply merges directory metadata into the collection's facilities by
// display name. Facilities absent from the directory keep zero-valued
// metadata; their names are returned so callers can log them.
func Apply(collection *schedule.Collection, entries map[string]interfaces.DirectoryEntry) []string {
	var missing []string

	for _, facility := range collection.Facilities() {
		entry, ok := entries[facility.Name]
		if !ok {
			missing = append(missing, facility.Name)
			continue
		}

		facility.Address = entry.Address
		facility.Phone = entry.Phone
		facility.Type = entry.Type
	}

	return missing
}

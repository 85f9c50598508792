package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pools-app-api/core/domain"
	"pools-app-api/core/interfaces"
	"pools-app-api/core/schedule"
)

// mockLogger discards log output while counting warnings
type mockLogger struct {
	warnings int
}

func (l *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (l *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (l *mockLogger) Error(msg string, fields map[string]interface{}) {}
func (l *mockLogger) Warn(msg string, fields map[string]interface{})  { l.warnings++ }

const listingPage = `
<html><body>
<table>
  <tbody>
    <tr>
      <td data-info="Name"><a href="/high-park">High Park Pool</a></td>
      <td data-info="Address">1873 Bloor St W</td>
      <td data-info="Phone">416-555-0101</td>
    </tr>
    <tr>
      <td data-info="Name">Sunnyside Pool</td>
      <td data-info="Address">1755 Lake Shore Blvd W</td>
      <td data-info="Phone"></td>
    </tr>
    <tr>
      <td data-info="Name"></td>
      <td data-info="Address">ignored, no name</td>
    </tr>
  </tbody>
</table>
</body></html>`

func TestFetchDirectory_ParsesListingRows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(listingPage))
	}))
	defer server.Close()

	logger := &mockLogger{}
	service := NewDirectoryService(
		interfaces.Dependencies{Logger: logger},
		map[domain.FacilityType]string{domain.FacilityTypeOutdoorPool: server.URL},
	)

	entries, err := service.FetchDirectory(context.Background())
	if err != nil {
		t.Fatalf("FetchDirectory returned error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2 (nameless row skipped)", len(entries))
	}

	highPark, ok := entries["High Park Pool"]
	if !ok {
		t.Fatal("High Park Pool not found in directory")
	}
	if highPark.Address != "1873 Bloor St W" {
		t.Errorf("address = %q", highPark.Address)
	}
	if highPark.Phone != "416-555-0101" {
		t.Errorf("phone = %q", highPark.Phone)
	}
	if highPark.Type != domain.FacilityTypeOutdoorPool {
		t.Errorf("type = %q, want outdoor-pool", highPark.Type)
	}
}

func TestFetchDirectory_FirstSeenTypeWins(t *testing.T) {
	page := `<html><body><table><tbody>
		<tr><td data-info="Name">Shared Pool</td><td data-info="Address">1 Main St</td></tr>
	</tbody></table></body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	logger := &mockLogger{}
	service := NewDirectoryService(
		interfaces.Dependencies{Logger: logger},
		map[domain.FacilityType]string{
			domain.FacilityTypeIndoorPool:  server.URL + "/indoor",
			domain.FacilityTypeOutdoorPool: server.URL + "/outdoor",
		},
	)

	entries, err := service.FetchDirectory(context.Background())
	if err != nil {
		t.Fatalf("FetchDirectory returned error: %v", err)
	}

	// FacilityTypes orders indoor before outdoor, so indoor is first seen.
	if entries["Shared Pool"].Type != domain.FacilityTypeIndoorPool {
		t.Errorf("type = %q, want first-seen indoor-pool", entries["Shared Pool"].Type)
	}
}

func TestFetchDirectory_SkipsFailedPage(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(listingPage))
	}))
	defer good.Close()

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()

	logger := &mockLogger{}
	service := NewDirectoryService(
		interfaces.Dependencies{Logger: logger},
		map[domain.FacilityType]string{
			domain.FacilityTypeIndoorPool:  bad.URL,
			domain.FacilityTypeOutdoorPool: good.URL,
		},
	)

	entries, err := service.FetchDirectory(context.Background())
	if err != nil {
		t.Fatalf("one healthy page should carry the fetch: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("entries = %d, want 2 from the healthy page", len(entries))
	}
	if logger.warnings != 1 {
		t.Errorf("warnings logged = %d, want 1 for the failed page", logger.warnings)
	}
}

func TestFetchDirectory_AllPagesFailed(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()

	logger := &mockLogger{}
	service := NewDirectoryService(
		interfaces.Dependencies{Logger: logger},
		map[domain.FacilityType]string{domain.FacilityTypeIndoorPool: bad.URL},
	)

	if _, err := service.FetchDirectory(context.Background()); err == nil {
		t.Error("FetchDirectory should fail when every page fails")
	}
}

func TestApply_MergesMetadata(t *testing.T) {
	collection := schedule.NewCollection()
	_ = collection.AddAvailability("High Park Pool", domain.NewDate(2024, time.May, 26), domain.Interval{Start: 600, End: 660})
	if _, err := collection.Ensure("Unlisted Pool"); err != nil {
		t.Fatalf("Ensure returned error: %v", err)
	}

	entries := map[string]interfaces.DirectoryEntry{
		"High Park Pool": {
			Address: "1873 Bloor St W",
			Phone:   "416-555-0101",
			Type:    domain.FacilityTypeOutdoorPool,
		},
	}

	missing := Apply(collection, entries)

	highPark, _ := collection.Facility("High Park Pool")
	if highPark.Address != "1873 Bloor St W" || highPark.Phone != "416-555-0101" {
		t.Errorf("metadata not merged: %+v", highPark)
	}
	if highPark.Type != domain.FacilityTypeOutdoorPool {
		t.Errorf("type = %q, want outdoor-pool", highPark.Type)
	}

	if len(missing) != 1 || missing[0] != "Unlisted Pool" {
		t.Errorf("missing = %v, want [Unlisted Pool]", missing)
	}

	unlisted, _ := collection.Facility("Unlisted Pool")
	if unlisted.Address != "" || unlisted.Type != domain.FacilityTypeUnknown {
		t.Errorf("unlisted facility should keep zero metadata: %+v", unlisted)
	}
}

// ABOUTME: Facility domain model represents a named public amenity and its schedule
// ABOUTME: Owns the per-date interval lists built during ingestion

package domain

import "errors"

// FacilityType is a closed enumeration of the facility categories published
// on the source site's directory pages.
type FacilityType string

const (
	FacilityTypeUnknown     FacilityType = ""
	FacilityTypeIndoorPool  FacilityType = "indoor-pool"
	FacilityTypeOutdoorPool FacilityType = "outdoor-pool"
	FacilityTypeSplashPad   FacilityType = "splash-pad"
	FacilityTypeWadingPool  FacilityType = "wading-pool"
)

// FacilityTypes lists every known facility type.
func FacilityTypes() []FacilityType {
	return []FacilityType{
		FacilityTypeIndoorPool,
		FacilityTypeOutdoorPool,
		FacilityTypeSplashPad,
		FacilityTypeWadingPool,
	}
}

// Valid reports whether the type is one of the known categories.
func (ft FacilityType) Valid() bool {
	switch ft {
	case FacilityTypeIndoorPool, FacilityTypeOutdoorPool, FacilityTypeSplashPad, FacilityTypeWadingPool:
		return true
	case FacilityTypeUnknown:
		return false
	}
	return false
}

// Label returns the human-readable name of the type.
func (ft FacilityType) Label() string {
	switch ft {
	case FacilityTypeIndoorPool:
		return "Indoor Pool"
	case FacilityTypeOutdoorPool:
		return "Outdoor Pool"
	case FacilityTypeSplashPad:
		return "Splash Pad"
	case FacilityTypeWadingPool:
		return "Wading Pool"
	case FacilityTypeUnknown:
		return "Unknown"
	}
	return "Unknown"
}

// Facility is a named public amenity with its own independent schedule.
// The display name is the natural key: two facilities are the same if and
// only if their names are byte-identical as scraped.
type Facility struct {
	// Name is the display name and natural key
	Name string `json:"name"`

	// Slug is the css/js-safe form of the name used by projections
	Slug string `json:"slug"`

	// Address is the street address, empty when the directory has no entry
	Address string `json:"address,omitempty"`

	// Phone is the contact number, empty when the directory has no entry
	Phone string `json:"phone,omitempty"`

	// Type categorizes the facility, FacilityTypeUnknown when unmatched
	Type FacilityType `json:"type,omitempty"`

	// Availability maps each calendar date to its interval list in
	// as-encountered order
	Availability map[Date][]Interval `json:"availability"`
}

// NewFacility creates a facility with an empty schedule.
func NewFacility(name string) (*Facility, error) {
	if name == "" {
		return nil, errors.New("facility name cannot be empty")
	}
	return &Facility{
		Name:         name,
		Availability: make(map[Date][]Interval),
	}, nil
}

// Dates returns every date the facility has at least one interval for,
// in no particular order.
func (f *Facility) Dates() []Date {
	dates := make([]Date, 0, len(f.Availability))
	for d := range f.Availability {
		dates = append(dates, d)
	}
	return dates
}

// HasSchedule reports whether any date carries at least one interval.
// A facility that never parsed a single cell is retained with zero dates
// so downstream consumers can still render its name.
func (f *Facility) HasSchedule() bool {
	return len(f.Availability) > 0
}

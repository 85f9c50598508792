// ABOUTME: Schedule collection aggregates per-facility availability for one scrape run
// ABOUTME: Deduplicates verbatim duplicate intervals and exposes sorted, queried views

package schedule

import (
	"encoding/json"
	"sort"
	"time"

	"pools-app-api/core/domain"
	"pools-app-api/core/errors"
)

// Collection is the set of all facility records for one scrape run. It is
// built by a single writer during ingestion and frozen afterward; frozen
// collections are safe for unlimited concurrent readers without locking.
type Collection struct {
	order  []string
	byName map[string]*domain.Facility
}

// NewCollection creates an empty schedule collection.
func NewCollection() *Collection {
	return &Collection{
		byName: make(map[string]*domain.Facility),
	}
}

// Ensure returns the facility with the given display name, creating it on
// first encounter. Facilities are keyed by byte-identical name.
func (c *Collection) Ensure(name string) (*domain.Facility, error) {
	if f, ok := c.byName[name]; ok {
		return f, nil
	}

	f, err := domain.NewFacility(name)
	if err != nil {
		return nil, err
	}

	c.order = append(c.order, name)
	c.byName[name] = f
	return f, nil
}

// Facility looks up a facility by display name.
func (c *Collection) Facility(name string) (*domain.Facility, bool) {
	f, ok := c.byName[name]
	return f, ok
}

// Facilities returns every facility in first-encountered order.
func (c *Collection) Facilities() []*domain.Facility {
	facilities := make([]*domain.Facility, 0, len(c.order))
	for _, name := range c.order {
		facilities = append(facilities, c.byName[name])
	}
	return facilities
}

// Len returns the number of facilities in the collection.
func (c *Collection) Len() int {
	return len(c.order)
}

// AddAvailability inserts one interval into the facility's schedule for the
// given date. A verbatim duplicate (identical start and end) is silently
// absorbed; distinct overlapping intervals are preserved as separate
// entries. Insertion order within a date is kept for projections that list
// times as encountered.
func (c *Collection) AddAvailability(name string, date domain.Date, interval domain.Interval) error {
	if !interval.Valid() {
		return &errors.InvalidIntervalError{Start: int(interval.Start), End: int(interval.End)}
	}

	f, err := c.Ensure(name)
	if err != nil {
		return err
	}

	for _, existing := range f.Availability[date] {
		if existing == interval {
			return nil
		}
	}

	f.Availability[date] = append(f.Availability[date], interval)
	return nil
}

// DaySchedule returns the facility's intervals for one date in
// as-encountered order. The returned slice is a copy; mutating it cannot
// disturb the collection.
func (c *Collection) DaySchedule(name string, date domain.Date) []domain.Interval {
	f, ok := c.byName[name]
	if !ok {
		return nil
	}

	intervals := f.Availability[date]
	if len(intervals) == 0 {
		return nil
	}

	out := make([]domain.Interval, len(intervals))
	copy(out, intervals)
	return out
}

// SortedDaySchedule returns the facility's intervals for one date ordered
// by descending duration, then ascending start time, so the main block of
// availability surfaces first.
func (c *Collection) SortedDaySchedule(name string, date domain.Date) []domain.Interval {
	out := c.DaySchedule(name, date)
	sortIntervals(out)
	return out
}

// sortIntervals orders longest first, breaking ties on earlier start.
func sortIntervals(intervals []domain.Interval) {
	sort.SliceStable(intervals, func(i, j int) bool {
		di, dj := intervals[i].Duration(), intervals[j].Duration()
		if di != dj {
			return di > dj
		}
		return intervals[i].Start < intervals[j].Start
	})
}

// Opening is one facility interval matched by the OpenOn query.
type Opening struct {
	Facility string          `json:"facility"`
	Date     domain.Date     `json:"date"`
	Interval domain.Interval `json:"interval"`
}

// OpenOn finds every interval on the given day of the given month across
// all facilities, matching on day and month only and ignoring the year.
// This is a deliberately narrow query mode distinct from the exact-date
// lookups used by the projections; it reproduces the source behavior of
// tolerating the same calendar day in an adjacent year. Results are ordered
// longest first, then earliest start.
func (c *Collection) OpenOn(month time.Month, day int) []Opening {
	probe := domain.Date{Month: month, Day: day}

	var openings []Opening
	for _, name := range c.order {
		f := c.byName[name]

		dates := f.Dates()
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

		for _, date := range dates {
			if !date.SameDayAndMonth(probe) {
				continue
			}
			for _, interval := range f.Availability[date] {
				openings = append(openings, Opening{Facility: name, Date: date, Interval: interval})
			}
		}
	}

	sort.SliceStable(openings, func(i, j int) bool {
		di, dj := openings[i].Interval.Duration(), openings[j].Interval.Duration()
		if di != dj {
			return di > dj
		}
		return openings[i].Interval.Start < openings[j].Interval.Start
	})

	return openings
}

// collectionSnapshot is the wire form of a Collection: facilities in
// first-encountered order.
type collectionSnapshot struct {
	Facilities []*domain.Facility `json:"facilities"`
}

// MarshalJSON implements json.Marshaler so a snapshot round trip rebuilds a
// structurally identical collection.
func (c *Collection) MarshalJSON() ([]byte, error) {
	return json.Marshal(collectionSnapshot{Facilities: c.Facilities()})
}

// UnmarshalJSON implements json.Unmarshaler
func (c *Collection) UnmarshalJSON(data []byte) error {
	var snap collectionSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}

	c.order = c.order[:0]
	c.byName = make(map[string]*domain.Facility, len(snap.Facilities))
	for _, f := range snap.Facilities {
		if f.Availability == nil {
			f.Availability = make(map[domain.Date][]domain.Interval)
		}
		c.order = append(c.order, f.Name)
		c.byName[f.Name] = f
	}
	return nil
}

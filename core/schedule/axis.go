// ABOUTME: Calendar axis builder computes the shared date bounds for all projections
// ABOUTME: Guards against empty collections and pathologically wide spans

package schedule

import (
	"pools-app-api/core/domain"
	"pools-app-api/core/errors"
)

// MaxAxisSpanDays bounds the calendar axis at roughly six months. This is a
// sanity guard against garbled source data producing an axis too large to
// render, not a hard domain limit.
const MaxAxisSpanDays = 182

// ComputeAxis scans every facility's date keys and returns the inclusive
// earliest/latest bounds shared by all projections. Callers enumerate the
// day-by-day sequence via DateRange.Dates.
func ComputeAxis(c *Collection) (domain.DateRange, error) {
	var (
		earliest, latest domain.Date
		found            bool
	)

	for _, f := range c.Facilities() {
		for date := range f.Availability {
			if !found {
				earliest, latest = date, date
				found = true
				continue
			}
			if date.Before(earliest) {
				earliest = date
			}
			if date.After(latest) {
				latest = date
			}
		}
	}

	if !found {
		return domain.DateRange{}, &errors.EmptyCollectionError{}
	}

	if span := earliest.DaysUntil(latest); span > MaxAxisSpanDays {
		return domain.DateRange{}, &errors.SpanTooLargeError{Days: span, Limit: MaxAxisSpanDays}
	}

	return domain.DateRange{Earliest: earliest, Latest: latest}, nil
}

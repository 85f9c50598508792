// ABOUTME: Date domain model represents a plain calendar day with no time component
// ABOUTME: Comparable value type usable as a map key, serialized as ISO "2006-01-02"

package domain

import (
	"fmt"
	"time"
)

// isoDateLayout is the canonical textual form of a Date.
const isoDateLayout = "2006-01-02"

// Date is a plain (year, month, day) value. Equality and ordering consider
// the calendar day only. The zero value is not a valid date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate creates a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates a time.Time to its calendar day.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses the ISO "2006-01-02" form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(isoDateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// Time returns the date at UTC midnight. UTC keeps day arithmetic exact;
// local midnights drift across DST transitions, where a wall-clock day can
// be 23 or 25 hours long.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days later, rolling over month and year.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Before reports whether d falls before other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d falls after other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// SameDayAndMonth reports whether two dates share day and month, ignoring
// the year. Used by the "open on day N" query mode only.
func (d Date) SameDayAndMonth(other Date) bool {
	return d.Day == other.Day && d.Month == other.Month
}

// DaysUntil returns the number of calendar days from d to other.
// Negative when other is earlier.
func (d Date) DaysUntil(other Date) int {
	return int(other.Time().Sub(d.Time()).Hours() / 24)
}

// String implements fmt.Stringer
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalText implements encoding.TextMarshaler so Date can serve as a JSON
// map key and round-trip through snapshots.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateRange is an inclusive pair of calendar dates bounding the axis shared
// by all projections.
type DateRange struct {
	Earliest Date `json:"earliest"`
	Latest   Date `json:"latest"`
}

// Days returns the finite count of dates in the range, inclusive.
func (r DateRange) Days() int {
	return r.Earliest.DaysUntil(r.Latest) + 1
}

// Dates enumerates the day-by-day sequence from earliest to latest.
func (r DateRange) Dates() []Date {
	dates := make([]Date, 0, r.Days())
	for d := r.Earliest; !d.After(r.Latest); d = d.AddDays(1) {
		dates = append(dates, d)
	}
	return dates
}

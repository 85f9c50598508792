// ABOUTME: Interval domain model represents one contiguous open-for-use period
// ABOUTME: Intervals are half-open minute spans compared by both endpoints

package domain

import "fmt"

// Interval is a half-open span of minutes-of-day during which a facility is
// available. Two intervals are duplicates only when both endpoints match;
// overlapping but non-identical intervals are kept as distinct entries to
// reproduce source ambiguity rather than resolve it.
type Interval struct {
	// Start is the first minute of the span
	Start ClockTime `json:"start"`

	// End is the minute the span ends, exclusive
	End ClockTime `json:"end"`
}

// Duration returns the length of the interval in minutes.
func (iv Interval) Duration() int {
	return int(iv.End) - int(iv.Start)
}

// Valid reports whether the interval's start is strictly before its end.
func (iv Interval) Valid() bool {
	return iv.Start < iv.End
}

// String renders the interval the way the source site writes it,
// e.g. "10:30am - 12pm".
func (iv Interval) String() string {
	return fmt.Sprintf("%s - %s", iv.Start.Clock(), iv.End.Clock())
}

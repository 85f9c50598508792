// ABOUTME: ClockTime domain model represents a wall-clock time as minutes since midnight
// ABOUTME: Provides 12-hour clock formatting matching the source website's style

package domain

import "fmt"

// MinutesPerDay is the number of minutes in a calendar day.
const MinutesPerDay = 24 * 60

// ClockTime is a number of minutes since local midnight, in [0, 1439].
// Times are local wall-clock values with no timezone offset.
type ClockTime int

// Hour returns the 24-hour clock hour component.
func (t ClockTime) Hour() int {
	return int(t) / 60
}

// Minute returns the minute component.
func (t ClockTime) Minute() int {
	return int(t) % 60
}

// Clock renders the time in the 12-hour style used by the source site,
// e.g. "8pm", "10:30am", "12pm".
func (t ClockTime) Clock() string {
	hour := t.Hour()
	meridiem := "am"
	if hour >= 12 {
		meridiem = "pm"
	}

	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	if t.Minute() == 0 {
		return fmt.Sprintf("%d%s", hour12, meridiem)
	}
	return fmt.Sprintf("%d:%02d%s", hour12, t.Minute(), meridiem)
}

// String implements fmt.Stringer
func (t ClockTime) String() string {
	return t.Clock()
}

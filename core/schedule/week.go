// ABOUTME: Weekly row expander turns a Sunday-anchored 7-day block into dated intervals
// ABOUTME: Isolates per-cell parse failures so one garbled cell cannot sink the week

package schedule

import (
	"fmt"
	"strings"

	"pools-app-api/core/domain"
)

// DaysPerWeek is the length of one weekly block.
const DaysPerWeek = 7

// Availability pairs one resolved interval with the absolute calendar date
// it applies to.
type Availability struct {
	Date     domain.Date
	Interval domain.Interval
}

// CellError reports a parse failure for a single cell, carrying enough
// context to identify the offending source text.
type CellError struct {
	Date domain.Date
	Cell string
	Err  error
}

// Error implements the error interface
func (e *CellError) Error() string {
	return fmt.Sprintf("cell %q on %s: %v", e.Cell, e.Date, e.Err)
}

// Unwrap returns the underlying parse error
func (e *CellError) Unwrap() error {
	return e.Err
}

// ExpandWeek expands a 7-day block into absolute-date availabilities.
// The anchor is the date of the block's first day (the source convention is
// Sunday-start) and the slots are the seven raw cell strings positionally
// aligned Sun..Sat. Slot i maps to anchor+i days.
//
// Each non-empty slot is split into range substrings and resolved
// individually; every failure is collected as a CellError while the
// remaining cells keep processing. An empty or whitespace-only slot emits
// nothing for its date, which is not the same as a known-closed record.
func ExpandWeek(anchor domain.Date, slots [DaysPerWeek]string) ([]Availability, []*CellError) {
	var (
		emitted  []Availability
		failures []*CellError
	)

	for i, slot := range slots {
		date := anchor.AddDays(i)

		cell := strings.TrimSpace(slot)
		if cell == "" {
			continue
		}

		for _, rangeText := range SplitRanges(cell) {
			interval, err := ResolveRange(rangeText)
			if err != nil {
				failures = append(failures, &CellError{Date: date, Cell: rangeText, Err: err})
				continue
			}
			emitted = append(emitted, Availability{Date: date, Interval: interval})
		}
	}

	return emitted, failures
}

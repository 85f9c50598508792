// ABOUTME: Time range resolver turns one range substring into a minute-of-day interval
// ABOUTME: Infers the am/pm of an unmarked endpoint from the other side of the range

package schedule

import (
	"strings"

	"pools-app-api/core/domain"
	"pools-app-api/core/errors"
)

const (
	amText = "am"
	pmText = "pm"

	// rangeSeparator is the literal separator the source site places
	// between the two endpoints of a well-formed range.
	rangeSeparator = " - "
)

// stripMeridiem removes every am/pm marker from an endpoint token.
func stripMeridiem(text string) string {
	text = strings.ReplaceAll(text, amText, "")
	text = strings.ReplaceAll(text, pmText, "")
	return text
}

// ResolveRange parses one range substring such as "12:30 - 8pm" or
// "10:30am - 12pm" into an interval. The end text decides the meridiem:
// an "am" end makes both endpoints AM; a "pm" end makes the start AM only
// when the start text carries its own "am" marker, otherwise both are PM.
//
// The interval is returned without validating start < end; that invariant
// is enforced on insert by the aggregator.
func ResolveRange(text string) (domain.Interval, error) {
	parts := strings.Split(text, rangeSeparator)
	if len(parts) != 2 {
		return domain.Interval{}, &errors.MultiRangeError{Text: text, Parts: len(parts)}
	}

	startText, endText := parts[0], parts[1]

	var startHint, endHint Meridiem
	switch {
	case strings.Contains(endText, amText):
		startHint, endHint = AM, AM
	case strings.Contains(endText, pmText):
		endHint = PM
		if strings.Contains(startText, amText) {
			startHint = AM
		} else {
			startHint = PM
		}
	default:
		return domain.Interval{}, &errors.MissingMeridiemError{Text: text}
	}

	start, err := ParseClockToken(stripMeridiem(startText), startHint)
	if err != nil {
		return domain.Interval{}, err
	}

	end, err := ParseClockToken(stripMeridiem(endText), endHint)
	if err != nil {
		return domain.Interval{}, err
	}

	return domain.Interval{Start: start, End: end}, nil
}

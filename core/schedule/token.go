// ABOUTME: Clock token parser converts a single clock-face token to minutes since midnight
// ABOUTME: Applies the PM offset rule with the noon exception

package schedule

import (
	"strconv"
	"strings"

	"pools-app-api/core/domain"
	"pools-app-api/core/errors"
)

// Meridiem disambiguates a clock token that carries no am/pm marker of its
// own. The hint is always decided by the range resolver, never here.
type Meridiem int

const (
	// AM applies no offset to the parsed hour
	AM Meridiem = iota
	// PM adds twelve hours to every hour except literal 12
	PM
)

// String implements fmt.Stringer
func (m Meridiem) String() string {
	switch m {
	case AM:
		return "am"
	case PM:
		return "pm"
	}
	return "unknown"
}

// ParseClockToken parses a clock-face token such as "12:30", "8" or "10:30"
// into a minute-of-day value. The token must have any trailing am/pm text
// already stripped. The hint decides whether the PM offset applies: PM adds
// twelve hours unless the hour is literally 12, so noon stays noon; AM is a
// literal passthrough regardless of hour.
func ParseClockToken(text string, hint Meridiem) (domain.ClockTime, error) {
	text = strings.TrimSpace(text)

	var hourText, minuteText string
	switch parts := strings.Split(text, ":"); len(parts) {
	case 1:
		hourText = parts[0]
	case 2:
		hourText, minuteText = parts[0], parts[1]
	default:
		return 0, &errors.MalformedTokenError{Token: text, Reason: "more than one colon"}
	}

	hours, err := strconv.Atoi(hourText)
	if err != nil {
		return 0, &errors.MalformedTokenError{Token: text, Reason: "non-numeric hour"}
	}

	minutes := 0
	if minuteText != "" {
		minutes, err = strconv.Atoi(minuteText)
		if err != nil {
			return 0, &errors.MalformedTokenError{Token: text, Reason: "non-numeric minutes"}
		}
	}

	switch hint {
	case PM:
		if hours != 12 {
			hours += 12
		}
	case AM:
		// literal passthrough
	}

	return domain.ClockTime(hours*60 + minutes), nil
}

// ABOUTME: Custom error types for the schedule parsing core
// ABOUTME: Provides structured errors for parse failures and collection-level guards

package errors

import (
	"errors"
	"fmt"
)

// MalformedTokenError indicates a clock token that could not be parsed.
type MalformedTokenError struct {
	Token  string
	Reason string
}

// Error implements the error interface
func (e *MalformedTokenError) Error() string {
	return fmt.Sprintf("malformed clock token %q: %s", e.Token, e.Reason)
}

// MultiRangeError indicates a range cell that split into more or fewer than
// two endpoints. The legacy behavior of substituting a 1-minute placeholder
// interval is not supported; the error surfaces instead.
type MultiRangeError struct {
	Text  string
	Parts int
}

// Error implements the error interface
func (e *MultiRangeError) Error() string {
	return fmt.Sprintf("time range %q split into %d parts, want 2", e.Text, e.Parts)
}

// MissingMeridiemError indicates a range whose end carries neither an "am"
// nor a "pm" marker, leaving both endpoints ambiguous.
type MissingMeridiemError struct {
	Text string
}

// Error implements the error interface
func (e *MissingMeridiemError) Error() string {
	return fmt.Sprintf("time range %q has no am/pm marker", e.Text)
}

// InvalidIntervalError indicates an interval whose start is not strictly
// before its end, such as a range that appears to wrap past midnight.
type InvalidIntervalError struct {
	Start int
	End   int
}

// Error implements the error interface
func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("invalid interval: start %d is not before end %d", e.Start, e.End)
}

// EmptyCollectionError indicates that no facility in the collection has any
// date entries, so no calendar axis can be derived.
type EmptyCollectionError struct{}

// Error implements the error interface
func (e *EmptyCollectionError) Error() string {
	return "schedule collection has no dated entries"
}

// SpanTooLargeError indicates that the distance between the earliest and
// latest observed dates exceeds the sanity bound for a renderable calendar.
type SpanTooLargeError struct {
	Days  int
	Limit int
}

// Error implements the error interface
func (e *SpanTooLargeError) Error() string {
	return fmt.Sprintf("calendar span of %d days exceeds limit of %d days", e.Days, e.Limit)
}

// IsMalformedToken checks if an error is a MalformedTokenError
func IsMalformedToken(err error) bool {
	var tokenErr *MalformedTokenError
	return errors.As(err, &tokenErr)
}

// IsMultiRange checks if an error is a MultiRangeError
func IsMultiRange(err error) bool {
	var rangeErr *MultiRangeError
	return errors.As(err, &rangeErr)
}

// IsMissingMeridiem checks if an error is a MissingMeridiemError
func IsMissingMeridiem(err error) bool {
	var meridiemErr *MissingMeridiemError
	return errors.As(err, &meridiemErr)
}

// IsInvalidInterval checks if an error is an InvalidIntervalError
func IsInvalidInterval(err error) bool {
	var intervalErr *InvalidIntervalError
	return errors.As(err, &intervalErr)
}

// IsEmptyCollection checks if an error is an EmptyCollectionError
func IsEmptyCollection(err error) bool {
	var emptyErr *EmptyCollectionError
	return errors.As(err, &emptyErr)
}

// IsSpanTooLarge checks if an error is a SpanTooLargeError
func IsSpanTooLarge(err error) bool {
	var spanErr *SpanTooLargeError
	return errors.As(err, &spanErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// ABOUTME: Time range splitter re-segments cells holding multiple concatenated ranges
// ABOUTME: Handles back-to-back ranges like "5-7pm6-8pm" that share no separator

package schedule

import "regexp"

// rangePattern matches one range: everything up to and including the first
// dash, then everything up to and including the next am/pm marker. Repeated
// matching peels concatenated ranges apart without losing or duplicating
// characters between them.
var rangePattern = regexp.MustCompile(`.*?-.*?(?:am|pm)`)

// SplitRanges re-segments a raw cell string into individual range
// substrings, each of which satisfies ResolveRange's input contract.
// Trailing characters that do not complete the pattern are silently dropped,
// matching the source site's tolerance for trailing garbage. An empty cell
// yields no ranges.
func SplitRanges(cell string) []string {
	return rangePattern.FindAllString(cell, -1)
}

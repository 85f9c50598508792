// ABOUTME: Google Maps helpers for building search links from facility addresses
// ABOUTME: Used by the card-list projection to link each facility to a map

package gmaps

import "regexp"

var whitespace = regexp.MustCompile(`\s+`)

// SearchURL builds a Google Maps search link for the given query,
// typically a facility name plus street address.
func SearchURL(query string) string {
	return "https://www.google.ca/maps/search/" + whitespace.ReplaceAllString(query, "+") + "/"
}

// ABOUTME: Slug utilities for turning facility display names into css/js-safe identifiers
// ABOUTME: Reproduces the character set observed across the source site's facility names

package slug

import "strings"

// replacements maps the non-alphabetic characters that occur in facility
// display names to their slug form. Anything else passes through unchanged.
var replacements = map[rune]string{
	' ':  "-",
	'\'': "",
	',':  "",
	'.':  "",
	'-':  "-",
}

// Make converts a facility display name into a slug usable as a css class
// or js identifier, e.g. "Joseph J. Piccininni" -> "joseph-j-piccininni".
func Make(name string) string {
	name = strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if repl, ok := replacements[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

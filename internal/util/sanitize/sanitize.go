// Package sanitize makes file names safe to write to a terminal.
//
// Names may contain any byte except '/' and NUL, including newlines and
// escape sequences. Printing them raw breaks the one-entry-per-line layout
// and lets a crafted name drive the terminal.
package sanitize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Replacement stands in for every byte or rune that cannot be shown.
const Replacement = '?'

// DisplayName replaces control characters and invalid UTF-8 in name with
// Replacement. Printable names are returned unchanged.
func DisplayName(name string) string {
	if isPrintable(name) {
		return name
	}

	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); {
		r, size := utf8.DecodeRuneInString(name[i:])
		if (r == utf8.RuneError && size == 1) || unicode.IsControl(r) {
			b.WriteRune(Replacement)
		} else {
			b.WriteString(name[i : i+size])
		}
		i += size
	}
	return b.String()
}

func isPrintable(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

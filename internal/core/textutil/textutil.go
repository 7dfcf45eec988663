// Package textutil normalises response text for matching.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize prepares a raw response for fuzzy matching: NFKC-fold the
// text, lowercase it, strip everything but letters, digits and spaces,
// and collapse runs of whitespace to a single space. Returns the empty
// string for cells that hold no usable text, which callers treat as
// missing data.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r):
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		}
		// Everything else (punctuation, symbols) is dropped.
	}
	return strings.TrimRight(b.String(), " ")
}

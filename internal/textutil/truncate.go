// Package textutil holds small string helpers shared by the parser and generators.
package textutil

import "unicode/utf8"

// Ellipsis is appended to text cut by Truncate.
const Ellipsis = "..."

// Truncate keeps the first limit runes of s and appends Ellipsis when s is longer.
// Text of limit runes or fewer is returned unchanged.
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	n := 0
	for i := range s {
		if n == limit {
			return s[:i] + Ellipsis
		}
		n++
	}

	return s
}

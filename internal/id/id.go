package id

import (
	"strings"
	"unicode/utf8"
)

// Username derives a login identifier from the owner's initials.
// "Afonso Marques" -> "am"
func Username(owner string) string {
	var b strings.Builder
	for _, word := range strings.Fields(strings.ToLower(owner)) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return b.String()
}

// Normalize trims and lower-cases user input so it compares against Username.
func Normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

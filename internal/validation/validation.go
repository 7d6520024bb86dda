// Package validation provides input validation for lookup queries.
package validation

import (
	"strings"
	"unicode"
)

// MaxWordLength bounds the query so arbitrary junk never reaches the
// upstream API.
const MaxWordLength = 64

// ValidateWord checks that a query term is safe to send upstream.
// Returns (false, reason) when invalid.
func ValidateWord(word string) (bool, string) {
	word = strings.TrimSpace(word)
	if word == "" {
		return false, "word is required"
	}
	if len(word) > MaxWordLength {
		return false, "word is too long"
	}
	for _, r := range word {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return false, "word may only contain letters, spaces, hyphens and apostrophes"
	}
	return true, ""
}

// Package textindex builds the in-memory inverted index used for catalog
// search: a tokenizer and per-field term postings over service records.
package textindex

import (
	"strings"
	"unicode"
)

// MinTokenLength is the shortest token worth indexing. Single characters
// carry no signal for this catalog.
const MinTokenLength = 2

// Tokenize normalises free text into lowercase word tokens. Any character
// that is not a letter, digit or underscore becomes a separator, runs of
// separators collapse, and tokens shorter than MinTokenLength are dropped.
// Empty input yields a nil slice.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	normalised := strings.Map(func(c rune) rune {
		if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' {
			return unicode.ToLower(c)
		}
		return ' '
	}, text)

	var tokens []string
	for _, tok := range strings.Fields(normalised) {
		if len([]rune(tok)) >= MinTokenLength {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// Package normalize folds text for fuzzy matching: lower-case plus a fixed
// substitution table for Turkish accented letters, so "İSTANBUL" and
// "istanbul" compare equal.
package normalize

import (
	"strings"
	"unicode"
)

var foldTable = map[rune]rune{
	'ğ': 'g', 'Ğ': 'g',
	'ü': 'u', 'Ü': 'u',
	'ş': 's', 'Ş': 's',
	'ı': 'i', 'İ': 'i',
	'ö': 'o', 'Ö': 'o',
	'ç': 'c', 'Ç': 'c',
}

// Fold lower-cases s and maps Turkish accented letters to their unaccented
// base form. Idempotent; an empty string folds to an empty string.
//
// The table runs before the generic lower-casing so that dotted capital I
// (U+0130) folds to a plain "i" instead of "i" plus a combining dot.
func Fold(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if folded, ok := foldTable[r]; ok {
			b.WriteRune(folded)
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Words splits a query into folded search words. Whitespace-only input
// yields no words.
func Words(query string) []string {
	fields := strings.Fields(query)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		words = append(words, Fold(f))
	}
	return words
}

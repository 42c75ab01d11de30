package search_service

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks removes diacritics via canonical decomposition, so "città" and
// "citta" compare equal everywhere the engine compares text.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes free text for comparison: lowercase, diacritics
// stripped, every non-word character replaced by a space, trimmed.
// Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	folded, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		folded = lowered
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.TrimSpace(b.String())
}

// Tokenize splits a query into normalized tokens on whitespace and commas.
// Single-character tokens are kept: numeric and one-letter article codes
// must stay searchable.
func Tokenize(query string) []string {
	return strings.FieldsFunc(Normalize(query), func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
}

package relay

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeAnswer lowercases, strips diacritics and punctuation, and
// collapses whitespace, so two answers can be compared by content rather
// than surface form.
func NormalizeAnswer(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// IsNearDuplicate reports whether a regenerated answer is effectively the
// same as the previous one, using substring containment on the normalized
// texts. Coarse for very short answers and for long answers sharing a
// prefix; a positive result triggers one revision pass.
func IsNearDuplicate(previous, regenerated string) bool {
	a := NormalizeAnswer(previous)
	b := NormalizeAnswer(regenerated)
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

package engine

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// generationalSuffixes are dropped from the end of a normalized name so that
// "Odell Beckham Jr." and "odell beckham" collide to the same key.
var generationalSuffixes = map[string]bool{
	"jr":  true,
	"sr":  true,
	"ii":  true,
	"iii": true,
	"iv":  true,
}

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizePlayerName canonicalizes a player's display name into a stable
// grouping key: lower-cased, accents and punctuation stripped, whitespace
// collapsed, trailing generational suffix removed. The same athlete is quoted
// with different punctuation and suffix conventions across books and must
// collide to one key. Empty input yields an empty key.
func NormalizePlayerName(name string) string {
	if name == "" {
		return ""
	}

	folded, _, err := transform.String(accentStripper, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
		// Punctuation is dropped entirely: "D'Angelo" -> "dangelo",
		// "A.J." -> "aj".
	}

	fields := strings.Fields(b.String())
	if len(fields) > 1 && generationalSuffixes[fields[len(fields)-1]] {
		fields = fields[:len(fields)-1]
	}

	return strings.Join(fields, " ")
}

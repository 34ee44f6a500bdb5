// Package normalize canonicalizes player name strings for comparison and
// display. Two comparison levels exist: Normalize preserves word order and
// count for high-precision matching, Simplify additionally drops short
// particles and initials to recover matches when extraction mangled a name.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Placeholder stored in reference sets when a name is missing entirely.
const Placeholder = "Sin_nombre"

var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// stripDiacritics removes Unicode combining marks after NFKD decomposition.
func stripDiacritics(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}

// Normalize canonicalizes a raw name: diacritics stripped, lower-cased,
// internal whitespace collapsed, trimmed. Idempotent; empty input yields "".
func Normalize(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(stripDiacritics(name))), " ")
}

// Simplify applies Normalize and removes tokens of length <= 2, filtering
// middle initials and particles like "de" or "la". Used only as a fallback
// comparison key, never as the primary identity.
func Simplify(name string) string {
	var kept []string
	for _, tok := range strings.Fields(Normalize(name)) {
		if len(tok) > 2 {
			kept = append(kept, tok)
		}
	}
	return strings.Join(kept, " ")
}

// Title normalizes a candidate section title: Normalize plus trimming of
// trailing ":" and "-" so "Pitchers:" and "pitchers" compare equal.
func Title(s string) string {
	return strings.TrimSpace(strings.TrimRight(Normalize(s), ":-"))
}

// CleanDisplayName produces the canonical display form stored in reference
// sets: "Last, First" is reordered to "First Last", each word Title-Cased,
// diacritics stripped. An empty name yields the Placeholder literal.
func CleanDisplayName(name string) string {
	if name == "" {
		return Placeholder
	}
	parts := strings.Split(name, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	rearranged := parts[0]
	if len(parts) >= 2 {
		rearranged = strings.TrimSpace(parts[len(parts)-1] + " " + parts[0])
	}
	titled := cases.Title(language.Und).String(rearranged)
	return stripDiacritics(strings.Join(strings.Fields(titled), " "))
}

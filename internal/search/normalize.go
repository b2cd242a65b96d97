package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var folder = cases.Fold()

// Normalize folds case and strips combining marks so "Épée" and "epee" compare equal.
// It mirrors unaccent(lower(name)) on the database side.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.TrimSpace(folder.String(out))
}

// Match reports whether name contains query, ignoring case and accents.
// An empty query matches everything.
func Match(query, name string) bool {
	return strings.Contains(Normalize(name), Normalize(query))
}

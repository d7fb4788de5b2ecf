package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold trims s, strips diacritics and case-folds it, so "Miércoles",
// "MIERCOLES" and "miercoles" compare equal.
func Fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}

	return cases.Fold().String(out)
}

// Contains reports whether needle occurs in haystack after folding both.
func Contains(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}

// Key folds a field name and drops separators, so "IdTecnico",
// "idTecnico" and "id_tecnico" produce the same key.
func Key(s string) string {
	s = Fold(s)
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)
}

// Package normalize canonicalizes book names and free text for alias matching.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Casers and transform chains keep internal state, so a fresh one is built
// for every call. This keeps Normalize safe for concurrent use.
func stripAccents() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Normalize folds case and strips diacritics, e.g. "JOÃO" -> "joao".
// It is used both when indexing aliases and when looking up a matched alias,
// so variants that only differ by accent or case collide to the same key.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	folded := cases.Fold().String(s)

	result, _, err := transform.String(stripAccents(), folded)
	if err != nil {
		return folded
	}

	return result
}

// EscapeForPattern escapes every character with special meaning in a
// regular expression.
func EscapeForPattern(s string) string {
	return regexp.QuoteMeta(s)
}

// foldable lists, for every base letter, the set of characters a folded
// pattern accepts in its place. Matching is case insensitive so only lower
// case forms are needed.
var foldable = map[rune]string{
	'a': "aáàâãä",
	'e': "eéèêë",
	'i': "iíìîï",
	'o': "oóòôõö",
	'u': "uúùûü",
	'c': "cç",
	'n': "nñ",
}

// baseLetter returns the unaccented lower case letter for r.
func baseLetter(r rune) rune {
	folded := Normalize(string(r))
	if len([]rune(folded)) != 1 {
		return unicode.ToLower(r)
	}
	return []rune(folded)[0]
}

// FoldDiacriticsForPattern rewrites pattern so that every foldable letter
// also matches its accented forms: "Joao" and "João" both become
// "J[oóòôõö][aáàâãä][oóòôõö]". Escaped characters are copied untouched and
// letters that already sit inside a character class are expanded in place.
func FoldDiacriticsForPattern(pattern string) string {
	var sb strings.Builder
	sb.Grow(len(pattern) * 4)

	escaped := false
	inClass := false

	for _, r := range pattern {
		switch {
		case escaped:
			escaped = false
			sb.WriteRune(r)
			continue
		case r == '\\':
			escaped = true
			sb.WriteRune(r)
			continue
		case r == '[' && !inClass:
			inClass = true
			sb.WriteRune(r)
			continue
		case r == ']' && inClass:
			inClass = false
			sb.WriteRune(r)
			continue
		}

		variants, ok := foldable[baseLetter(r)]
		if !ok {
			sb.WriteRune(r)
			continue
		}

		if inClass {
			sb.WriteString(variants)
			continue
		}

		sb.WriteByte('[')
		sb.WriteString(variants)
		sb.WriteByte(']')
	}

	return sb.String()
}

// Package slug derives URL-safe company codes from display names.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldMarks decomposes characters and strips combining marks, so
// accented letters reduce to their ASCII base ("Compañía" -> "Compania").
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make lowercases name, folds diacritics, collapses every run of
// non-alphanumeric characters into a single hyphen, and strips leading
// and trailing hyphens. Make("Glitter & Gold") == "glitter-gold".
func Make(name string) string {
	folded, _, err := transform.String(foldMarks, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder

	b.Grow(len(folded))

	lastHyphen := true // suppress a leading hyphen

	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)

			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')

			lastHyphen = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

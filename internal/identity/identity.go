// Package identity derives canonical identifiers from display names.
//
// Two mentions of the same person anywhere in the archive are merged
// purely by name: equal normalized names yield equal identities. This
// is the single source of truth for identity resolution; no registry
// exists alongside it.
package identity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Of converts a display name into its canonical identity key.
//
// The name is decomposed, stripped of combining marks, lowercased,
// and runs of non-alphanumeric characters collapse to a single
// underscore. "Frëd Blöggs " and "Fred Bloggs" both yield
// "fred_bloggs". The function is pure and total over non-empty
// strings; empty input yields an empty identity and is a caller
// concern.
func Of(name string) string {
	flattened, _, err := transform.String(stripMarks, name)
	if err != nil {
		// Transliteration is best effort; fall back to the raw name.
		flattened = name
	}
	flattened = strings.ToLower(flattened)

	var b strings.Builder
	b.Grow(len(flattened))
	pendingSep := false
	for _, r := range flattened {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return b.String()
}

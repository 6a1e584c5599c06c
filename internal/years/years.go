// Package years converts between calendar years and academic-year
// identifiers. An academic year spans two calendar years and is
// identified by the two-digit suffixes of both, joined by an
// underscore: 1999 becomes "99_00".
package years

import (
	"fmt"
	"path"
	"regexp"
	"strconv"
)

// idPattern matches a well-formed academic-year identifier.
var idPattern = regexp.MustCompile(`^\d{2}_\d{2}$`)

// centuryPivot decides which century a two-digit year belongs to.
// Suffixes 40-99 resolve to the 1900s, 00-39 to the 2000s.
const centuryPivot = 40

// ID returns the academic-year identifier for the year starting in
// the given calendar year.
func ID(year int) string {
	return fmt.Sprintf("%02d_%02d", year%100, (year+1)%100)
}

// FromID resolves an academic-year identifier back to its starting
// calendar year. Identifiers not matching the two-digit-underscore
// pattern are rejected.
func FromID(id string) (int, error) {
	if !idPattern.MatchString(id) {
		return 0, fmt.Errorf("invalid academic year id %q", id)
	}
	suffix, err := strconv.Atoi(id[:2])
	if err != nil {
		return 0, fmt.Errorf("invalid academic year id %q: %w", id, err)
	}
	if suffix >= centuryPivot {
		return 1900 + suffix, nil
	}
	return 2000 + suffix, nil
}

// Valid reports whether id is a well-formed academic-year identifier.
func Valid(id string) bool {
	_, err := FromID(id)
	return err == nil
}

// Title formats a year for display, e.g. 1999 becomes "1999-00".
func Title(year int) string {
	return fmt.Sprintf("%d-%02d", year, (year+1)%100)
}

// Decade returns the three-digit decade label for a year, matching
// the year display format: 1995 becomes 199.
func Decade(year int) int {
	return year / 10
}

// IDFromDocID extracts the academic-year identifier from a show
// document id, which nests show documents under their year directory
// ("73_74/the_country_wife" yields "73_74").
func IDFromDocID(docID string) string {
	return path.Dir(docID)
}

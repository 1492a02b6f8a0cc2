// Package normalize turns free-text recipe names into canonical display names.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hammamikhairi/cookbook/internal/domain"
)

// Whitespace covers ASCII \s, vertical tab, every Unicode separator (Zs, Zl,
// Zp) and U+FEFF, not just RE2's ASCII \s.
var (
	separators = regexp.MustCompile(`[-_]`)
	disallowed = regexp.MustCompile(`[^a-zA-Z\s\v\p{Z}\x{FEFF}]`)
	whitespace = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}]+`)
)

// Name cleans a handwritten recipe name: hyphens and underscores become
// spaces, anything other than ASCII letters and whitespace is dropped,
// whitespace runs collapse to one space, and every word is title-cased.
// It returns domain.ErrNotRepresentable when nothing is left.
func Name(raw string) (string, error) {
	s := separators.ReplaceAllString(raw, " ")
	s = disallowed.ReplaceAllString(s, "")
	s = strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
	if s == "" {
		return "", domain.ErrNotRepresentable
	}

	// Casers keep state, so one per call.
	return cases.Title(language.Und).String(s), nil
}

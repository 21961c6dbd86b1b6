package ingest

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// refineCasing repairs shouty or flattened input ("MASTER OF PUPPETS",
// "master of puppets") by title-casing it. Mixed-case input is assumed
// intentional and passes through untouched.
func refineCasing(s string) string {
	if s == "" {
		return s
	}
	hasUpper := strings.IndexFunc(s, unicode.IsUpper) >= 0
	hasLower := strings.IndexFunc(s, unicode.IsLower) >= 0
	if hasUpper && hasLower {
		return s
	}
	return titleCaser.String(s)
}

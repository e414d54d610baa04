package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// foldCaser performs a locale-independent (Un-qualified, i.e. "root locale")
// case fold, matching the spec's "lowercase (locale-independent ASCII
// fold)" requirement for identifier normalization.
var foldCaser = cases.Fold()

var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// Identifier implements the normalization algorithm of spec §4.3:
//
//  1. Trim whitespace.
//  2. Lowercase (locale-independent ASCII fold).
//  3. Strip a trailing ".md" (case-insensitive).
//  4. Replace every maximal run of characters outside [a-z0-9] with "-".
//  5. Collapse runs of "-".
//  6. Strip leading/trailing "-".
//
// The result may be empty. Non-ASCII alphanumerics are folded away by step
// 4 — this is a deliberate, lossy, and NEVER-to-be-silently-changed
// behavior (see spec §9 Open Questions).
func Identifier(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(foldCaser.String(s))

	if strings.HasSuffix(s, ".md") {
		s = s[:len(s)-3]
	}

	s = nonAlnumRun.ReplaceAllString(s, "-")
	s = collapseDashes(s)
	s = strings.Trim(s, "-")
	return s
}

func collapseDashes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevDash := false
	for _, r := range s {
		if r == '-' {
			if prevDash {
				continue
			}
			prevDash = true
		} else {
			prevDash = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cutoff

import (
	"strings"
	"unicode"
)

// knownCategories is the closed vocabulary of reservation category codes that
// appear as column headings in the cutoff reports, in report column order.
var knownCategories = [...]string{
	"GM", "GMK", "GMR", "SCG", "SCK", "SCR", "STG", "STK", "STR",
	"1G", "1K", "1R", "2AG", "2AK", "2AR", "2BG", "2BK", "2BR",
	"3AG", "3AK", "3AR", "3BG", "3BK", "3BR",
}

var categorySet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(knownCategories))
	for _, c := range knownCategories {
		m[c] = struct{}{}
	}
	return m
}()

// Categories returns a copy of the known category codes in column order.
func Categories() []string {
	out := make([]string, len(knownCategories))
	copy(out, knownCategories[:])
	return out
}

// LookupCategory normalizes tok (trimmed, upper-cased) and reports whether it
// is a known category code.
func LookupCategory(tok string) (string, bool) {
	c := strings.ToUpper(strings.TrimSpace(tok))
	if _, ok := categorySet[c]; !ok {
		return "", false
	}
	return c, true
}

// CleanRank strips every non-digit character from tok. It reports false when
// nothing is left.
func CleanRank(tok string) (string, bool) {
	var b strings.Builder
	for _, r := range tok {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "", false
	}
	return b.String(), true
}

// isNumeric reports whether tok is non-empty and made only of digits.
func isNumeric(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// hasDigit reports whether s contains at least one digit.
func hasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

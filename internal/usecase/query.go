package usecase

import (
	"regexp"
	"strings"
)

var multiSpacePattern = regexp.MustCompile(`\s+`)

// NormalizeQuery trims the query and collapses inner whitespace runs to one space.
// An all-whitespace query normalizes to "".
func NormalizeQuery(query string) string {
	return strings.TrimSpace(multiSpacePattern.ReplaceAllString(query, " "))
}

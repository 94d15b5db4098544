// Package sqlnorm prepares raw SQL text for a reference parser:
// comments off, whitespace collapsed, trailing terminator dropped.
package sqlnorm

import (
	"regexp"
	"strings"
)

// Pre-compiled regexes for performance
var (
	lineCommentRegex = regexp.MustCompile(`(?m)(--|#)[^\n]*`)
	whitespaceRegex  = regexp.MustCompile(`\s+`)
)

// Clean normalizes one query's text: line comments (`--`, `#`) are
// stripped, runs of whitespace collapse to a single space, and a
// trailing semicolon is removed.
func Clean(query string) string {
	query = lineCommentRegex.ReplaceAllString(query, "")
	query = whitespaceRegex.ReplaceAllString(query, " ")
	query = strings.TrimSpace(query)
	query = strings.TrimSuffix(query, ";")
	return strings.TrimSpace(query)
}

// Package query holds small helpers for list endpoints.
package query

import "strings"

const DefaultLimit = 100

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Contains turns free text into an ILIKE pattern that matches it as a literal substring.
func Contains(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}

// Limit applies DefaultLimit when limit is unset.
func Limit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}

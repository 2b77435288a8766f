package responder

import "strings"

// Normalize lowercases a question and trims surrounding whitespace so
// matching is case-insensitive. An empty question stays empty.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Package utils provides tiny generic helpers shared across layers. Nothing
// in here knows about providers, quotes, or inquiries.
package utils

import "strconv"

// AtoiDefault parses s as an int, returning def when s is empty or not a
// valid integer. Used for lenient query-parameter parsing (page, page_size).
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

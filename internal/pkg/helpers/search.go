package helpers

import "strings"

// MatchesQuery reports whether the case-insensitive query is a
// substring of at least one of the given fields. An empty query
// matches everything.
func MatchesQuery(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Filter returns the elements of items whose searchable fields contain
// the query. fields extracts the searched fields from an element.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	if strings.TrimSpace(query) == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if MatchesQuery(query, fields(it)...) {
			out = append(out, it)
		}
	}
	return out
}

// Page slices one 1-based page out of items.
func Page[T any](items []T, page, size int) []T {
	start, end := SliceIndices(page, size, len(items))
	return items[start:end]
}

package dashboard

import "strings"

// Filter narrows a resource list with a case-insensitive substring search
// over the given text fields, optionally combined with an exact category
// match. With an empty term and an empty category the input comes back
// unchanged, in its original order.
func Filter[T any](items []T, term string, fields func(T) []string, category string, categoryOf func(T) string) []T {
	if term == "" && category == "" {
		return items
	}

	needle := strings.ToLower(strings.TrimSpace(term))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if category != "" && categoryOf != nil && categoryOf(item) != category {
			continue
		}
		if needle != "" && !matchesTerm(fields(item), needle) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesTerm(fields []string, needle string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

package dashboard

import (
	"sort"
	"strings"
	"time"
)

// SortByString stably sorts items in place by a case-insensitive string key.
// A row without a key compares equal to every other row, so it keeps its
// prior relative position.
func SortByString[T any](items []T, key func(T) string, descending bool) {
	sort.SliceStable(items, func(i, j int) bool {
		a := strings.ToLower(key(items[i]))
		b := strings.ToLower(key(items[j]))
		if a == "" || b == "" {
			return false
		}
		if descending {
			return a > b
		}
		return a < b
	})
}

// SortByTime stably sorts items in place by an optional time key. A row
// without a key compares equal to every other row, so it keeps its prior
// relative position.
func SortByTime[T any](items []T, key func(T) *time.Time, descending bool) {
	sort.SliceStable(items, func(i, j int) bool {
		a := key(items[i])
		b := key(items[j])
		if a == nil || b == nil {
			return false
		}
		if descending {
			return a.After(*b)
		}
		return a.Before(*b)
	})
}

// Package util provides shared utility functions used across the application.
package util

// Unique returns the elements of items with exact duplicates removed,
// keeping the first occurrence of each value in its original position.
// The input is never modified. Applying Unique to its own output returns
// an equal slice.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, v := range items {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

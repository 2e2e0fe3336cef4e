// This file implements the merge-walk set operations over ascending,
// deduplicated []core.InstanceID slices.
package ordset

import (
	"sort"

	"github.com/katalvlaran/colomine/core"
)

// IntersectionSize counts the elements common to a and b.
// Precondition: both slices strictly ascending, no duplicates.
// Complexity: O(|a|+|b|).
func IntersectionSize(a, b []core.InstanceID) int {
	var n, i, j int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case b[j] < a[i]:
			j++
		default:
			n++
			i++
			j++
		}
	}

	return n
}

// Intersect returns a fresh slice holding the elements present in both a
// and b, in ascending order. Complexity: O(|a|+|b|).
func Intersect(a, b []core.InstanceID) []core.InstanceID {
	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}
	out := make([]core.InstanceID, 0, limit)

	var i, j int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case b[j] < a[i]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}

// Difference returns a fresh slice holding the elements of a that are not
// in b, in ascending order. Complexity: O(|a|+|b|).
func Difference(a, b []core.InstanceID) []core.InstanceID {
	out := make([]core.InstanceID, 0, len(a))

	var i, j int
	for i < len(a) {
		switch {
		case j >= len(b) || a[i] < b[j]:
			out = append(out, a[i])
			i++
		case b[j] < a[i]:
			j++
		default: // a[i] == b[j]
			i++
			j++
		}
	}

	return out
}

// Contains reports whether v is present in the ascending slice s.
// Complexity: O(log |s|).
func Contains(s []core.InstanceID, v core.InstanceID) bool {
	i := search(s, v)

	return i < len(s) && s[i] == v
}

// Insert places v into the ascending slice s, keeping order. Inserting an
// element already present is a no-op. Returns the updated slice.
// Complexity: O(|s|) worst case (shift), O(log |s|) search.
func Insert(s []core.InstanceID, v core.InstanceID) []core.InstanceID {
	i := search(s, v)
	if i < len(s) && s[i] == v {
		return s
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v

	return s
}

// Remove deletes v from the ascending slice s, keeping order. Removing an
// absent element is a no-op. Returns the updated slice.
// Complexity: O(|s|) worst case (shift), O(log |s|) search.
func Remove(s []core.InstanceID, v core.InstanceID) []core.InstanceID {
	i := search(s, v)
	if i >= len(s) || s[i] != v {
		return s
	}

	return append(s[:i], s[i+1:]...)
}

// search returns the insertion point for v in the ascending slice s.
func search(s []core.InstanceID, v core.InstanceID) int {
	return sort.Search(len(s), func(i int) bool { return s[i] >= v })
}

// Package sequence normalizes arbitrary input sequences into the ascending,
// duplicate-free form expected by the tree builders of this module.
//
// All functions in this package are pure: they never modify the slices passed
// as arguments and always return newly allocated slices.
package sequence

import (
	"golang.org/x/exp/constraints"

	"github.com/Rattlehead90/binary-search-tree/compare"
)

// Normalize returns the distinct values of the input in ascending order
// according to the comparison function.
//
// Complexity: O(n log n)
func Normalize[T any](values []T, cmp compare.Func[T]) []T {
	return Unique(MergeSort(values, cmp), cmp)
}

// NormalizeOrdered is like Normalize for types with a natural ordering.
func NormalizeOrdered[T constraints.Ordered](values []T) []T {
	return Normalize(values, compare.Function[T])
}

// MergeSort returns a sorted copy of values. The sort is stable: when two
// values compare equal, the one that appeared first in the input comes first
// in the output.
//
// Complexity: O(n log n)
func MergeSort[T any](values []T, cmp compare.Func[T]) []T {
	if len(values) < 2 {
		return append(make([]T, 0, len(values)), values...)
	}
	mid := len(values) / 2
	return merge(MergeSort(values[:mid], cmp), MergeSort(values[mid:], cmp), cmp)
}

func merge[T any](a, b []T, cmp compare.Func[T]) []T {
	sorted := make([]T, 0, len(a)+len(b))
	for len(a) > 0 && len(b) > 0 {
		if cmp(b[0], a[0]) < 0 {
			sorted, b = append(sorted, b[0]), b[1:]
		} else {
			sorted, a = append(sorted, a[0]), a[1:]
		}
	}
	sorted = append(sorted, a...)
	return append(sorted, b...)
}

// Unique collapses runs of equal values of a sorted slice, keeping the first
// value of each run.
//
// Complexity: O(n)
func Unique[T any](sorted []T, cmp compare.Func[T]) []T {
	unique := make([]T, 0, len(sorted))
	for i, v := range sorted {
		if i == 0 || cmp(unique[len(unique)-1], v) != 0 {
			unique = append(unique, v)
		}
	}
	return unique
}

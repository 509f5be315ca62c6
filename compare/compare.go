// Package compare provides the ordering functions used by the containers of
// this module.
package compare

import "golang.org/x/exp/constraints"

// Func is the signature of comparison functions. The result is negative when a
// orders before b, positive when a orders after b, and zero when both values
// are equivalent.
type Func[T any] func(a, b T) int

// Function is a comparison function for ordered types.
func Function[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Less adapts a comparison function into a strict "less than" predicate.
func Less[T any](cmp Func[T]) func(a, b T) bool {
	return func(a, b T) bool { return cmp(a, b) < 0 }
}

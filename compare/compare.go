// Package compare provides the comparators the sort package is built and
// tested against. Every function here returns a cmpsort.Comparator.
package compare

import (
	"golang.org/x/exp/constraints"

	"github.com/exascience/cmpsort"
)

func isNaN[T constraints.Ordered](x T) bool {
	return x != x
}

// Ascending orders values from small to large. For floating-point types,
// NaN sorts before any other value and compares equal to NaN, so that
// the ordering stays consistent.
func Ascending[T constraints.Ordered](a, b T) int {
	aNaN, bNaN := isNaN(a), isNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Descending orders values from large to small. NaN still sorts first.
func Descending[T constraints.Ordered](a, b T) int {
	aNaN, bNaN := isNaN(a), isNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	}
	return Ascending(b, a)
}

// By orders values by a key extracted from each of them.
func By[T, K any](key func(T) K, cmp cmpsort.Comparator[K]) cmpsort.Comparator[T] {
	return func(a, b T) int {
		return cmp(key(a), key(b))
	}
}

// Flip swaps the arguments of cmp, which reverses the order it defines.
// Ties stay ties, so a stable sort keeps equal elements in input order
// under both cmp and Flip(cmp).
func Flip[T any](cmp cmpsort.Comparator[T]) cmpsort.Comparator[T] {
	return func(a, b T) int {
		return cmp(b, a)
	}
}

// Preserve reports every pair as equal. A stable sort leaves its input
// untouched under this comparator.
func Preserve[T any]() cmpsort.Comparator[T] {
	return func(T, T) int {
		return 0
	}
}

/*
Package sort provides in-place sorting algorithms driven by a
cmpsort.Comparator.

InsertionSort, MergeSort, TimSort and GallopSort are stable. QuickSort
is not. Sort picks the platform sort when a stability probe shows that
it is stable, and a stable fallback otherwise, so Sort is always stable.

All algorithms only swap or move elements that are already in the
slice. If the comparator panics, the panic propagates to the caller and
the slice still holds the same elements, in some order.
*/
package sort

import (
	"slices"

	logger "github.com/multiversx/mx-chain-logger-go"

	"github.com/exascience/cmpsort"
	"github.com/exascience/cmpsort/compare"
	"github.com/exascience/cmpsort/sequential"
)

var log = logger.GetOrCreate("cmpsort/sort")

const checkGrainSize = 0x1000

func isSortedRange[T any](s []T, low, high int, cmp cmpsort.Comparator[T]) bool {
	for i := low; i < high; i++ {
		if cmp(s[i], s[i-1]) < 0 {
			return false
		}
	}
	return true
}

/*
IsSorted reports whether no element of s compares less than its left
neighbour. It scans from left to right on the calling goroutine and stops
at the first out-of-order pair, so cmp is never called concurrently and a
panic in cmp reaches the caller unchanged.
*/
func IsSorted[T any](s []T, cmp cmpsort.Comparator[T]) bool {
	if len(s) < 2 {
		return true
	}
	return sequential.RangeAnd(1, len(s), 0, checkGrainSize, func(low, high int) bool {
		return isSortedRange(s, low, high, cmp)
	})
}

// Native sorts s with the platform sort, slices.SortFunc. It is fast but
// not guaranteed to be stable.
func Native[T any](s []T, cmp cmpsort.Comparator[T]) []T {
	slices.SortFunc(s, cmp)
	return s
}

// Ints sorts a slice of ints in increasing order, stably.
func Ints(a []int) {
	Sort(a, compare.Ascending[int])
}

// IntsAreSorted reports whether a is sorted in increasing order.
func IntsAreSorted(a []int) bool {
	return IsSorted(a, compare.Ascending[int])
}

// Float64s sorts a slice of float64s in increasing order, stably. NaN
// values are placed before all other values.
func Float64s(a []float64) {
	Sort(a, compare.Ascending[float64])
}

// Float64sAreSorted reports whether a is sorted in increasing order, with
// NaN values first.
func Float64sAreSorted(a []float64) bool {
	return IsSorted(a, compare.Ascending[float64])
}

// Strings sorts a slice of strings in increasing order, stably.
func Strings(a []string) {
	Sort(a, compare.Ascending[string])
}

// StringsAreSorted reports whether a is sorted in increasing order.
func StringsAreSorted(a []string) bool {
	return IsSorted(a, compare.Ascending[string])
}

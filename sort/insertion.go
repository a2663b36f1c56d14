package sort

import "github.com/exascience/cmpsort"

// InsertionSort sorts the inclusive range s[lo..hi] by moving each
// element left, one swap at a time, while it compares less than its
// neighbour. It is stable and leaves the rest of s untouched. A range
// with lo >= hi needs no work.
func InsertionSort[T any](s []T, lo, hi int, cmp cmpsort.Comparator[T]) {
	for i := lo + 1; i <= hi; i++ {
		for j := i; j > lo && cmp(s[j], s[j-1]) < 0; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

// Insertion sorts all of s with InsertionSort.
func Insertion[T any](s []T, cmp cmpsort.Comparator[T]) []T {
	InsertionSort(s, 0, len(s)-1, cmp)
	return s
}

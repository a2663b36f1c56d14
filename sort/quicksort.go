package sort

import "github.com/exascience/cmpsort"

// QuickSortCutoff is the default range length below which QuickSort
// switches to insertion sort.
const QuickSortCutoff = 12

// medianOfThree sorts s[l], s[m] and s[r] in place, leaving their median
// in s[m].
func medianOfThree[T any](s []T, l, m, r int, cmp cmpsort.Comparator[T]) {
	if cmp(s[m], s[l]) < 0 {
		s[l], s[m] = s[m], s[l]
	}
	if cmp(s[r], s[m]) < 0 {
		s[m], s[r] = s[r], s[m]
		if cmp(s[m], s[l]) < 0 {
			s[l], s[m] = s[m], s[l]
		}
	}
}

// partition3 partitions s[lo..hi] around a median-of-three pivot in one
// pass. On return s[lo:lt] < pivot, s[lt..gt] == pivot and
// s[gt+1..hi] > pivot.
func partition3[T any](s []T, lo, hi int, cmp cmpsort.Comparator[T]) (lt, gt int) {
	mid := int(uint(lo+hi) >> 1)
	medianOfThree(s, lo, mid, hi, cmp)
	s[lo], s[mid] = s[mid], s[lo]
	pivot := s[lo]

	lt, gt = lo, hi
	for i := lo + 1; i <= gt; {
		switch c := cmp(s[i], pivot); {
		case c < 0:
			s[lt], s[i] = s[i], s[lt]
			lt++
			i++
		case c > 0:
			s[i], s[gt] = s[gt], s[i]
			gt--
		default:
			i++
		}
	}
	return lt, gt
}

func quickSort[T any](s []T, lo, hi int, cmp cmpsort.Comparator[T], cutoff int) {
	for hi-lo+1 >= cutoff {
		lt, gt := partition3(s, lo, hi, cmp)
		// Recurse into the smaller side and loop on the larger one, so
		// the stack stays logarithmic.
		if lt-lo < hi-gt {
			quickSort(s, lo, lt-1, cmp, cutoff)
			lo = gt + 1
		} else {
			quickSort(s, gt+1, hi, cmp, cutoff)
			hi = lt - 1
		}
	}
	InsertionSort(s, lo, hi, cmp)
}

/*
QuickSort sorts s in place with a three-way quicksort. It is not stable.

Partitioning into less, equal and greater zones keeps it fast on inputs
with many duplicates, and the median-of-three pivot avoids quadratic
behaviour on sorted and reverse-sorted inputs. A slice that is already
sorted is left untouched.
*/
func QuickSort[T any](s []T, cmp cmpsort.Comparator[T]) []T {
	return QuickSortWith(s, cmp, QuickSortCutoff)
}

// QuickSortWith is QuickSort with a caller-chosen insertion sort cutoff.
// Cutoffs below 2 behave like 2.
func QuickSortWith[T any](s []T, cmp cmpsort.Comparator[T], cutoff int) []T {
	if cutoff < 2 {
		cutoff = 2
	}
	if len(s) < 2 || IsSorted(s, cmp) {
		return s
	}
	quickSort(s, 0, len(s)-1, cmp, cutoff)
	return s
}

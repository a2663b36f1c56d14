package sort

import "github.com/exascience/cmpsort"

// MergeSortCutoff is the range length below which MergeSort switches to
// insertion sort.
const MergeSortCutoff = 12

// MergeSort sorts s in place. It is stable and needs no auxiliary slice:
// sorted halves are merged by rotating blocks into position.
//
// MergeSort is the safe fallback when the platform sort is not stable.
// It performs more moves than TimSort, but allocates nothing.
func MergeSort[T any](s []T, cmp cmpsort.Comparator[T]) []T {
	mergeSort(s, 0, len(s), cmp)
	return s
}

func mergeSort[T any](s []T, lo, hi int, cmp cmpsort.Comparator[T]) {
	if hi-lo < MergeSortCutoff {
		InsertionSort(s, lo, hi-1, cmp)
		return
	}
	mid := int(uint(lo+hi) >> 1)
	mergeSort(s, lo, mid, cmp)
	mergeSort(s, mid, hi, cmp)
	MergeInPlace(s, lo, mid, hi, cmp)
}

// MergeInPlace merges the sorted ranges s[lo:mid] and s[mid:hi] into a
// sorted s[lo:hi], stably and without an auxiliary slice. Empty or
// inverted ranges need no work.
func MergeInPlace[T any](s []T, lo, mid, hi int, cmp cmpsort.Comparator[T]) {
	n1, n2 := mid-lo, hi-mid
	if n1 <= 0 || n2 <= 0 {
		return
	}
	if n1+n2 == 2 {
		if cmp(s[mid], s[lo]) < 0 {
			s[lo], s[mid] = s[mid], s[lo]
		}
		return
	}
	if cmp(s[mid-1], s[mid]) <= 0 {
		return
	}

	// Bisect the longer run and find the matching split point in the
	// other one. Everything in s[cut1:mid] then sorts strictly after
	// everything in s[mid:cut2], so swapping the two blocks keeps ties
	// in input order.
	var cut1, cut2 int
	if n1 > n2 {
		cut1 = lo + n1/2
		cut2 = lowerBound(s, mid, hi, s[cut1], cmp)
	} else {
		cut2 = mid + n2/2
		cut1 = upperBound(s, lo, mid, s[cut2], cmp)
	}
	rotate(s, cut1, mid, cut2)
	newMid := cut1 + (cut2 - mid)
	MergeInPlace(s, lo, cut1, newMid, cmp)
	MergeInPlace(s, newMid, cut2, hi, cmp)
}

// lowerBound returns the first index in [lo, hi) whose element does not
// compare less than key, or hi.
func lowerBound[T any](s []T, lo, hi int, key T, cmp cmpsort.Comparator[T]) int {
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		if cmp(s[m], key) < 0 {
			lo = m + 1
		} else {
			hi = m
		}
	}
	return lo
}

// upperBound returns the first index in [lo, hi) whose element compares
// greater than key, or hi.
func upperBound[T any](s []T, lo, hi int, key T, cmp cmpsort.Comparator[T]) int {
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		if cmp(s[m], key) <= 0 {
			lo = m + 1
		} else {
			hi = m
		}
	}
	return lo
}

// rotate turns s[first:last] so that s[middle] becomes s[first], moving
// each element once along the gcd(n, k) cycles of the permutation.
func rotate[T any](s []T, first, middle, last int) {
	n, k := last-first, middle-first
	if k <= 0 || k >= n {
		return
	}
	for start, cycles := 0, gcd(n, k); start < cycles; start++ {
		tmp := s[first+start]
		i := start
		for {
			j := i + k
			if j >= n {
				j -= n
			}
			if j == start {
				break
			}
			s[first+i] = s[first+j]
			i = j
		}
		s[first+i] = tmp
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

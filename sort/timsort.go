package sort

import "github.com/exascience/cmpsort"

const (
	// MinMerge is the length below which TimSort sorts the whole slice
	// as a single run.
	MinMerge = 32

	// MinGallop is the default number of consecutive wins by one run
	// after which GallopMerge switches to galloping.
	MinGallop = 7
)

// MinRunLength returns the run length TimSort uses for a slice of length
// n. For n < MinMerge this is n. Otherwise it lies in [MinMerge/2,
// MinMerge], chosen so that n/MinRunLength(n) is a power of two or just
// below one, which keeps the merge passes balanced.
func MinRunLength(n int) int {
	r := 0
	for n >= MinMerge {
		r |= n & 1
		n >>= 1
	}
	return n + r
}

// MergeBuffer holds the scratch space for Merge and GallopMerge. It grows
// to the largest pair of runs it has seen and is reused afterwards. A
// MergeBuffer must not be used by more than one merge at a time.
type MergeBuffer[T any] struct {
	left, right []T
}

func (b *MergeBuffer[T]) load(s []T, lo, mid, hi int) (left, right []T) {
	if n := mid - lo; cap(b.left) < n {
		b.left = make([]T, n)
	}
	if n := hi - mid; cap(b.right) < n {
		b.right = make([]T, n)
	}
	left, right = b.left[:mid-lo], b.right[:hi-mid]
	copy(left, s[lo:mid])
	copy(right, s[mid:hi])
	return
}

// Release drops the scratch space, so that the buffer no longer keeps
// copied elements reachable.
func (b *MergeBuffer[T]) Release() {
	b.left, b.right = nil, nil
}

// flush writes what is left of both runs back to s, starting at k. After a
// complete merge at most one of them is non-empty and already in order.
// After a comparator panic this keeps s a permutation of its input.
func flush[T any](s []T, k int, left, right []T) {
	k += copy(s[k:], left)
	copy(s[k:], right)
}

// Merge merges the sorted runs s[lo:mid] and s[mid:hi] into a sorted
// s[lo:hi], stably. Both runs are copied into buf first, and merged back
// with two cursors. If the last element of the left run does not compare
// greater than the first element of the right run, nothing is done. A nil
// buf allocates scratch space for this call only.
func Merge[T any](s []T, lo, mid, hi int, cmp cmpsort.Comparator[T], buf *MergeBuffer[T]) {
	if lo >= mid || mid >= hi || cmp(s[mid-1], s[mid]) <= 0 {
		return
	}
	if buf == nil {
		buf = new(MergeBuffer[T])
	}
	left, right := buf.load(s, lo, mid, hi)
	i, j, k := 0, 0, lo
	defer func() { flush(s, k, left[i:], right[j:]) }()
	for i < len(left) && j < len(right) {
		if cmp(right[j], left[i]) < 0 {
			s[k] = right[j]
			j++
		} else {
			s[k] = left[i]
			i++
		}
		k++
	}
}

// GallopMerge merges like Merge, but once one run has supplied minGallop
// elements in a row, it stops comparing element by element: it searches
// the winning run for the end of the stretch that still sorts before the
// other run's head, copies that stretch in one go, and then resumes
// ordinary merging. A minGallop of 0 or less behaves like Merge.
func GallopMerge[T any](s []T, lo, mid, hi int, cmp cmpsort.Comparator[T], buf *MergeBuffer[T], minGallop int) {
	if minGallop <= 0 {
		Merge(s, lo, mid, hi, cmp, buf)
		return
	}
	if lo >= mid || mid >= hi || cmp(s[mid-1], s[mid]) <= 0 {
		return
	}
	if buf == nil {
		buf = new(MergeBuffer[T])
	}
	left, right := buf.load(s, lo, mid, hi)
	i, j, k := 0, 0, lo
	defer func() { flush(s, k, left[i:], right[j:]) }()
	leftWins, rightWins := 0, 0
	for i < len(left) && j < len(right) {
		if cmp(right[j], left[i]) < 0 {
			s[k] = right[j]
			j++
			k++
			leftWins, rightWins = 0, rightWins+1
			if rightWins >= minGallop && j < len(right) {
				end := gallopLower(left[i], right, j, cmp)
				k += copy(s[k:], right[j:end])
				j = end
				rightWins = 0
			}
		} else {
			s[k] = left[i]
			i++
			k++
			leftWins, rightWins = leftWins+1, 0
			if leftWins >= minGallop && i < len(left) {
				end := gallopUpper(right[j], left, i, cmp)
				k += copy(s[k:], left[i:end])
				i = end
				leftWins = 0
			}
		}
	}
}

// TimSorter sorts by insertion-sorting runs of MinRunLength(n) elements
// and merging neighbouring runs in passes of doubling width. It keeps its
// MergeBuffer between calls, so a TimSorter must not be shared by
// concurrent sorts.
type TimSorter[T any] struct {
	// MinGallop is passed to GallopMerge. Zero selects the plain Merge.
	MinGallop int

	buf MergeBuffer[T]
}

// Sort implements cmpsort.Sorter.
func (ts *TimSorter[T]) Sort(s []T, cmp cmpsort.Comparator[T]) []T {
	n := len(s)
	if n < 2 {
		return s
	}
	minRun := MinRunLength(n)
	for lo := 0; lo < n; lo += minRun {
		InsertionSort(s, lo, min(lo+minRun, n)-1, cmp)
	}
	for size := minRun; size < n; size *= 2 {
		for lo := 0; lo < n-size; lo += 2 * size {
			GallopMerge(s, lo, lo+size, min(lo+2*size, n), cmp, &ts.buf, ts.MinGallop)
		}
	}
	return s
}

// TimSort sorts s in place with a TimSorter using the plain Merge. It is
// stable and allocates scratch space for at most the largest pair of runs.
func TimSort[T any](s []T, cmp cmpsort.Comparator[T]) []T {
	return new(TimSorter[T]).Sort(s, cmp)
}

// GallopSort sorts s in place with a TimSorter using GallopMerge with the
// default MinGallop threshold. It is stable, and needs far fewer
// comparisons than TimSort when runs interleave in long stretches.
func GallopSort[T any](s []T, cmp cmpsort.Comparator[T]) []T {
	ts := TimSorter[T]{MinGallop: MinGallop}
	return ts.Sort(s, cmp)
}

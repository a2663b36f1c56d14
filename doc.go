// Package cmpsort provides comparator-driven, in-place sorting algorithms
// for Go slices, and the types they share.
//
// A Comparator is a plain function of two values returning a signed int,
// in the manner of cmp.Compare. Every algorithm accepts any Comparator,
// including ones that report ties for everything, and never loses or
// duplicates elements, even when the comparator panics halfway through.
//
// Cmpsort provides the following subpackages:
//
// cmpsort/sort provides insertion sort, an in-place stable merge sort, an
// adaptive run-based stable sort with an optional galloping merge, a
// three-way quicksort, and a stability probe that decides whether the
// platform sort can stand in for a stable sort.
//
// cmpsort/compare provides the handful of comparators the sort package
// and its tests rely on.
//
// cmpsort/config holds the tunables of the sort package and loads them
// from TOML.
//
// cmpsort/parallel, cmpsort/speculative and cmpsort/sequential run
// thunks and predicates in parallel, in parallel with early termination,
// or one after the other. The sort package uses them for the stability
// probe and for batching sortedness checks on the calling goroutine.
package cmpsort

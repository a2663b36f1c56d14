// Package sequential provides sequential implementations of the
// functions provided by the speculative package. The sort package uses
// them when a deterministic, single-goroutine run is wanted, for example
// for the stability probe under the default configuration.
package sequential

import (
	"fmt"

	"github.com/exascience/cmpsort"
	"github.com/exascience/cmpsort/internal"
)

// And receives zero or more predicate functions and executes them
// sequentially, left to right, stopping at the first one that returns
// false. It returns true if there are no predicates.
func And(predicates ...cmpsort.Predicate) bool {
	for _, predicate := range predicates {
		if !predicate() {
			return false
		}
	}
	return true
}

// RangeAnd receives a range, a batch count n, a minimum batch size, and a
// range predicate function f, divides the range into batches, and invokes
// the range predicate for each of these batches sequentially, covering
// the half-open interval from low to high, including low but excluding
// high. It stops at the first batch for which f returns false.
//
// The batches are determined by dividing up the size of the range
// (high - low) by n, but never into batches smaller than grain. If n is
// 0, a reasonable default is used that takes runtime.GOMAXPROCS(0) into
// account.
//
// RangeAnd panics if high < low, or if n < 0.
func RangeAnd(low, high, n, grain int, f cmpsort.RangePredicate) bool {
	var recur func(int, int, int) bool
	recur = func(low, high, n int) bool {
		switch {
		case n == 1:
			return f(low, high)
		case n > 1:
			batchSize := ((high - low - 1) / n) + 1
			half := n / 2
			mid := low + batchSize*half
			if mid >= high {
				return f(low, high)
			}
			return recur(low, mid, half) && recur(mid, high, n-half)
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
	}
	return recur(low, high, internal.ComputeNofBatches(low, high, n, grain))
}

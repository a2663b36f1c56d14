// Package internal holds helpers shared by the parallel, speculative and
// sequential packages.
package internal

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
)

// ComputeNofBatches divides the size of the range (high - low) into n batches,
// each covering at least grain elements. If n is 0, a default is used that
// takes runtime.GOMAXPROCS(0) into account. A grain below 1 counts as 1.
func ComputeNofBatches(low, high, n, grain int) (batches int) {
	if grain < 1 {
		grain = 1
	}
	switch size := high - low; {
	case size > 0:
		switch {
		case n == 0:
			batches = 2 * runtime.GOMAXPROCS(0)
		case n > 0:
			batches = n
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
		if limit := (size + grain - 1) / grain; batches > limit {
			batches = limit
		}
	case size == 0:
		batches = 1
	default:
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	return
}

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

// WrapPanic adds stack trace information to a panic recovered in a worker
// goroutine, so the goroutine that re-raises it still shows where the
// comparator originally failed. Runtime errors stay runtime errors.
func WrapPanic(p interface{}) interface{} {
	if p == nil {
		return nil
	}
	s := fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
	if _, isError := p.(error); !isError {
		return s
	}
	r := errors.New(s)
	if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
		return runtimeError{r}
	}
	return r
}

/*
Package speculative provides a parallel conjunction that terminates early
when it can.

And returns false as soon as one of the predicates invoked in parallel
returns false, without waiting for the others.

A panic in a worker goroutine is recovered and re-raised on the invoking
goroutine. However, panics may not propagate in case And terminates early
because the result is already known.

And does not stop predicates that are still running after an early
return. Predicates used here should be side-effect free apart from work
on their own private data, such as a copy of a slice being sorted.
*/
package speculative

import (
	"sync"

	"github.com/exascience/cmpsort"
	"github.com/exascience/cmpsort/internal"
)

/*
And receives zero or more Predicate functions and executes them in
parallel.

Each predicate is invoked in its own goroutine, and And returns true
if all of them return true; or And returns false when at least one of
them returns false, without waiting for the other predicates to
terminate.

If one or more predicates panic, the corresponding goroutines recover
the panics, and And may eventually panic with the left-most recovered
panic value. If both panics occur and false values are returned, then
the left-most of these events takes precedence.
*/
func And(predicates ...cmpsort.Predicate) bool {
	switch len(predicates) {
	case 0:
		return true
	case 1:
		return predicates[0]()
	}
	half := len(predicates) / 2
	var b1 bool
	var p interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer func() {
			p = internal.WrapPanic(recover())
			wg.Done()
		}()
		b1 = And(predicates[half:]...)
	}()
	if !And(predicates[:half]...) {
		return false
	}
	wg.Wait()
	if p != nil {
		panic(p)
	}
	return b1
}

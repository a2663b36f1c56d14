// Package parallel provides functions for running independent pieces of
// work, such as sorts of separate copies of a slice, in parallel.
package parallel

import (
	"sync"

	"github.com/exascience/cmpsort/internal"
)

// Do receives zero or more thunks and executes them in parallel.
//
// Each thunk is invoked in its own goroutine, and Do returns only
// when all thunks have terminated, returning the left-most error
// value that is different from nil.
//
// If one or more thunks panic, the corresponding goroutines recover
// the panics, and Do eventually panics with the left-most
// recovered panic value, wrapped with the stack of the goroutine
// that raised it.
func Do(thunks ...func() error) (err error) {
	switch len(thunks) {
	case 0:
		return nil
	case 1:
		return thunks[0]()
	}
	var err0, err1 error
	var p interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	half := len(thunks) / 2
	go func() {
		defer func() {
			p = internal.WrapPanic(recover())
			wg.Done()
		}()
		err1 = Do(thunks[half:]...)
	}()
	err0 = Do(thunks[:half]...)
	wg.Wait()
	if p != nil {
		panic(p)
	}
	if err0 != nil {
		err = err0
	} else {
		err = err1
	}
	return
}

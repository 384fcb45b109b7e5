// Package fanout applies one function to a slice of inputs on a fixed pool
// of goroutines. Readiness probes and multi-task deletes both use it.
package fanout

import (
	"context"
	"errors"
	"sync"
)

// Result is the outcome for one input.
type Result[R any] struct {
	Value R
	Err   error
}

// Run applies fn to every item on at most workers goroutines. Results line
// up with items by index.
//
// Once ctx is done, items not yet picked up record ctx.Err() and fn is not
// called for them. Calls already running must watch ctx themselves.
func Run[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	queue := make(chan int)
	var wg sync.WaitGroup
	for range min(max(workers, 1), len(items)) {
		wg.Go(func() {
			for i := range queue {
				if err := ctx.Err(); err != nil {
					results[i].Err = err
					continue
				}
				v, err := fn(ctx, items[i])
				results[i] = Result[R]{Value: v, Err: err}
			}
		})
	}

	for i := range items {
		queue <- i
	}
	close(queue)
	wg.Wait()

	return results
}

// Join returns the failures in results as one error, or nil.
func Join[R any](results []Result[R]) error {
	errs := make([]error, 0, len(results))
	for _, r := range results {
		errs = append(errs, r.Err)
	}
	return errors.Join(errs...)
}

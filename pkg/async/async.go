package async

import (
	"context"
	"fmt"
	"sync"
)

// Future represents the eventual result of a function started with Go.
type Future[U any] struct {
	result U
	err    error
	once   sync.Once
	done   chan struct{}
}

// Go runs fn in its own goroutine and returns a Future for its result.
// A panic inside fn is recovered and reported through the Future as ErrPanic.
func Go[U any](ctx context.Context, fn func(context.Context) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.complete(*new(U), fmt.Errorf("%w: %v", ErrPanic, r))
			}
		}()

		res, err := fn(ctx)
		f.complete(res, err)
	}()

	return f
}

// Resolved returns a Future that is already complete with the given value.
func Resolved[U any](v U) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}
	f.complete(v, nil)
	close(f.done)
	return f
}

func (f *Future[U]) complete(res U, err error) {
	f.once.Do(func() {
		f.result = res
		f.err = err
	})
}

// Await blocks until the future completes and returns its result.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// Done returns a channel closed once the future completes.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// IsComplete reports whether the future has completed without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Result pairs the outcome of a single future.
type Result[U any] struct {
	Value U
	Err   error
}

// All waits for every future to complete and returns their outcomes in the
// order the futures were given. It never stops early: a slow or failing
// future delays the join but never hides the others' results.
func All[U any](futures ...*Future[U]) []Result[U] {
	results := make([]Result[U], len(futures))
	for i, future := range futures {
		v, err := future.Await()
		results[i] = Result[U]{Value: v, Err: err}
	}
	return results
}

// Collect runs fn for every item concurrently and joins on all of them.
func Collect[T any, U any](ctx context.Context, items []T, fn func(context.Context, T) (U, error)) []Result[U] {
	futures := make([]*Future[U], len(items))
	for i, item := range items {
		futures[i] = Go(ctx, func(ctx context.Context) (U, error) {
			return fn(ctx, item)
		})
	}
	return All(futures...)
}

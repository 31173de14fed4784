package scheduler

import (
	"context"
)

type Work[T any] func(ctx context.Context) (T, error)

type Result[T any] struct {
	Data T
	Err  error
}

type Future[T any] struct {
	input  chan Result[T]
	cancel context.CancelFunc
}

func NewFuture[T any](input chan Result[T], cancel context.CancelFunc) *Future[T] {
	return &Future[T]{
		input:  input,
		cancel: cancel,
	}
}

func (f *Future[T]) C() <-chan Result[T] {
	return f.input
}

// Wait blocks until the work returns or ctx is done. When ctx ends first the
// work is cancelled and ctx's error is returned.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case r := <-f.input:
		f.cancel()
		return r.Data, r.Err
	case <-ctx.Done():
		f.cancel()
		var zero T
		return zero, ctx.Err()
	}
}

func (f *Future[T]) Stop() {
	f.cancel()
}

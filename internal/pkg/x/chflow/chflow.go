// Package chflow provides context-aware helpers for Go channels, including a
// single-shot Promise used to bridge callback-based APIs into a blocking await
// that respects cancellation and deadlines via context.Context.
package chflow

import (
	"context"
	"sync"
)

// Receive waits to receive a value from the provided channel or for the context to be canceled.
// It returns the value (zero value if canceled) and a boolean indicating if the receive was successful.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// outcome is the settled state of a Promise.
type outcome[T any] struct {
	value T
	err   error
}

// Promise is a value that is settled exactly once, either resolved with a value
// or rejected with an error. Settling never blocks, so it is safe to call from
// any goroutine, including SDK callback threads.
//
// Only the first Resolve or Reject takes effect; later calls return false.
type Promise[T any] struct {
	once sync.Once
	ch   chan outcome[T]
}

// NewPromise returns an unsettled Promise.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{ch: make(chan outcome[T], 1)}
}

// Resolve settles the promise with v. It returns false if the promise was already settled.
func (p *Promise[T]) Resolve(v T) bool {
	return p.settle(outcome[T]{value: v})
}

// Reject settles the promise with err. It returns false if the promise was already settled.
func (p *Promise[T]) Reject(err error) bool {
	return p.settle(outcome[T]{err: err})
}

func (p *Promise[T]) settle(o outcome[T]) bool {
	settled := false
	p.once.Do(func() {
		p.ch <- o
		settled = true
	})
	return settled
}

// Await blocks until the promise is settled or ctx is done. When ctx ends first,
// it returns ctx.Err().
//
// Await consumes the settled outcome and must be called at most once.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	o, ok := Receive(ctx, p.ch)
	if !ok {
		var zero T
		return zero, ctx.Err()
	}

	return o.value, o.err
}

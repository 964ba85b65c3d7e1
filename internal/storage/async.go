package storage

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Task is a file operation running in the background. Its result is
// available once Await returns.
type Task[T any] struct {
	g   errgroup.Group
	val T
}

// Go starts fn in its own goroutine.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Task[T] {
	t := &Task[T]{}
	t.g.Go(func() error {
		v, err := fn(ctx)
		t.val = v
		return err
	})
	return t
}

// Await blocks until the task finishes and returns its value or failure.
func (t *Task[T]) Await() (T, error) {
	err := t.g.Wait()
	return t.val, err
}

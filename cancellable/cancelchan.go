package cancellable

import "context"

var _ Chan[uint] = (*cancellableChan[uint])(nil)

// Chan is a Cancellable carrying a buffered channel.
type Chan[T any] interface {
	Cancellable
	UpdatesChan() <-chan T // receiver side
	Ch() chan<- T          // sender side
}

// NewChan for type T with buffer size n (must Cancel)
func NewChan[T any](parent context.Context, n int) Chan[T] {
	ctx, cancel := context.WithCancelCause(parent)
	return &cancellableChan[T]{
		cancellable: newFrom(ctx, cancel),
		ch:          make(chan T, n),
	}
}

type cancellableChan[T any] struct {
	*cancellable
	ch chan T
}

func (c *cancellableChan[T]) UpdatesChan() <-chan T {
	return c.ch
}

func (c *cancellableChan[T]) Ch() chan<- T {
	return c.ch
}

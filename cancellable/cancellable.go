package cancellable

import "context"

// Cancellable is a context.Context that provides a Cancel func.
type Cancellable interface {
	context.Context
	Cancel(err error) // cancel with err as the cause
}

// New cancellable (must Cancel to prevent context leak)
func New(parent context.Context) Cancellable {
	ctx, cancel := context.WithCancelCause(parent)
	return newFrom(ctx, cancel)
}

type cancellable struct {
	context.Context
	cancel context.CancelCauseFunc
}

// new cancellable context ptr, used by derived types that embed cancellable
func newFrom(the context.Context, cancelfunc context.CancelCauseFunc) *cancellable {
	return &cancellable{
		Context: the,
		cancel:  cancelfunc,
	}
}

func (c *cancellable) Cancel(err error) {
	c.cancel(err)
}

package numread

import (
	"fmt"

	"github.com/aerth/readnum/stackerr"
)

// Outcome of one parse attempt. Value is meaningless unless OK.
type Outcome[T Number] struct {
	Value T
	OK    bool
	Raw   string // the line as typed
	Rest  string // what the conversion did not consume

	reason string
}

// Get the value and the success flag.
func (o Outcome[T]) Get() (T, bool) {
	if !o.OK {
		var zero T
		return zero, false
	}
	return o.Value, true
}

// Err is nil on success, otherwise a *ParseError wrapped with the caller's site.
func (o Outcome[T]) Err() error {
	if o.OK {
		return nil
	}
	return stackerr.Wrap(&ParseError{Input: o.Raw, Type: TypeName[T](), Reason: o.reason}, 1)
}

// ParseError describes malformed numeric input. It unwraps to ErrNotANumber.
type ParseError struct {
	Input  string
	Type   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%q: %s %v", e.Input, e.Type, ErrNotANumber)
	}
	return fmt.Sprintf("%q: %s %v (%s)", e.Input, e.Type, ErrNotANumber, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrNotANumber
}

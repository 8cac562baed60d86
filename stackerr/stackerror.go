// Copyright (c) 2024 aerth
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// stackerr package wraps errors with the site they were created at.
//
// fmt %v prints the error as usual, %+v adds "from func (file:line)" for every
// wrapped layer.
package stackerr

import (
	"errors"
	"fmt"
	"strings"
)

// Error is an error with the call site that produced it.
type Error struct {
	err  error
	Site Site
}

var _ error = (*Error)(nil)

// Wrap err with the site of the caller (nil error returns nil).
//
// skip adds frames to skip, for helpers that wrap on behalf of their caller.
func Wrap(err error, skip ...int) error {
	if err == nil {
		return nil
	}
	n := 0
	if len(skip) > 0 {
		n = skip[0]
	}
	return &Error{err: err, Site: Caller(n)}
}

// Errorf with the site of the caller. Use %w for wrapped errors!
func Errorf(format string, args ...interface{}) error {
	if !strings.Contains(format, "%w") {
		for _, arg := range args {
			if _, ok := arg.(error); ok {
				panic("stackerr.Errorf: error argument without %w")
			}
		}
	}
	return &Error{err: fmt.Errorf(format, args...), Site: Caller(0)}
}

func (e *Error) Error() string { return e.err.Error() }

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Format(f fmt.State, c rune) {
	switch c {
	case 'v':
		if f.Flag('+') {
			fmt.Fprint(f, e.err.Error())
			fmt.Fprintf(f, "\n\tfrom %s", e.Site)
			var inner *Error
			if errors.As(e.err, &inner) { // recurse
				fmt.Fprintf(f, "\n\t%+v", inner)
			}
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(f, e.Error())
	case 'q':
		fmt.Fprintf(f, "%q", e.Error())
	}
}

// SiteOf returns the site of the outermost stackerr in err's chain.
func SiteOf(err error) (Site, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Site, true
	}
	return Site{}, false
}

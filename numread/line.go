package numread

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// LineSource hands out one line of input at a time, without the line terminator.
type LineSource interface {
	ReadLine() (string, error)
}

// NewLineSource reads lines from r. If r is already a LineSource, it is returned as is.
//
// A last line without a newline is returned with a nil error; io.EOF is
// only returned when nothing was left to read.
func NewLineSource(r io.Reader) LineSource {
	if src, ok := r.(LineSource); ok {
		return src
	}
	return &readerSource{r: bufio.NewReader(r)}
}

type readerSource struct {
	r *bufio.Reader
}

func (s *readerSource) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// ReadLine from src, returning early with the context's cause if ctx ends first.
//
// The read itself can't be interrupted; when ctx wins it is left pending and
// its line is dropped.
func ReadLine(ctx context.Context, src LineSource) (string, error) {
	if ctx.Done() == nil {
		return src.ReadLine()
	}
	if err := context.Cause(ctx); err != nil {
		return "", err
	}
	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		line, err := src.ReadLine()
		ch <- result{line, err}
	}()
	select {
	case r := <-ch:
		return r.line, r.err
	case <-ctx.Done():
		return "", context.Cause(ctx)
	}
}

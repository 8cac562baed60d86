package numread

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestLineSource(t *testing.T) {
	src := NewLineSource(strings.NewReader("2\r\nabc\n\nlast"))
	for _, want := range []string{"2", "abc", "", "last"} {
		got, err := src.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine: %v", err)
		}
		if got != want {
			t.Fatalf("ReadLine = %q, want %q", got, want)
		}
	}
	if _, err := src.ReadLine(); err != io.EOF {
		t.Fatalf("ReadLine at end = %v, want io.EOF", err)
	}
}

func TestReadLineCancel(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	errStop := errors.New("stop")
	ctx, cancel := context.WithCancelCause(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel(errStop)
	}()
	_, err := ReadLine(ctx, NewLineSource(r))
	if !errors.Is(err, errStop) {
		t.Fatalf("ReadLine = %v, want %v", err, errStop)
	}
	// already cancelled: no read at all
	if _, err := ReadLine(ctx, NewLineSource(r)); !errors.Is(err, errStop) {
		t.Fatalf("ReadLine after cancel = %v", err)
	}
}

func TestRead(t *testing.T) {
	ctx := context.Background()
	src := NewLineSource(strings.NewReader("2\n5.4\nbanana\n"))
	if v, ok := ReadInt(ctx, src); !ok || v != 2 {
		t.Fatalf("ReadInt = %d %v", v, ok)
	}
	if v, ok := ReadFloat(ctx, src); !ok || v != 5.4 {
		t.Fatalf("ReadFloat = %v %v", v, ok)
	}
	if v := ReadIntUnchecked(ctx, src); v != 0 {
		t.Fatalf("ReadIntUnchecked(banana) = %d, want 0", v)
	}
	// end of input is a failed parse
	if _, ok := ReadInt(ctx, src); ok {
		t.Fatalf("ReadInt at EOF succeeded")
	}
	if v := ReadFloatUnchecked(ctx, src); v != 0 {
		t.Fatalf("ReadFloatUnchecked at EOF = %v", v)
	}
}

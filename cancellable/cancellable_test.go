package cancellable

import (
	"context"
	"errors"
	"testing"
)

func TestCancelCause(t *testing.T) {
	errDone := errors.New("done")
	c := New(context.Background())
	c.Cancel(errDone)
	<-c.Done()
	if !errors.Is(context.Cause(c), errDone) {
		t.Fatalf("cause = %v", context.Cause(c))
	}
}

func TestChan(t *testing.T) {
	c := NewChan[int](context.Background(), 1)
	defer c.Cancel(nil)
	c.Ch() <- 7
	if v := <-c.UpdatesChan(); v != 7 {
		t.Fatalf("got %d", v)
	}
}

// superchan package turns signals into context cancellation, with deferred cleanup.
package superchan

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"

	"github.com/aerth/readnum/cancellable"
)

var Log = log.Default()

// SignalError is the cause of a context cancelled by a signal.
type SignalError struct {
	Signal os.Signal
}

func (e SignalError) Error() string {
	return fmt.Sprintf("caught sig: %v", e.Signal)
}

// Main handles signals, use as main context, for example:
//
//	var mainctx = superchan.NewMain(context.Background(), os.Interrupt, syscall.SIGTERM)
//
//	func main() {
//	  defer mainctx.Stop(nil)
//	  ...
//	}
type Main struct {
	cancellable.Chan[os.Signal]

	mu         sync.Mutex
	deferfuncs []func()
	dead       bool
	ran        chan struct{} // closed once deferred funcs have run
}

// NewMain starts one goroutine that waits for a signal or cancellation, then
// cancels the context and runs deferred funcs, newest first.
func NewMain(parent context.Context, signals ...os.Signal) *Main {
	if len(signals) == 0 {
		panic("superchan: no signals provided")
	}
	m := &Main{
		Chan: cancellable.NewChan[os.Signal](parent, len(signals)),
		ran:  make(chan struct{}),
	}
	signal.Notify(m.Ch(), signals...)
	go func() {
		defer signal.Stop(m.Ch())
		select {
		case <-m.Done(): // someone else cancelled the ctx
		case sig := <-m.UpdatesChan():
			m.Cancel(SignalError{sig})
		}
		m.rundeferred()
	}()
	return m
}

// Defer f until the context is done. Funcs added later run first.
func (m *Main) Defer(f func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dead {
		panic("cannot defer after cancel")
	}
	m.deferfuncs = append([]func(){f}, m.deferfuncs...)
}

// Stop cancels with err (nil for a normal exit) and waits for deferred funcs.
func (m *Main) Stop(err error) {
	m.Cancel(err)
	<-m.ran
}

// Interrupted reports whether a signal cancelled the context, and which.
func (m *Main) Interrupted() (os.Signal, bool) {
	if e, ok := context.Cause(m).(SignalError); ok {
		return e.Signal, true
	}
	return nil, false
}

func (m *Main) rundeferred() {
	defer close(m.ran)
	m.mu.Lock()
	funcs := m.deferfuncs
	m.deferfuncs = nil
	m.dead = true
	m.mu.Unlock()
	for _, f := range funcs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					Log.Printf("error in deferred func (panic): %v", r)
				}
			}()
			f()
		}()
	}
}

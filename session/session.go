// session package runs the interactive number reading programs against any
// input and output, returning the exit status instead of exiting.
package session

import (
	"context"
	"io"
	"log"

	"github.com/aerth/readnum/console"
	"github.com/aerth/readnum/history"
	"github.com/aerth/readnum/numread"
)

// Exit statuses returned by Run.
const (
	ExitOK          = 0
	ExitInvalid     = 1   // validation failed
	ExitInterrupted = 130 // signal while waiting for input
)

// Recorder keeps attempts, see history.Store.
type Recorder interface {
	Record(history.Attempt) (uint64, error)
}

// Session is where a program reads from and writes to.
type Session struct {
	In       numread.LineSource
	Out      *console.Printer // prompts and results
	Err      *console.Printer // validation errors
	Prompt   bool
	Log      *log.Logger
	Recorder Recorder // nil records nothing
}

// New Session over in, out and errw, prompting, with logging discarded.
func New(in io.Reader, out, errw io.Writer) *Session {
	return &Session{
		In:     numread.NewLineSource(in),
		Out:    console.Plain(out),
		Err:    console.New(errw),
		Prompt: true,
		Log:    log.New(io.Discard, "", 0),
	}
}

// Run program p once. Blocks until input arrives or ctx is done.
func (s *Session) Run(ctx context.Context, p Program) int {
	r := &runner{Session: s, ctx: ctx, prog: p, src: &tap{src: s.In}}
	switch p.Variant {
	case SimpleFunctions:
		return r.simpleFunctions()
	case InPlace:
		return r.inPlace()
	case Templates:
		return r.templates()
	}
	panic("session: unknown variant " + p.Variant.String())
}

type runner struct {
	*Session
	ctx  context.Context
	prog Program
	src  *tap
}

func (r *runner) simpleFunctions() int {
	r.prompt("Input a number: ")
	var number int
	if r.prog.Checked {
		n, ok := numread.ReadInt(r.ctx, r.src)
		if r.interrupted() {
			return ExitInterrupted
		}
		note[int](r)
		if !ok {
			r.Err.Errorln("Oops, looks like you didn't type a number")
			return ExitInvalid
		}
		number = n
	} else {
		number = numread.ReadIntUnchecked(r.ctx, r.src)
		if r.interrupted() {
			return ExitInterrupted
		}
		note[int](r)
	}
	r.typed(numread.Format(number))
	return ExitOK
}

func (r *runner) inPlace() int {
	r.prompt("Input a number: ")
	line, err := numread.ReadLine(r.ctx, r.src)
	if r.interrupted() {
		return ExitInterrupted
	}
	if err != nil {
		r.Log.Printf("read: %v", err)
	}
	number, ok := numread.Parse[int](line)
	note[int](r)
	if r.prog.Checked && !ok {
		r.Err.Errorln("\nOops, [" + line + "] is not a number!")
		return ExitInvalid
	}
	r.typed(numread.Format(number))
	return ExitOK
}

func (r *runner) templates() int {
	r.prompt("Input an integer number (e.g. 2): ")
	integer, ok := readTemplate[int](r)
	if r.interrupted() {
		return ExitInterrupted
	}
	if !ok {
		r.Err.Errorln("Oops, that was not an integer value!")
		return ExitInvalid
	}
	r.typed(numread.Format(integer))

	r.prompt("Input a real number (e.g. 5.4): ")
	floating, ok := readTemplate[float64](r)
	if r.interrupted() {
		return ExitInterrupted
	}
	if !ok {
		r.Err.Errorln("Oops, that was not a real value!")
		return ExitInvalid
	}
	r.typed(numread.Format(floating))
	return ExitOK
}

// readTemplate reads T, ok is always true for unchecked programs
func readTemplate[T numread.Number](r *runner) (T, bool) {
	if !r.prog.Checked {
		v := numread.ReadUnchecked[T](r.ctx, r.src)
		if r.ctx.Err() == nil {
			note[T](r)
		}
		return v, true
	}
	v, ok := numread.Read[T](r.ctx, r.src)
	if r.ctx.Err() == nil {
		note[T](r)
	}
	return v, ok
}

func (r *runner) prompt(s string) {
	if r.Prompt {
		r.Out.Print(s)
	}
}

func (r *runner) typed(v string) {
	r.Out.Println("\nYou typed [" + v + "]")
}

func (r *runner) interrupted() bool {
	if r.ctx.Err() == nil {
		return false
	}
	r.Log.Printf("%s: interrupted: %v", r.prog.Name(), context.Cause(r.ctx))
	return true
}

// note logs and records the last line read as a T
func note[T numread.Number](r *runner) {
	o := numread.Try[T](r.src.last)
	if err := o.Err(); err != nil {
		r.Log.Printf("%s: %+v", r.prog.Name(), err)
	} else {
		r.Log.Printf("%s: read %q as %s %s, ignored %q", r.prog.Name(), o.Raw, numread.TypeName[T](), numread.Format(o.Value), o.Rest)
	}
	if r.Recorder == nil {
		return
	}
	a := history.Attempt{
		Program: r.prog.Name(),
		Type:    numread.TypeName[T](),
		Raw:     o.Raw,
		OK:      o.OK,
	}
	if o.OK {
		a.Value = numread.Format(o.Value)
	}
	if _, err := r.Recorder.Record(a); err != nil {
		r.Log.Printf("history: %v", err)
	}
}

// tap remembers the last line read through it
type tap struct {
	src  numread.LineSource
	last string
}

func (t *tap) ReadLine() (string, error) {
	line, err := t.src.ReadLine()
	t.last = line
	return line, err
}

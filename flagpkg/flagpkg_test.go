package flagpkg

import (
	"errors"
	"flag"
	"io"
	"testing"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestDefaults(t *testing.T) {
	o, err := Parse(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !o.Prompt || o.History != "" || o.Log.Debug {
		t.Fatalf("defaults = %+v", o)
	}
}

func TestFlags(t *testing.T) {
	o, err := Parse(newFlagSet(), []string{"-no-prompt", "-history", "h.db", "-debug", "-journald"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if o.Prompt || o.History != "h.db" || !o.Log.Debug || !o.Log.Journald {
		t.Fatalf("parsed = %+v", o)
	}
}

func TestInverseExplicit(t *testing.T) {
	o, err := Parse(newFlagSet(), []string{"-no-prompt=false"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !o.Prompt {
		t.Fatalf("-no-prompt=false should keep the prompt")
	}
	if _, err := Parse(newFlagSet(), []string{"-no-prompt=maybe"}); err == nil {
		t.Fatalf("bad bool accepted")
	}
}

func TestNoArgs(t *testing.T) {
	if _, err := Parse(newFlagSet(), []string{"42"}); !errors.Is(err, ErrArgs) {
		t.Fatalf("positional argument accepted")
	}
}

// flagpkg package holds the flags shared by the readnum programs, plus InverseBoolVar.
package flagpkg

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/aerth/readnum/superlog"
)

// ErrArgs is returned by Parse for positional arguments, the programs take none.
var ErrArgs = errors.New("unexpected arguments")

// Options every program accepts. None are required.
type Options struct {
	Prompt  bool   // print the input prompt (-no-prompt turns it off)
	History string // bbolt file to record attempts in, empty for none
	Log     superlog.Config
}

// Register Options on fs, with defaults: prompt on, no history, no logs.
func (o *Options) Register(fs *flag.FlagSet) {
	InverseBoolVar(fs, &o.Prompt, "no-prompt", true, "do not print the input prompt")
	fs.StringVar(&o.History, "history", "", "record every attempt in this `file`")
	fs.BoolVar(&o.Log.Debug, "debug", false, "log parse details")
	fs.BoolVar(&o.Log.Journald, "journald", false, "send debug logs to the systemd journal")
	fs.BoolVar(&o.Log.Syslog, "syslog", false, "send debug logs to syslog")
	fs.StringVar(&o.Log.SyslogRemote, "syslog-remote", "", "send debug logs to remote syslog at udp `addr`")
}

// Parse args into new Options using fs.
func Parse(fs *flag.FlagSet, args []string) (*Options, error) {
	o := new(Options)
	o.Register(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, fmt.Errorf("%w: %q", ErrArgs, fs.Args())
	}
	return o, nil
}

// InverseBoolVar defines a flag that inverts a bool value.
//
// For example, "-no-foo" would set foo to false.
//
// Using -no-foo=false would set to true.
//
// Omitting flag does not change the value at all.
func InverseBoolVar(fs *flag.FlagSet, p *bool, name string, value bool, usage string) {
	fs.Var(newInverseBool(value, p), name, usage)
}

// -- inversebool Value
// mostly from https://go.dev/src/flag/flag.go
// except: we invert the value below, in Set
type inverseboolValue bool

func newInverseBool(val bool, p *bool) *inverseboolValue {
	*p = val
	return (*inverseboolValue)(p)
}

func (b *inverseboolValue) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid bool value: %v", err)
	}
	*b = inverseboolValue(!v) // invert value
	return nil
}

func (b *inverseboolValue) Get() any { return bool(*b) }

// String is in the flag's own sense: -no-prompt defaults to false, though prompt is true.
func (b *inverseboolValue) String() string {
	if b == nil {
		return "false"
	}
	return strconv.FormatBool(!bool(*b))
}

func (b *inverseboolValue) IsBoolFlag() bool { return true }

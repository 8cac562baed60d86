package session

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"syscall"

	"github.com/aerth/readnum/flagpkg"
	"github.com/aerth/readnum/history"
	"github.com/aerth/readnum/superchan"
	"github.com/aerth/readnum/superlog"
)

// ExitUsage is returned by Main for bad flags.
const ExitUsage = 2

// Main is the whole of a program's main: flags, logs, history, signals, Run.
// It returns the exit status.
func Main(p Program, args []string) int {
	fs := flag.NewFlagSet(p.Name(), flag.ContinueOnError)
	opts, err := flagpkg.Parse(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		return ExitOK
	}
	if errors.Is(err, flagpkg.ErrArgs) {
		fmt.Fprintln(fs.Output(), err)
		fs.Usage()
	}
	if err != nil {
		return ExitUsage
	}
	if opts.Log.Tag == "" {
		opts.Log.Tag = p.Name()
	}
	logger, err := superlog.Open(opts.Log)
	if err != nil {
		logger.Printf("log: %v", err)
	}

	mainctx := superchan.NewMain(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer mainctx.Stop(nil)

	s := New(os.Stdin, os.Stdout, os.Stderr)
	s.Prompt = opts.Prompt
	s.Log = logger
	if opts.History != "" {
		store, err := history.Open(opts.History)
		if err != nil {
			logger.Printf("%+v", err)
		} else {
			mainctx.Defer(func() {
				if err := store.Close(); err != nil {
					logger.Printf("history close: %v", err)
				}
			})
			s.Recorder = store
		}
	}
	return s.Run(mainctx, p)
}

// superlog package picks where diagnostic logs go: nowhere, stderr, syslog or the journal.
package superlog

import (
	"fmt"
	"io"
	"log"
	"log/syslog"
	"os"
	"path/filepath"

	"github.com/aerth/readnum/journalwriter"
)

// Config for Open. Zero value discards everything.
type Config struct {
	Debug        bool   // without Debug nothing is logged
	Journald     bool   // systemd journal
	Syslog       bool   // local syslog
	SyslogRemote string // udp host:port, implies Syslog
	Tag          string // defaults to the program name
}

func (c Config) tag() string {
	if c.Tag != "" {
		return c.Tag
	}
	return filepath.Base(os.Args[0])
}

// Writer returns a non-nil io.Writer. if err is not nil, os.Stderr is returned with the error.
func Writer(c Config) (io.Writer, error) {
	switch {
	case !c.Debug:
		return io.Discard, nil
	case c.Syslog || c.SyslogRemote != "":
		netw := ""
		if c.SyslogRemote != "" {
			netw = "udp"
		}
		w, err := syslog.Dial(netw, c.SyslogRemote, syslog.LOG_DEBUG|syslog.LOG_USER, c.tag())
		if w == nil {
			return os.Stderr, err
		}
		return w, err
	case c.Journald:
		if !journalwriter.Enabled() {
			return os.Stderr, fmt.Errorf("journal not enabled")
		}
		return journalwriter.New(journalwriter.PriDebug, c.tag()), nil
	default:
		return os.Stderr, nil
	}
}

// Open a logger over Writer(c). The logger is usable even when err is not nil.
func Open(c Config) (*log.Logger, error) {
	w, err := Writer(c)
	flags := log.LstdFlags | log.Lmsgprefix
	if w != os.Stderr {
		flags = log.Lmsgprefix // syslog and journal stamp entries themselves
	}
	return log.New(w, c.tag()+": ", flags), err
}

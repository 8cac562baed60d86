package journalwriter

import (
	"io"
	"os"
	"strings"

	"github.com/coreos/go-systemd/journal"
)

type Priority = journal.Priority

const (
	PriErr   = journal.PriErr
	PriInfo  = journal.PriInfo
	PriDebug = journal.PriDebug
)

var _ io.Writer = JournalWriter{} // compile-time interface check

// JournalWriter writes to the systemd journal. It's an io.Writer, so log.New
// can use it. Each Write is one journal entry, the trailing newline dropped.
type JournalWriter struct {
	Priority   // default 0 is 'Emergency' level, use New
	Identifier string    // SYSLOG_IDENTIFIER, empty to let journald decide
	Fallback   io.Writer // gets the entry if the journal refuses it, nil to drop
}

// New JournalWriter at priority p (INFO if zero) tagged with identifier, falling back to stderr.
func New(p Priority, identifier string) JournalWriter {
	if p == 0 {
		p = journal.PriInfo
	}
	return JournalWriter{Priority: p, Identifier: identifier, Fallback: os.Stderr}
}

// Write one entry, falling back to j.Fallback when journal is not available.
func (j JournalWriter) Write(b []byte) (int, error) {
	var vars map[string]string
	if j.Identifier != "" {
		vars = map[string]string{"SYSLOG_IDENTIFIER": j.Identifier}
	}
	err := journal.Send(strings.TrimSuffix(string(b), "\n"), j.Priority, vars)
	if err != nil {
		if j.Fallback != nil {
			j.Fallback.Write(b)
		}
		return 0, err
	}
	return len(b), nil
}

// Enabled checks whether the local systemd journal is available for logging.
func Enabled() bool {
	return journal.Enabled()
}

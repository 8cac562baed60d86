// history package keeps a bbolt log of parse attempts, so a session of typing
// numbers can be looked at afterwards.
package history

import (
	"fmt"
	"strconv"
	"time"

	"github.com/aerth/readnum/anydb"
	"github.com/aerth/readnum/stackerr"
	"github.com/aerth/readnum/unixtimestamp"
	"go.etcd.io/bbolt"
)

const bucket = "attempts"

// Attempt is one line typed by a user and what became of it.
type Attempt struct {
	Seq     uint64                       `json:"seq" yaml:"seq"`
	Program string                       `json:"program" yaml:"program"`
	Type    string                       `json:"type" yaml:"type"`
	Raw     string                       `json:"raw" yaml:"raw"`
	OK      bool                         `json:"ok" yaml:"ok"`
	Value   string                       `json:"value,omitempty" yaml:"value,omitempty"`
	At      *unixtimestamp.UnixTimestamp `json:"at,omitempty" yaml:"at,omitempty"`
}

func (a Attempt) String() string {
	result := "failed"
	if a.OK {
		result = a.Value
	}
	when := "-"
	if a.At != nil {
		when = a.At.Time.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("%d\t%s\t%s\t%s\t%s\t%s", a.Seq, when, a.Program, a.Type, strconv.Quote(a.Raw), result)
}

// Store of attempts. Safe for use by one process at a time (bbolt file lock).
type Store struct {
	db *bbolt.DB
}

// OpenTimeout is how long Open waits for another process holding the file.
var OpenTimeout = time.Second

// Open or create the history file at path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: OpenTimeout})
	if err != nil {
		return nil, stackerr.Errorf("open history %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, stackerr.Errorf("init history %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Record a, assigning its sequence number (returned) and time if unset.
func (s *Store) Record(a Attempt) (uint64, error) {
	if a.At == nil {
		a.At = unixtimestamp.Now()
	}
	var seq uint64
	err := s.db.Update(func(tx *bbolt.Tx) error {
		var err error
		seq, err = anydb.AppendTx(tx, bucket, func(n uint64) Attempt {
			a.Seq = n
			return a
		})
		return err
	})
	if err != nil {
		return 0, stackerr.Errorf("record attempt: %w", err)
	}
	return seq, nil
}

// Filter selects attempts for List.
type Filter struct {
	Program    string // exact program name, empty for all
	FailedOnly bool
	Limit      int // keep only the newest Limit, 0 for all
}

func (f Filter) match(a Attempt) bool {
	if f.Program != "" && a.Program != f.Program {
		return false
	}
	return !f.FailedOnly || !a.OK
}

// List attempts oldest first.
func (s *Store) List(f Filter) ([]Attempt, error) {
	var all []Attempt
	err := s.db.View(func(tx *bbolt.Tx) error {
		return anydb.EachTx(tx, bucket, func(_ []byte, a Attempt) error {
			all = append(all, a)
			return nil
		})
	})
	if err != nil {
		return nil, stackerr.Errorf("list attempts: %w", err)
	}
	all = keep(all, f.match)
	if f.Limit > 0 && len(all) > f.Limit {
		all = all[len(all)-f.Limit:]
	}
	return all, nil
}

// Stats are totals over all recorded attempts.
type Stats struct {
	Total     int            `json:"total" yaml:"total"`
	Failed    int            `json:"failed" yaml:"failed"`
	ByProgram map[string]int `json:"by_program" yaml:"by_program"`
}

func (s *Store) Stats() (Stats, error) {
	st := Stats{ByProgram: map[string]int{}}
	all, err := s.List(Filter{})
	if err != nil {
		return st, err
	}
	for _, a := range all {
		st.Total++
		if !a.OK {
			st.Failed++
		}
		st.ByProgram[a.Program]++
	}
	return st, nil
}

// Clear every attempt. Sequence numbers start over.
func (s *Store) Clear() error {
	return stackerr.Wrap(s.db.Update(func(tx *bbolt.Tx) error {
		return anydb.ResetTx(tx, bucket)
	}))
}

func (s *Store) Close() error {
	return s.db.Close()
}

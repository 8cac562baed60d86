package history

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aerth/readnum/unixtimestamp"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func record(t *testing.T, s *Store, a Attempt) uint64 {
	t.Helper()
	seq, err := s.Record(a)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	return seq
}

func TestRecordList(t *testing.T) {
	s := openTest(t)
	record(t, s, Attempt{Program: "in-place-no-ec", Type: "int", Raw: "2", OK: true, Value: "2"})
	record(t, s, Attempt{Program: "in-place-with-ec", Type: "int", Raw: "banana"})
	seq := record(t, s, Attempt{Program: "function-templates-with-ec", Type: "float64", Raw: "5.4", OK: true, Value: "5.4"})
	if seq != 3 {
		t.Fatalf("third seq = %d", seq)
	}

	all, err := s.List(Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List = %d attempts", len(all))
	}
	for i, a := range all {
		if a.Seq != uint64(i+1) {
			t.Errorf("attempt %d has seq %d", i, a.Seq)
		}
		if a.At == nil {
			t.Errorf("attempt %d has no time", i)
		}
	}
	if all[1].Raw != "banana" || all[1].OK {
		t.Fatalf("second attempt = %+v", all[1])
	}

	failed, _ := s.List(Filter{FailedOnly: true})
	if len(failed) != 1 || failed[0].Raw != "banana" {
		t.Fatalf("FailedOnly = %+v", failed)
	}
	prog, _ := s.List(Filter{Program: "in-place-no-ec"})
	if len(prog) != 1 || prog[0].Value != "2" {
		t.Fatalf("Program filter = %+v", prog)
	}
	last, _ := s.List(Filter{Limit: 2})
	if len(last) != 2 || last[0].Seq != 2 || last[1].Seq != 3 {
		t.Fatalf("Limit = %+v", last)
	}
}

func TestStatsClear(t *testing.T) {
	s := openTest(t)
	record(t, s, Attempt{Program: "a", Raw: "1", OK: true, Value: "1"})
	record(t, s, Attempt{Program: "a", Raw: "x"})
	record(t, s, Attempt{Program: "b", Raw: "y"})
	st, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.Total != 3 || st.Failed != 2 || st.ByProgram["a"] != 2 || st.ByProgram["b"] != 1 {
		t.Fatalf("Stats = %+v", st)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	all, _ := s.List(Filter{})
	if len(all) != 0 {
		t.Fatalf("after Clear: %+v", all)
	}
	if seq := record(t, s, Attempt{Program: "a"}); seq != 1 {
		t.Fatalf("seq after Clear = %d", seq)
	}
}

func TestAttemptString(t *testing.T) {
	a := Attempt{Seq: 4, Program: "in-place-with-ec", Type: "int", Raw: "banana", At: unixtimestamp.New(time.Unix(0, 0).Add(time.Hour))}
	got := a.String()
	for _, want := range []string{"4\t", "1970-01-01T01:00:00Z", `"banana"`, "failed"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
	a.OK, a.Value = true, "7"
	if !strings.HasSuffix(a.String(), "\t7") {
		t.Errorf("String() = %q", a.String())
	}
}

func TestKeep(t *testing.T) {
	got := keep([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 1 })
	if len(got) != 3 || got[0] != 1 || got[1] != 3 || got[2] != 5 {
		t.Fatalf("keep = %v", got)
	}
	if got := keep([]int(nil), func(int) bool { return true }); len(got) != 0 {
		t.Fatalf("keep(nil) = %v", got)
	}
}

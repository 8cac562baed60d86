package journalwriter

import (
	"bytes"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	j := New(0, "readnum")
	if j.Priority != PriInfo {
		t.Fatalf("priority = %v, want info", j.Priority)
	}
	if j.Fallback == nil {
		t.Fatalf("no fallback")
	}
}

func TestFallback(t *testing.T) {
	if Enabled() {
		t.Skip("journal available, fallback not exercised")
	}
	var buf bytes.Buffer
	j := JournalWriter{Priority: PriDebug, Fallback: &buf}
	if _, err := j.Write([]byte("hello\n")); err == nil {
		t.Fatalf("Write without journal should fail")
	}
	if buf.String() != "hello\n" {
		t.Fatalf("fallback got %q", buf.String())
	}
}

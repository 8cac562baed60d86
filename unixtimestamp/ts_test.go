package unixtimestamp

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestamp(t *testing.T) {
	var t1 = time.Now()
	var y *UnixTimestamp
	buf, err := json.Marshal(Now())
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if err := json.Unmarshal(buf, &y); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if y == nil {
		t.Fatalf("UnmarshalJSON: nil")
	}
	if y.After(t1.Add(time.Second)) {
		t.Fatalf("After")
	}
	if y.Before(t1.Add(-time.Second)) {
		t.Fatalf("Before")
	}
}

func TestZero(t *testing.T) {
	buf, err := json.Marshal(UnixTimestamp{})
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(buf) != "0" {
		t.Fatalf("zero time = %s, want 0", buf)
	}
	var y UnixTimestamp
	if err := json.Unmarshal([]byte("0"), &y); err != nil || !y.IsZero() {
		t.Fatalf("UnmarshalJSON(0) = %v, %v", y, err)
	}
	if v, _ := New(time.Unix(90, 0)).MarshalYAML(); v != int64(90) {
		t.Fatalf("MarshalYAML = %v", v)
	}
}

package console

import (
	"bytes"
	"testing"
)

func TestPlainBuffer(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)
	if p.color {
		t.Fatalf("buffer is not a terminal")
	}
	p.Print("Input a number: ")
	p.Errorln("Oops")
	p.Println("done")
	if got := buf.String(); got != "Input a number: Oops\ndone\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestColor(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{w: &buf, color: true}
	p.Errorln("Oops")
	if got := buf.String(); got == "Oops\n" || !bytes.Contains(buf.Bytes(), []byte("\x1b[")) {
		t.Fatalf("expected ansi colour, got %q", got)
	}
}

// console package writes user-facing lines, in colour when they land on a terminal.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
)

// Printer writes to w. Output is plain unless color is set.
type Printer struct {
	w     io.Writer
	color bool
}

// New Printer for w, coloured if w is a terminal (see IsTerminal).
func New(w io.Writer) *Printer {
	return &Printer{w: w, color: IsTerminal(w)}
}

// Plain Printer, never coloured.
func Plain(w io.Writer) *Printer {
	return &Printer{w: w}
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Print text as is.
func (p *Printer) Print(s string) {
	fmt.Fprint(p.w, s)
}

// Println text and a newline.
func (p *Printer) Println(s string) {
	fmt.Fprintln(p.w, s)
}

// Errorln prints an error line, red on a terminal.
func (p *Printer) Errorln(s string) {
	if p.color {
		fmt.Fprintln(p.w, aurora.Red(s).Bold())
		return
	}
	fmt.Fprintln(p.w, s)
}

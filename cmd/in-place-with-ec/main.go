// Command in-place-with-ec reads a line and converts it to an integer on the spot, echoing bad input back in the error.
package main

import (
	"os"

	"github.com/aerth/readnum/session"
)

func main() {
	os.Exit(session.Main(session.Program{Variant: session.InPlace, Checked: true}, os.Args[1:]))
}

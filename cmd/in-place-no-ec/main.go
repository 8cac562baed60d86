// Command in-place-no-ec reads a line and converts it to an integer on the spot, unchecked.
package main

import (
	"os"

	"github.com/aerth/readnum/session"
)

func main() {
	os.Exit(session.Main(session.Program{Variant: session.InPlace, Checked: false}, os.Args[1:]))
}

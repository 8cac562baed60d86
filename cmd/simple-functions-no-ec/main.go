// Command simple-functions-no-ec reads an integer with a helper function and prints it, never checking the input.
package main

import (
	"os"

	"github.com/aerth/readnum/session"
)

func main() {
	os.Exit(session.Main(session.Program{Variant: session.SimpleFunctions, Checked: false}, os.Args[1:]))
}

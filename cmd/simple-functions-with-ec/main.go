// Command simple-functions-with-ec reads an integer with a helper function, failing on anything that is not a number.
package main

import (
	"os"

	"github.com/aerth/readnum/session"
)

func main() {
	os.Exit(session.Main(session.Program{Variant: session.SimpleFunctions, Checked: true}, os.Args[1:]))
}

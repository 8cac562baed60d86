// Command function-templates-with-ec reads an integer then a real number with generic helpers, stopping at the first bad one.
package main

import (
	"os"

	"github.com/aerth/readnum/session"
)

func main() {
	os.Exit(session.Main(session.Program{Variant: session.Templates, Checked: true}, os.Args[1:]))
}

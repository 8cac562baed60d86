// Command function-templates-no-ec reads an integer then a real number with generic helpers, unchecked.
package main

import (
	"os"

	"github.com/aerth/readnum/session"
)

func main() {
	os.Exit(session.Main(session.Program{Variant: session.Templates, Checked: false}, os.Args[1:]))
}

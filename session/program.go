package session

import "fmt"

// Variant is a style of reading a number.
type Variant int

const (
	SimpleFunctions Variant = iota // helper functions read and convert an int
	InPlace                        // read a line and convert it right there
	Templates                      // generic helpers, an integer then a real
)

func (v Variant) String() string {
	switch v {
	case SimpleFunctions:
		return "simple-functions"
	case InPlace:
		return "in-place"
	case Templates:
		return "function-templates"
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// Program is a Variant, with or without checking the parse result.
type Program struct {
	Variant Variant
	Checked bool
}

// Name of the program's executable, eg "in-place-with-ec".
func (p Program) Name() string {
	if p.Checked {
		return p.Variant.String() + "-with-ec"
	}
	return p.Variant.String() + "-no-ec"
}

// Programs lists all six programs.
func Programs() []Program {
	var all []Program
	for _, v := range []Variant{SimpleFunctions, InPlace, Templates} {
		all = append(all, Program{v, false}, Program{v, true})
	}
	return all
}

// ProgramByName finds a program by its Name.
func ProgramByName(name string) (Program, bool) {
	for _, p := range Programs() {
		if p.Name() == name {
			return p, true
		}
	}
	return Program{}, false
}

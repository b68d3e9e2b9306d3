package jfeed

import "fmt"

// A Location describes the position of a single byte of source text.
type Location struct {
	Offset int // byte offset from the start of the document, 0-based
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 1-based
}

func (loc Location) String() string { return fmt.Sprintf("%d:%d", loc.Line, loc.Column) }

// start is the location of the first byte of a document.
var start = Location{Line: 1, Column: 1}

// next returns the location following the byte b at loc.
func (loc Location) next(b byte) Location {
	loc.Offset++
	if b == '\n' {
		loc.Line++
		loc.Column = 1
	} else {
		loc.Column++
	}
	return loc
}

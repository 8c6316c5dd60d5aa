package jcomb

import (
	"fmt"

	"go4.org/mem"
)

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// IsZero reports whether lc is the zero location, which is not valid.
func (lc LineCol) IsZero() bool { return lc.Line == 0 }

// lineColAt returns the line and column of offset pos in input.
// Offsets past the end of input are clamped.
func lineColAt(input mem.RO, pos int) LineCol {
	pos = min(pos, input.Len())
	lc := LineCol{Line: 1}
	for i := 0; i < pos; i++ {
		if input.At(i) == '\n' {
			lc.Line++
			lc.Column = 0
		} else {
			lc.Column++
		}
	}
	return lc
}

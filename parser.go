// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcomb

import (
	"errors"
	"fmt"
	"strconv"

	"go4.org/mem"
)

// A Parser holds the input and cursor for a single parse.
type Parser struct {
	input mem.RO
	pos   int

	// The failure recorded at the furthest offset so far, or nil.
	// Values stored here are never modified in place.
	last *Failure
}

// New constructs a parser over input. The caller must not modify the contents
// of input while the parser is in use.
func New(input []byte) *Parser { return &Parser{input: mem.B(input)} }

// NewString constructs a parser over input.
func NewString(input string) *Parser { return &Parser{input: mem.S(input)} }

// Pos returns the current offset of the cursor.
func (p *Parser) Pos() int { return p.pos }

// Len returns the number of bytes remaining after the cursor.
func (p *Parser) Len() int { return p.input.Len() - p.pos }

// AtEnd reports whether the cursor is at the end of the input.
func (p *Parser) AtEnd() bool { return p.pos >= p.input.Len() }

// Rest returns a view of the input remaining after the cursor.
func (p *Parser) Rest() mem.RO { return p.input.SliceFrom(p.pos) }

// maxActual bounds the length of input text copied into a failure.
const maxActual = 16

// Take consumes exactly n bytes from the input and returns them. If fewer than
// n bytes remain, Take fails without moving the cursor.
func (p *Parser) Take(n int) (mem.RO, error) {
	if n < 0 || p.Len() < n {
		rest := p.Rest()
		if rest.Len() > maxActual {
			rest = rest.SliceTo(maxActual)
		}
		return mem.RO{}, p.Fail(fmt.Sprintf("%d bytes", n), rest.StringCopy())
	}
	out := p.input.Slice(p.pos, p.pos+n)
	p.pos += n
	return out, nil
}

// String consumes lit if the input at the cursor begins with it, and returns
// lit. Otherwise String fails without moving the cursor.
func (p *Parser) String(lit string) (string, error) {
	rest := p.Rest()
	if !mem.HasPrefix(rest, mem.S(lit)) {
		if rest.Len() > len(lit) {
			rest = rest.SliceTo(len(lit))
		}
		return "", p.Fail(strconv.Quote(lit), rest.StringCopy())
	}
	p.pos += len(lit)
	return lit, nil
}

// TakeWhile consumes the longest prefix of the input whose bytes all satisfy
// ok, and returns it. The result may be empty; TakeWhile never fails.
func (p *Parser) TakeWhile(ok func(byte) bool) mem.RO {
	start, end := p.pos, p.input.Len()
	for p.pos < end && ok(p.input.At(p.pos)) {
		p.pos++
	}
	return p.input.Slice(start, p.pos)
}

// Peek returns the next byte of input without consuming it. It reports false
// if the cursor is at the end of the input.
func (p *Parser) Peek() (byte, bool) {
	if p.AtEnd() {
		return 0, false
	}
	return p.input.At(p.pos), true
}

// Fail returns a failure at the current cursor offset. An empty actual means
// the conflict was the end of the input.
//
// The failure is also recorded with the parser. If it is at least as far into
// the input as any earlier failure, Run will report it.
func (p *Parser) Fail(expected, actual string) *Failure {
	return p.record(&Failure{
		Pos:      p.pos,
		Expected: []string{expected},
		Actual:   actual,
		EOF:      actual == "",
	})
}

// Expect returns a failure at the current cursor offset, as Fail, whose actual
// text is the next rune of input.
func (p *Parser) Expect(expected string) *Failure {
	return p.Fail(expected, p.nextRune())
}

// ExpectAt returns a failure at offset pos, as Expect, whose actual text is the
// rune of input at pos. Use it to report a conflict found after the cursor
// has moved past it. Offsets outside the input are clamped.
func (p *Parser) ExpectAt(pos int, expected string) *Failure {
	pos = max(0, min(pos, p.input.Len()))
	actual := p.runeAt(pos)
	return p.record(&Failure{
		Pos:      pos,
		Expected: []string{expected},
		Actual:   actual,
		EOF:      actual == "",
	})
}

func (p *Parser) nextRune() string { return p.runeAt(p.pos) }

func (p *Parser) runeAt(pos int) string {
	rest := p.input.SliceFrom(pos)
	if rest.Len() == 0 {
		return ""
	}
	_, n := mem.DecodeRune(rest)
	if n == 0 {
		n = 1
	}
	return rest.SliceTo(n).StringCopy()
}

// record notes f as a candidate for the furthest failure, and returns f.
// Failures at the same offset as the current furthest have their
// expectations merged.
func (p *Parser) record(f *Failure) *Failure {
	switch {
	case p.last == nil || f.Pos > p.last.Pos:
		c := *f
		p.last = &c
	case f.Pos == p.last.Pos:
		p.last = p.last.merge(f)
	}
	return f
}

// Run calls f on p and returns its result. If f fails with a *Failure, Run
// reports the furthest failure recorded during the parse, with its Location
// populated. Other errors are returned unmodified.
func Run[T any](p *Parser, f Func[T]) (T, error) {
	v, err := f(p)
	if err == nil {
		return v, nil
	}
	var fail *Failure
	if !errors.As(err, &fail) {
		return v, err
	}
	if p.last != nil && p.last.Pos >= fail.Pos {
		fail = p.last
	}
	out := *fail
	out.Location = lineColAt(p.input, out.Pos)
	return v, &out
}

// reset moves the cursor back to pos.
func (p *Parser) reset(pos int) { p.pos = pos }

// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcomb

import (
	"errors"
	"fmt"

	"github.com/creachadair/mds/value"
	"go4.org/mem"
)

// A Func is a parser that produces a value of type T. On success, it returns
// the value with the cursor advanced past the text consumed. On failure it
// returns an error, which should be a *Failure.
type Func[T any] func(*Parser) (T, error)

// attempt calls f, and restores the cursor to its starting offset if f fails.
func attempt[T any](p *Parser, f Func[T]) (T, error) {
	pos := p.pos
	v, err := f(p)
	if err != nil {
		p.reset(pos)
	}
	return v, err
}

// Take returns a Func that consumes exactly n bytes. See [Parser.Take].
func Take(n int) Func[mem.RO] {
	return func(p *Parser) (mem.RO, error) { return p.Take(n) }
}

// Lit returns a Func that consumes the literal string s. See [Parser.String].
func Lit(s string) Func[string] {
	return func(p *Parser) (string, error) { return p.String(s) }
}

// While returns a Func that consumes the longest run of bytes satisfying ok.
// See [Parser.TakeWhile].
func While(ok func(byte) bool) Func[mem.RO] {
	return func(p *Parser) (mem.RO, error) { return p.TakeWhile(ok), nil }
}

// Optional returns a Func that attempts f. If f fails, the cursor is restored
// and the result is absent. Optional never fails.
func Optional[T any](f Func[T]) Func[value.Maybe[T]] {
	return func(p *Parser) (value.Maybe[T], error) {
		v, err := attempt(p, f)
		if err != nil {
			return value.Absent[T](), nil
		}
		return value.Just(v), nil
	}
}

// ZeroOrMore returns a Func that applies f repeatedly until it fails, and
// returns the values of the successful attempts in order. The cursor is left
// after the last success. ZeroOrMore never fails.
//
// A success that consumes no input ends the repetition after its value is
// recorded, since repeating it would never make progress.
func ZeroOrMore[T any](f Func[T]) Func[[]T] {
	return func(p *Parser) ([]T, error) { return repeat(p, f, nil), nil }
}

// AtLeastOne returns a Func that applies f once, then as ZeroOrMore. It fails
// if and only if the first application of f fails.
func AtLeastOne[T any](f Func[T]) Func[[]T] {
	return func(p *Parser) ([]T, error) {
		first, err := attempt(p, f)
		if err != nil {
			return nil, err
		}
		return repeat(p, f, []T{first}), nil
	}
}

func repeat[T any](p *Parser, f Func[T], out []T) []T {
	for {
		pos := p.pos
		v, err := attempt(p, f)
		if err != nil {
			return out
		}
		out = append(out, v)
		if p.pos == pos {
			return out
		}
	}
}

// Either returns a Func that attempts f1, and if that fails attempts f2 from
// the same starting offset. If f1 succeeds, f2 is not tried. If both fail, the
// failure of f2 is returned.
func Either[T any](f1, f2 Func[T]) Func[T] {
	return func(p *Parser) (T, error) {
		if v, err := attempt(p, f1); err == nil {
			return v, nil
		}
		return attempt(p, f2)
	}
}

// OneOf returns a Func that attempts each of fs in order from the same
// starting offset, and returns the result of the first to succeed. If all of
// them fail, OneOf fails at the starting offset expecting any of the things
// the alternatives expected there.
func OneOf[T any](fs ...Func[T]) Func[T] {
	return func(p *Parser) (T, error) {
		start := p.pos
		agg := &Failure{Pos: start}
		for _, f := range fs {
			v, err := attempt(p, f)
			if err == nil {
				return v, nil
			}
			var fail *Failure
			if errors.As(err, &fail) && fail.Pos == start {
				agg = agg.merge(fail)
			}
		}
		if len(agg.Expected) == 0 {
			agg.Expected = []string{fmt.Sprintf("one of %d alternatives", len(fs))}
		}
		agg.Actual = p.nextRune()
		agg.EOF = agg.Actual == ""

		var zero T
		return zero, p.record(agg)
	}
}

// SepBy returns a Func that parses zero or more occurrences of f separated by
// sep. Each occurrence after the first must be preceded by sep; the
// repetition ends, with the cursor restored, at the first separator or
// element that fails. SepBy never fails.
//
// As with ZeroOrMore, an iteration in which sep and f together consume no
// input ends the repetition after its value is recorded.
func SepBy[S, T any](sep Func[S], f Func[T]) Func[[]T] {
	return func(p *Parser) ([]T, error) {
		first, err := attempt(p, f)
		if err != nil {
			return nil, nil
		}
		out := []T{first}
		for {
			pos := p.pos
			if _, err := sep(p); err != nil {
				p.reset(pos)
				return out, nil
			}
			v, err := f(p)
			if err != nil {
				p.reset(pos)
				return out, nil
			}
			out = append(out, v)
			if p.pos == pos {
				return out, nil
			}
		}
	}
}

// Between returns a Func that parses open, inner, and close in sequence, and
// returns the value of inner. If any of them fails, the cursor is restored to
// its offset before open.
func Between[O, C, T any](open Func[O], close Func[C], inner Func[T]) Func[T] {
	return func(p *Parser) (T, error) {
		var zero T
		start := p.pos
		if _, err := open(p); err != nil {
			p.reset(start)
			return zero, err
		}
		v, err := inner(p)
		if err != nil {
			p.reset(start)
			return zero, err
		}
		if _, err := close(p); err != nil {
			p.reset(start)
			return zero, err
		}
		return v, nil
	}
}

// Map returns a Func that applies f and converts its value with conv.
func Map[T, U any](f Func[T], conv func(T) U) Func[U] {
	return func(p *Parser) (U, error) {
		v, err := f(p)
		if err != nil {
			var zero U
			return zero, err
		}
		return conv(v), nil
	}
}

// Skip returns a Func that applies f and discards its value.
func Skip[T any](f Func[T]) Func[struct{}] {
	return func(p *Parser) (struct{}, error) {
		_, err := f(p)
		return struct{}{}, err
	}
}

// Label returns a Func that applies f. If f fails without consuming any input,
// the failure is replaced by one expecting name. Failures further into the
// input are reported unchanged.
func Label[T any](name string, f Func[T]) Func[T] {
	return func(p *Parser) (T, error) {
		start, saved := p.pos, p.last
		v, err := attempt(p, f)
		if err == nil {
			return v, nil
		}
		var fail *Failure
		if !errors.As(err, &fail) || fail.Pos != start {
			return v, err
		}

		// Discard the expectations f recorded at the starting offset, but keep
		// any failure that got further.
		if p.last != nil && p.last.Pos == start {
			p.last = saved
		}
		return v, p.Expect(name)
	}
}

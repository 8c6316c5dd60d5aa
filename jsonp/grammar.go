// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jsonp implements a JSON grammar using the jcomb combinator engine,
// and the value tree it produces.
//
// To parse a complete JSON document, call Parse:
//
//	v, err := jsonp.Parse(input)
//	if err != nil {
//	   log.Fatalf("Parse: %v", err) // err has concrete type *jcomb.Failure
//	}
//
// # Compatibility
//
// By default the grammar reproduces a particular legacy dialect of JSON:
//
//   - Only space and newline are insignificant whitespace.
//   - Strings are returned as written. Escape sequences are not decoded, and a
//     string ends at the first double quotation mark, escaped or not.
//   - The fraction of a number is scaled by the length of its value without
//     leading zeros, and added to the signed integer part. Thus "1.05" parses
//     as 1.5 and "-1.5" as -0.5.
//
// Each of these can be changed on a Grammar constructed with New; see
// AllowAllWhitespace, DecodeEscapes, and ExactFractions.
package jsonp

import (
	"errors"

	"github.com/creachadair/jcomb"
	"github.com/creachadair/jcomb/internal/escape"
	"go4.org/mem"
)

// A Grammar is a JSON grammar. A Grammar may be used for many parses, and is
// safe for concurrent use once it has been configured.
type Grammar struct {
	exact    bool // see ExactFractions
	escapes  bool // see DecodeEscapes
	allSpace bool // see AllowAllWhitespace

	alts     jcomb.Func[Value]
	pairs    jcomb.Func[[]member]
	elements jcomb.Func[[]Value]
	object   jcomb.Func[Value]
	array    jcomb.Func[Value]
	rawStr   jcomb.Func[string]
	escStr   jcomb.Func[string]
}

// New constructs a new Grammar with the default settings.
func New() *Grammar {
	g := new(Grammar)
	quote := jcomb.Lit(`"`)
	g.rawStr = jcomb.Between(quote, quote, jcomb.Map(jcomb.While(notQuote), mem.RO.StringCopy))
	g.escStr = jcomb.Between(quote, quote, g.decodeRun)

	g.pairs = jcomb.SepBy(g.comma, g.member)
	g.elements = jcomb.SepBy(g.comma, g.value)
	g.object = jcomb.Between(jcomb.Lit("{"), jcomb.Lit("}"), g.members)
	g.array = jcomb.Between(g.openArray, g.closeArray, g.arrayBody)

	g.alts = jcomb.OneOf(
		jcomb.Label("object", g.object),
		jcomb.Label("array", g.arrayRule),
		jcomb.Label("string", jcomb.Map(g.quoted, toString)),
		jcomb.Label("boolean", boolean),
		jcomb.Label("null", null),
		jcomb.Label("number", g.number),
	)
	return g
}

// ExactFractions configures the grammar to scale the fraction of a number by
// the number of digits written (true), or by the length of its value without
// leading zeros (false). When true, the fraction takes the sign of the
// integer part and may not have a sign of its own.
//
// The default is false, under which "1.05" parses as 1.5.
func (g *Grammar) ExactFractions(ok bool) { g.exact = ok }

// DecodeEscapes configures the grammar to decode escape sequences in strings
// (true) or to return strings as written (false). When true, an escaped
// quotation mark does not end a string.
//
// The default is false.
func (g *Grammar) DecodeEscapes(ok bool) { g.escapes = ok }

// AllowAllWhitespace configures the grammar to accept tab and carriage return
// as whitespace in addition to space and newline (true), or not (false).
//
// The default is false.
func (g *Grammar) AllowAllWhitespace(ok bool) { g.allSpace = ok }

// Value returns the grammar's rule for a single JSON value, preceded by
// optional whitespace. It does not require the value to be followed by the
// end of input, so it may be composed into other parsers.
func (g *Grammar) Value() jcomb.Func[Value] { return g.value }

// Parse parses input as a single JSON value. The value may be surrounded by
// whitespace, but no other input. In case of error, the concrete type of the
// error is *jcomb.Failure.
func (g *Grammar) Parse(input []byte) (Value, error) {
	return jcomb.Run(jcomb.New(input), g.document)
}

// ParseString parses input as a single JSON value, as Parse.
func (g *Grammar) ParseString(input string) (Value, error) {
	return jcomb.Run(jcomb.NewString(input), g.document)
}

var std = New()

// Parse parses input as a single JSON value using the default grammar.
func Parse(input []byte) (Value, error) { return std.Parse(input) }

// ParseString parses input as a single JSON value using the default grammar.
func ParseString(input string) (Value, error) { return std.ParseString(input) }

func (g *Grammar) document(p *jcomb.Parser) (Value, error) {
	v, err := g.value(p)
	if err != nil {
		return nil, err
	}
	g.skipSpace(p)
	if !p.AtEnd() {
		return nil, p.Expect("end of input")
	}
	return v, nil
}

func (g *Grammar) value(p *jcomb.Parser) (Value, error) {
	g.skipSpace(p)
	return g.alts(p)
}

type member struct {
	key   string
	value Value
}

// members parses the inside of an object, between the braces.
func (g *Grammar) members(p *jcomb.Parser) (Value, error) {
	g.skipSpace(p)
	kvs, err := g.pairs(p)
	if err != nil {
		return nil, err
	}
	g.skipSpace(p)

	obj := make(Object, len(kvs))
	for _, kv := range kvs {
		obj[kv.key] = kv.value
	}
	return obj, nil
}

func (g *Grammar) member(p *jcomb.Parser) (member, error) {
	key, err := g.quoted(p)
	if err != nil {
		return member{}, err
	}
	g.skipSpace(p)
	if _, err := p.String(":"); err != nil {
		return member{}, err
	}
	v, err := g.value(p)
	if err != nil {
		return member{}, err
	}
	return member{key: key, value: v}, nil
}

// arrayRule parses a bracketed array and any whitespace after it.
func (g *Grammar) arrayRule(p *jcomb.Parser) (Value, error) {
	v, err := g.array(p)
	if err != nil {
		return nil, err
	}
	g.skipSpace(p)
	return v, nil
}

func (g *Grammar) arrayBody(p *jcomb.Parser) (Value, error) {
	vs, err := g.elements(p)
	if err != nil {
		return nil, err
	} else if vs == nil {
		return Array{}, nil
	}
	return Array(vs), nil
}

func (g *Grammar) openArray(p *jcomb.Parser) (string, error) {
	if _, err := p.String("["); err != nil {
		return "", err
	}
	g.skipSpace(p)
	return "[", nil
}

func (g *Grammar) closeArray(p *jcomb.Parser) (string, error) {
	g.skipSpace(p)
	return p.String("]")
}

func (g *Grammar) comma(p *jcomb.Parser) (string, error) {
	g.skipSpace(p)
	if _, err := p.String(","); err != nil {
		return "", err
	}
	g.skipSpace(p)
	return ",", nil
}

func (g *Grammar) quoted(p *jcomb.Parser) (string, error) {
	if g.escapes {
		return g.escStr(p)
	}
	return g.rawStr(p)
}

// decodeRun consumes the body of a string in which a backslash protects the
// following byte, and returns its decoded text. A malformed escape is reported
// at its backslash.
func (g *Grammar) decodeRun(p *jcomb.Parser) (string, error) {
	start := p.Pos()
	var esc bool
	run := p.TakeWhile(func(b byte) bool {
		switch {
		case esc:
			esc = false
		case b == '\\':
			esc = true
		case b == '"':
			return false
		}
		return true
	})
	dec, err := escape.Unquote(run)
	var bad *escape.Error
	if errors.As(err, &bad) {
		return "", p.ExpectAt(start+bad.Offset, "complete escape sequence")
	} else if err != nil {
		return "", err
	}
	return string(dec), nil
}

var (
	boolean = jcomb.Map(jcomb.Either(jcomb.Lit("true"), jcomb.Lit("false")),
		func(s string) Value { return Bool(s == "true") })

	null = jcomb.Map(jcomb.Lit("null"), func(string) Value { return Null{} })
)

func toString(s string) Value { return String(s) }

func (g *Grammar) skipSpace(p *jcomb.Parser) {
	if g.allSpace {
		p.TakeWhile(isAnySpace)
	} else {
		p.TakeWhile(isSpace)
	}
}

func isSpace(b byte) bool    { return b == ' ' || b == '\n' }
func isAnySpace(b byte) bool { return b == ' ' || b == '\n' || b == '\t' || b == '\r' }
func notQuote(b byte) bool   { return b != '"' }

// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jcomb implements a backtracking parser combinator engine.
//
// # Parsers
//
// A Parser holds an input buffer and a cursor. The cursor is the only state
// that changes during a parse. Construct a Parser from the complete input and
// pass it to a Func to parse a value:
//
//	p := jcomb.NewString(`hello, world`)
//	v, err := jcomb.Run(p, jcomb.Lit("hello"))
//
// A Func is any function with the signature
//
//	func(*jcomb.Parser) (T, error)
//
// On success a Func returns its value and leaves the cursor after the text it
// consumed. On failure it returns an error, normally of concrete type
// *jcomb.Failure. Run reports the failure recorded at the furthest offset
// reached in the input, which is usually the most useful diagnostic.
//
// # Primitives
//
// The methods of a Parser touch the input directly:
//
//	Method      | Description
//	----------- | ---------------------------------------------------
//	Take        | consume exactly n bytes
//	String      | consume a literal prefix
//	TakeWhile   | consume the longest run matching a predicate
//	Peek        | look at the next byte without consuming it
//	Fail        | construct a failure at the cursor
//
// The functions Take, Lit, and While wrap the first three as Func values.
//
// # Combinators
//
// Combinators build new parsers out of existing ones:
//
//	Combinator  | Description
//	----------- | ---------------------------------------------------
//	Optional    | zero or one match, as a value.Maybe
//	ZeroOrMore  | zero or more matches
//	AtLeastOne  | one or more matches
//	Either      | the first of two parsers to succeed
//	OneOf       | the first of several parsers to succeed
//	SepBy       | zero or more matches separated by a delimiter
//	Between     | a match enclosed by an opening and a closing parser
//
// Every combinator that discards a failed attempt restores the cursor to the
// offset it had before the attempt began. This holds at any depth of nesting,
// so a failure several combinators deep unwinds through each of them.
//
// A Parser is not safe for concurrent use, but any number of parsers may read
// the same input concurrently.
package jcomb

// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over a parsed JSON value.
package cursor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/jcomb/jsonp"
)

// Path traverses a sequential path into the structure of v where path elements
// are as documented for the Cursor.Down method, and returns the value reached
// as a T.
func Path[T jsonp.Value](v jsonp.Value, path ...any) (T, error) {
	c := New(v).Down(path...)
	var result T
	if err := c.Err(); err != nil {
		return result, err
	}
	out, ok := c.Value().(T)
	if !ok {
		return result, fmt.Errorf("wrong value type %T", c.Value())
	}
	return out, nil
}

// ParsePath parses a dotted path string like "list.1.name" into path elements
// for Down. Segments that parse as integers become array indices; all others
// are object keys. An empty string is an empty path.
func ParsePath(s string) []any {
	if s == "" {
		return nil
	}
	var path []any
	for _, seg := range strings.Split(s, ".") {
		if i, err := strconv.Atoi(seg); err == nil {
			path = append(path, i)
		} else {
			path = append(path, seg)
		}
	}
	return path
}

// A Cursor is a pointer that navigates into the structure of a jsonp.Value.
type Cursor struct {
	org jsonp.Value
	stk []jsonp.Value
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin jsonp.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() jsonp.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current value under the cursor.
func (c *Cursor) Value() jsonp.Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the values from the origin to the current location of c.
func (c *Cursor) Path() []jsonp.Value {
	return append([]jsonp.Value{c.org}, c.stk...)
}

// Err reports the error from the most recent call to Down, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward, if possible, and returns c.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current value, and returns c. If the path cannot be completely consumed,
// traversal stops and an error is recorded; use Err to recover it.
//
// A string path element selects the member of an object with that key.
//
// An integer path element selects an element of an array, or a member of an
// object in order of its keys. Negative indices count backward from the end
// (-1 is last).
//
// A path element that is a function with signature
//
//	func(jsonp.Value) (jsonp.Value, error)
//
// is called with the current value, and its result becomes the next value.
// If it reports an error, traversal stops and the error is recorded.
//
// A nil path element is ignored.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	cur := c.Value()
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			o, ok := cur.(jsonp.Object)
			if !ok {
				return c.setErrorf("cannot traverse %T with %q", cur, t)
			}
			v, ok := o[t]
			if !ok {
				return c.setErrorf("key %q not found", t)
			}
			cur = c.push(v)

		case int:
			switch e := cur.(type) {
			case jsonp.Array:
				i, ok := fixArrayBound(len(e), t)
				if !ok {
					return c.setErrorf("array index %d out of bounds (n=%d)", t, len(e))
				}
				cur = c.push(e[i])
			case jsonp.Object:
				i, ok := fixArrayBound(len(e), t)
				if !ok {
					return c.setErrorf("object index %d out of bounds (n=%d)", t, len(e))
				}
				cur = c.push(e[e.Keys()[i]])
			default:
				return c.setErrorf("cannot traverse %T with %v", cur, t)
			}

		case func(jsonp.Value) (jsonp.Value, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		case nil:
			// Do nothing.

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(v jsonp.Value) jsonp.Value { c.stk = append(c.stk, v); return v }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}

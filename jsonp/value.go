// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonp

import (
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/creachadair/jcomb/internal/escape"
	"go4.org/mem"
)

// A Value is an arbitrary JSON value. The concrete type is one of Null, Bool,
// Int, Float, String, Array, or Object.
type Value interface {
	// JSON returns the compact JSON encoding of the value.
	JSON() string
}

// Null represents the null constant.
type Null struct{}

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

// An Int is a number written without a fraction or exponent.
type Int int64

// JSON satisfies the Value interface.
func (z Int) JSON() string { return strconv.FormatInt(int64(z), 10) }

// A Float is a number with a fraction or exponent, or an integer too large
// to represent as an Int.
type Float float64

// JSON satisfies the Value interface. Values that JSON cannot represent
// (infinities and NaN) are encoded as null.
func (f Float) JSON() string {
	v := float64(f)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "null"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// A String is the text of a quoted string, without its quotation marks.
//
// By default the text is exactly as written in the source, with any escape
// sequences left undecoded (see [Grammar.DecodeEscapes]).
type String string

// JSON satisfies the Value interface. The contents of s are escaped as needed,
// so a String holding raw source text with backslashes does not round-trip to
// its original source.
func (s String) JSON() string { return string(escape.Quote(nil, mem.S(string(s)))) }

// Unquote decodes the JSON escape sequences in s. It reports an error if s
// ends with an incomplete escape sequence.
func (s String) Unquote() (string, error) {
	dec, err := escape.Unquote(mem.S(string(s)))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}

// An Array is a sequence of values.
type Array []Value

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Len returns the number of elements in a.
func (a Array) Len() int { return len(a) }

// An Object is a collection of key-value members. If a key occurs more than
// once in the source, the last occurrence wins.
type Object map[string]Value

// JSON satisfies the Value interface. Members are encoded in order of their
// keys.
func (o Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, key := range o.Keys() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.Write(escape.Quote(nil, mem.S(key)))
		sb.WriteByte(':')
		sb.WriteString(o[key].JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Keys returns the keys of o in lexicographic order.
func (o Object) Keys() []string { return slices.Sorted(maps.Keys(o)) }

// Len returns the number of members in o.
func (o Object) Len() int { return len(o) }

// Native converts v into plain Go values: nil, bool, int64, float64, string,
// []any, and map[string]any. It panics if v has an unknown concrete type.
func Native(v Value) any {
	switch t := v.(type) {
	case nil, Null:
		return nil
	case Bool:
		return bool(t)
	case Int:
		return int64(t)
	case Float:
		return float64(t)
	case String:
		return string(t)
	case Array:
		out := make([]any, len(t))
		for i, elt := range t {
			out[i] = Native(elt)
		}
		return out
	case Object:
		out := make(map[string]any, len(t))
		for key, elt := range t {
			out[key] = Native(elt)
		}
		return out
	default:
		panic("jsonp: unknown value type")
	}
}

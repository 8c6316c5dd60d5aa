// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

var (
	errIncomplete = errors.New("incomplete escape sequence")
	errShortHex   = errors.New("incomplete Unicode escape")
)

// An Error reports a malformed escape sequence and where it begins.
type Error struct {
	Offset int // byte offset of the backslash in the input to Unquote
	Err    error
}

func (e *Error) Error() string { return fmt.Sprintf("at offset %d: %v", e.Offset, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Unquote decodes the escape sequences in the body of a JSON string. The
// enclosing double quotation marks must already have been removed.
//
// Unknown escapes and malformed hex digits decode as the Unicode replacement
// rune. A UTF-16 surrogate pair written as two \u escapes decodes to a single
// rune. Unquote reports an error of concrete type *Error for a truncated
// escape sequence.
func Unquote(src mem.RO) ([]byte, error) {
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(nil, src), nil
	}
	size := src.Len()
	dec := make([]byte, 0, size)
	for i >= 0 {
		at := size - src.Len() + i
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, &Error{Offset: at, Err: errIncomplete}
		}

		c := src.At(0)
		src = src.SliceFrom(1)
		switch c {
		case '"', '\\', '/':
			dec = append(dec, c)
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			r, rest, err := decodeU(src)
			if err != nil {
				return nil, &Error{Offset: at, Err: err}
			}
			dec = utf8.AppendRune(dec, r)
			src = rest
		default:
			dec = utf8.AppendRune(dec, utf8.RuneError)
		}
		i = mem.IndexByte(src, '\\')
	}
	return mem.Append(dec, src), nil
}

// decodeU decodes the hex digits of a \u escape at the front of src, whose
// "\u" prefix has been consumed. If the escape is the first half of a
// surrogate pair and the second half follows, both are consumed.
func decodeU(src mem.RO) (rune, mem.RO, error) {
	if src.Len() < 4 {
		return 0, src, errShortHex
	}
	r, ok := parseHex4(src)
	src = src.SliceFrom(4)
	if !ok {
		return utf8.RuneError, src, nil
	} else if !utf16.IsSurrogate(r) {
		return r, src, nil
	}

	// Look for a low surrogate to pair with r.
	if src.Len() >= 6 && src.At(0) == '\\' && src.At(1) == 'u' {
		if lo, ok := parseHex4(src.SliceFrom(2)); ok {
			if dr := utf16.DecodeRune(r, lo); dr != utf8.RuneError {
				return dr, src.SliceFrom(6), nil
			}
		}
	}
	return utf8.RuneError, src, nil
}

// parseHex4 decodes the first four bytes of data as hexadecimal digits.
func parseHex4(data mem.RO) (rune, bool) {
	var v rune
	for i := 0; i < 4; i++ {
		b := data.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += rune(b - '0')
		case 'a' <= b && b <= 'f':
			v += rune(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += rune(b - 'A' + 10)
		default:
			return 0, false
		}
	}
	return v, true
}

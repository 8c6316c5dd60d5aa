// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcomb_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/jcomb"
	"github.com/google/go-cmp/cmp"
)

func mustFailure(t *testing.T, err error) *jcomb.Failure {
	t.Helper()
	var f *jcomb.Failure
	if !errors.As(err, &f) {
		t.Fatalf("Got error %v (%T), want *jcomb.Failure", err, err)
	}
	return f
}

func TestTake(t *testing.T) {
	p := jcomb.NewString("hello")
	if got, err := p.Take(1); err != nil || got.StringCopy() != "h" {
		t.Errorf("Take(1): got %q, %v; want h", got.StringCopy(), err)
	}
	if got, err := p.Take(2); err != nil || got.StringCopy() != "el" {
		t.Errorf("Take(2): got %q, %v; want el", got.StringCopy(), err)
	}

	t.Run("TooLong", func(t *testing.T) {
		p := jcomb.NewString("hello")
		for _, n := range []int{6, 100, -1} {
			_, err := p.Take(n)
			f := mustFailure(t, err)
			if p.Pos() != 0 {
				t.Errorf("Take(%d): cursor moved to %d", n, p.Pos())
			}
			if f.Pos != 0 || f.Actual != "hello" {
				t.Errorf("Take(%d): failure %+v", n, f)
			}
		}
		if got, err := p.Take(1); err != nil || got.StringCopy() != "h" {
			t.Errorf("Take(1): got %q, %v; want h", got.StringCopy(), err)
		}
	})

	t.Run("LongInput", func(t *testing.T) {
		p := jcomb.NewString(strings.Repeat("abcd", 1<<16))
		for _, n := range []int{-1, 1 << 20} {
			_, err := p.Take(n)
			if f := mustFailure(t, err); f.Actual != "abcdabcdabcdabcd" {
				t.Errorf("Take(%d): got actual %q, want a short prefix", n, f.Actual)
			}
		}
	})

	t.Run("EOF", func(t *testing.T) {
		p := jcomb.NewString("ab")
		p.Take(2)
		_, err := p.Take(1)
		if f := mustFailure(t, err); !f.EOF || f.Pos != 2 {
			t.Errorf("Take at end: got %+v, want EOF at 2", f)
		}
	})
}

func TestString(t *testing.T) {
	p := jcomb.NewString("hello")
	if got, err := p.String("hel"); err != nil || got != "hel" {
		t.Errorf(`String("hel"): got %q, %v`, got, err)
	}
	if got, err := p.String("lo"); err != nil || got != "lo" {
		t.Errorf(`String("lo"): got %q, %v`, got, err)
	}
	if !p.AtEnd() {
		t.Errorf("Parser not at end: pos %d", p.Pos())
	}

	tests := []struct {
		lit    string
		actual string
		eof    bool
	}{
		{"no", "he", false},
		{"help", "hell", false},
		{"hello, world", "hello", false},
		{"x", "h", false},
	}
	for _, tc := range tests {
		p := jcomb.NewString("hello")
		_, err := p.String(tc.lit)
		f := mustFailure(t, err)
		if p.Pos() != 0 {
			t.Errorf("String(%q): cursor moved to %d", tc.lit, p.Pos())
		}
		if f.Actual != tc.actual || f.EOF != tc.eof {
			t.Errorf("String(%q): got actual %q eof=%v, want %q eof=%v",
				tc.lit, f.Actual, f.EOF, tc.actual, tc.eof)
		}
	}

	t.Run("Atomic", func(t *testing.T) {
		// A partial match of the prefix must not move the cursor.
		p := jcomb.NewString("trux")
		if _, err := p.String("true"); err == nil {
			t.Fatal("String(true) unexpectedly succeeded")
		}
		if p.Pos() != 0 {
			t.Errorf("Cursor at %d after failed match, want 0", p.Pos())
		}
	})
}

func TestTakeWhile(t *testing.T) {
	notO := func(b byte) bool { return b != 'o' }
	isO := func(b byte) bool { return b == 'o' }
	isX := func(b byte) bool { return b == 'x' }

	p := jcomb.NewString("hello")
	if got := p.TakeWhile(isX).StringCopy(); got != "" {
		t.Errorf("TakeWhile(x): got %q, want empty", got)
	}
	if got := p.TakeWhile(notO).StringCopy(); got != "hell" {
		t.Errorf("TakeWhile(!o): got %q, want hell", got)
	}
	if got := p.TakeWhile(isO).StringCopy(); got != "o" {
		t.Errorf("TakeWhile(o): got %q, want o", got)
	}
	if got := p.TakeWhile(notO).StringCopy(); got != "" {
		t.Errorf("TakeWhile at end: got %q, want empty", got)
	}
}

func TestPeek(t *testing.T) {
	p := jcomb.NewString("ab")
	for i := 0; i < 3; i++ {
		if c, ok := p.Peek(); !ok || c != 'a' {
			t.Errorf("Peek: got %q, %v; want a, true", c, ok)
		}
	}
	if p.Pos() != 0 {
		t.Errorf("Peek moved the cursor to %d", p.Pos())
	}
	p.Take(2)
	if c, ok := p.Peek(); ok {
		t.Errorf("Peek at end: got %q, want none", c)
	}
}

func TestRun(t *testing.T) {
	// The furthest failure is reported, not the outermost.
	word := jcomb.Lit("hello")
	pair := func(p *jcomb.Parser) (string, error) {
		if _, err := word(p); err != nil {
			return "", err
		}
		if _, err := p.String(", "); err != nil {
			return "", err
		}
		return word(p)
	}
	f := jcomb.Either(pair, jcomb.Lit("goodbye"))

	p := jcomb.NewString("hello, help")
	_, err := jcomb.Run(p, f)
	if err == nil {
		t.Fatal("Run unexpectedly succeeded")
	}
	fail := mustFailure(t, err)
	want := &jcomb.Failure{
		Pos:      7,
		Location: jcomb.LineCol{Line: 1, Column: 7},
		Expected: []string{`"hello"`},
		Actual:   "help",
	}
	if diff := cmp.Diff(want, fail); diff != "" {
		t.Errorf("Failure (-want, +got):\n%s", diff)
	}
	t.Logf("Error: %v", err)
}

func TestFailureError(t *testing.T) {
	tests := []struct {
		input *jcomb.Failure
		want  string
	}{
		{&jcomb.Failure{Pos: 3, Expected: []string{`"x"`}, Actual: "y"},
			`at offset 3: expected "x", got "y"`},
		{&jcomb.Failure{Pos: 3, Expected: []string{"a", "b", "c"}, EOF: true},
			`at offset 3: expected a, b or c, got end of input`},
		{&jcomb.Failure{
			Pos: 7, Location: jcomb.LineCol{Line: 2, Column: 1},
			Expected: []string{"digit"}, Actual: "}",
		}, `at 2:1 (offset 7): expected digit, got "}"`},
	}
	for _, tc := range tests {
		if got := tc.input.Error(); got != tc.want {
			t.Errorf("Error:\n got %s\nwant %s", got, tc.want)
		}
	}
}

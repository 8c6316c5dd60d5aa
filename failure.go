// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcomb

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Failure is the concrete type of errors reported by parsers.
type Failure struct {
	Pos      int      // byte offset of the failure, 0-based
	Location LineCol  // line and column of Pos; set by Run
	Expected []string // descriptions of what was expected at Pos
	Actual   string   // the conflicting input text, if !EOF
	EOF      bool     // the conflict was the end of input
}

// Error satisfies the error interface.
func (f *Failure) Error() string {
	got := "end of input"
	if !f.EOF {
		got = strconv.Quote(f.Actual)
	}
	where := fmt.Sprintf("offset %d", f.Pos)
	if !f.Location.IsZero() {
		where = fmt.Sprintf("%s (offset %d)", f.Location, f.Pos)
	}
	return fmt.Sprintf("at %s: expected %s, got %s", where, expectLabel(f.Expected), got)
}

// merge returns a copy of f whose expectations include those of g.
// The receiver is not modified.
func (f *Failure) merge(g *Failure) *Failure {
	c := *f
	c.Expected = slices.Clip(c.Expected)
	for _, e := range g.Expected {
		if !slices.Contains(c.Expected, e) {
			c.Expected = append(c.Expected, e)
		}
	}
	return &c
}

// expectLabel makes a human-readable summary of a list of expectations.
func expectLabel(want []string) string {
	switch len(want) {
	case 0:
		return "nothing"
	case 1:
		return want[0]
	}
	last := len(want) - 1
	return strings.Join(want[:last], ", ") + " or " + want[last]
}

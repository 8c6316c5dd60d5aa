// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jcomb/internal/escape"
	"go4.org/mem"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{`\ufffd`, `"\\ufffd"`},
		{"\u2028 \u2029", `"\u2028 \u2029"`},
		{"bad \xff byte", `"bad \ufffd byte"`},
		{"This is the end\v", `"This is the end\u000b"`},
		{"<\x1e>", `"<\u001e>"`},
		{"héllo, 世界", `"héllo, 世界"`},
	}
	for _, tc := range tests {
		got := string(escape.Quote(nil, mem.S(tc.input)))
		if got != tc.want {
			t.Errorf("Quote(%q):\n got %#q\nwant %#q", tc.input, got, tc.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"no escapes", "no escapes"},
		{`a\tb c\n`, "a\tb c\n"},
		{`\"\\\/\b\f\n\r\t`, "\"\\/\b\f\n\r\t"},
		{`\u00e9\u4E16`, "é世"},
		{`\ud83d\ude00!`, "😀!"},
		{`\ud83d alone`, "\ufffd alone"},
		{`\uXYZW`, "\ufffd"},
		{`\q`, "�"},
	}
	for _, tc := range tests {
		got, err := escape.Unquote(mem.S(tc.input))
		if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", tc.input, err)
		} else if string(got) != tc.want {
			t.Errorf("Unquote(%#q): got %q, want %q", tc.input, got, tc.want)
		}
	}

	bad := []struct {
		input  string
		offset int
	}{
		{`abc\`, 3},
		{`\u12`, 0},
		{`x\u`, 1},
		{`\n\t\u00`, 4},
		{`ok \u00e9 \ud83d\u12`, 16},
	}
	for _, tc := range bad {
		got, err := escape.Unquote(mem.S(tc.input))
		if err == nil {
			t.Errorf("Unquote(%#q): got %q, want error", tc.input, got)
			continue
		}
		var e *escape.Error
		if !errors.As(err, &e) {
			t.Errorf("Unquote(%#q): got error %v (%T), want *escape.Error", tc.input, err, err)
		} else if e.Offset != tc.offset {
			t.Errorf("Unquote(%#q): error at offset %d, want %d", tc.input, e.Offset, tc.offset)
		}
	}
}

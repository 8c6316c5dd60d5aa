// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonp_test

import (
	"encoding/json"
	"testing"

	"github.com/creachadair/jcomb/internal/testutil"
	"github.com/creachadair/jcomb/jsonp"

	gojson "github.com/goccy/go-json"
)

func BenchmarkParse(b *testing.B) {
	input := testutil.MustFixture("sample")
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Stdlib", func(b *testing.B) {
		for b.Loop() {
			var v any
			if err := json.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("GoJSON", func(b *testing.B) {
		for b.Loop() {
			var v any
			if err := gojson.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Grammar", func(b *testing.B) {
		for b.Loop() {
			if _, err := jsonp.Parse(input); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Exact", func(b *testing.B) {
		g := jsonp.New()
		g.ExactFractions(true)
		g.DecodeEscapes(true)
		for b.Loop() {
			if _, err := g.Parse(input); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}

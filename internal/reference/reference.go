// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package reference compares parsed values against an independent JSON
// decoder.
package reference

import (
	"github.com/creachadair/jcomb/jsonp"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	json "github.com/goccy/go-json"
)

// Decode decodes data with the reference decoder. Numbers are reported as
// float64, arrays as []any, and objects as map[string]any.
func Decode(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Plain converts v into plain Go values in the form reported by Decode.
// Integers are converted to float64.
func Plain(v jsonp.Value) any { return plain(jsonp.Native(v)) }

func plain(v any) any {
	switch t := v.(type) {
	case int64:
		return float64(t)
	case []any:
		for i, elt := range t {
			t[i] = plain(elt)
		}
	case map[string]any:
		for key, elt := range t {
			t[key] = plain(elt)
		}
	}
	return v
}

// Diff reports the differences between v and the reference decoding of data,
// as a human-readable diff (-want, +got). It returns "" if they agree.
//
// Numbers are compared within the given relative tolerance, which may be 0 to
// require exact equality.
func Diff(data []byte, v jsonp.Value, tolerance float64) (string, error) {
	want, err := Decode(data)
	if err != nil {
		return "", err
	}
	var opts []cmp.Option
	if tolerance > 0 {
		opts = append(opts, cmpopts.EquateApprox(tolerance, 0))
	}
	return cmp.Diff(want, Plain(v), opts...), nil
}

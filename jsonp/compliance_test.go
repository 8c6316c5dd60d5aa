// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonp_test

import (
	"archive/zip"
	"errors"
	"flag"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creachadair/jcomb/internal/reference"
	"github.com/creachadair/jcomb/jsonp"
)

var (
	doCompliance = flag.Bool("compliance-test", false,
		"Run the JSONTestSuite compliance test")
	complianceURL = flag.String("compliance-test-repo", "https://github.com/nst/JSONTestSuite",
		"Compliance test repository URL")
	complianceZip = flag.String("compliance-test-zip", "compliance-suite.zip",
		"Local cache for the compliance test archive")
)

// openSuite returns a reader for the compliance test archive, fetching it
// from the repository if there is no cached copy.
func openSuite(t *testing.T) *zip.Reader {
	t.Helper()

	zf, err := os.Open(*complianceZip)
	if errors.Is(err, fs.ErrNotExist) {
		zf = fetchSuite(t)
	} else if err != nil {
		t.Fatalf("Open archive: %v", err)
	}
	t.Cleanup(func() { zf.Close() })

	fi, err := zf.Stat()
	if err != nil {
		t.Fatalf("Stat archive: %v", err)
	}
	zr, err := zip.NewReader(zf, fi.Size())
	if err != nil {
		t.Fatalf("Open reader: %v", err)
	}
	return zr
}

func fetchSuite(t *testing.T) *os.File {
	t.Helper()

	fullURL := *complianceURL + "/archive/refs/heads/master.zip"
	t.Logf("Fetching %q ...", fullURL)
	rsp, err := http.Get(fullURL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	defer rsp.Body.Close()
	if ctype := rsp.Header.Get("content-type"); ctype != "application/zip" {
		t.Fatalf("Unexpected content-type: %q", ctype)
	}

	zf, err := os.Create(*complianceZip)
	if err != nil {
		t.Fatalf("Create output: %v", err)
	}
	if _, err := io.Copy(zf, rsp.Body); err != nil {
		zf.Close()
		t.Fatalf("Write output: %v", err)
	}
	return zf
}

func mustRead(t *testing.T, f *zip.File) []byte {
	t.Helper()
	rc, err := f.Open()
	if err != nil {
		t.Fatalf("Open %q: %v", f.Name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("Read %q: %v", f.Name, err)
	}
	return data
}

// TestCompliance checks the affirmative (y_*) cases of the test suite
// described by "Parsing JSON is a Minefield" against the strictest settings
// of the grammar, and checks the values parsed against the reference decoder.
//
// The grammar accepts some documents the suite rejects, such as numbers with
// leading zeros or a plus sign, so the negative (n_*) cases are reported but
// do not fail the test. The indeterminate (i_*) cases are not exercised.
func TestCompliance(t *testing.T) {
	if !*doCompliance {
		t.Skip("Skipping compliance test because --compliance-test is false")
	}
	g := jsonp.New()
	g.ExactFractions(true)
	g.DecodeEscapes(true)
	g.AllowAllWhitespace(true)

	var numYes, numYesErrs, numNo, numNoAccepted int
	for _, f := range openSuite(t).File {
		_, tail, ok := strings.Cut(f.Name, "/test_parsing/")
		if !ok || filepath.Ext(tail) != ".json" {
			continue
		}
		tail = strings.TrimSuffix(tail, filepath.Ext(tail))
		tag, _, _ := strings.Cut(tail, "_")
		switch tag {
		case "y":
			numYes++
			t.Run(tail, func(t *testing.T) {
				data := mustRead(t, f)
				v, err := g.Parse(data)
				if err != nil {
					numYesErrs++
					t.Fatalf("Unexpected error: %v", err)
				}
				diff, err := reference.Diff(data, v, 1e-12)
				if err != nil {
					t.Skipf("Reference decoder: %v", err)
				}
				if diff != "" {
					t.Errorf("Value differs from reference (-want, +got):\n%s", diff)
				}
			})
		case "n":
			numNo++
			if v, err := g.Parse(mustRead(t, f)); err == nil {
				numNoAccepted++
				t.Logf("- [accepted] %s: %s", tail, v.JSON())
			}
		case "i":
			// OK, skip silently
		default:
			t.Logf("WARNING: Skipped non-matching filename %q", tail)
		}
	}
	t.Logf("Ran %d positive tests, %d errors", numYes, numYesErrs)
	t.Logf("Ran %d negative tests, %d accepted", numNo, numNoAccepted)
}

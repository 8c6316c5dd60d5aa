// Package testutil defines support code for unit tests.
package testutil

import (
	"embed"
	"io/fs"
	"path"
	"strings"
)

//go:embed testdata/*.json
var testdata embed.FS

// A Fixture is a named JSON document used as test input.
type Fixture struct {
	Name string // base name, without extension
	Data []byte
}

// Fixtures returns the embedded test documents in order by name.
// The documents are in the dialect accepted by the default grammar, and all
// of them are valid JSON.
func Fixtures() []Fixture {
	names, err := fs.Glob(testdata, "testdata/*.json")
	if err != nil {
		panic(err)
	}
	out := make([]Fixture, len(names))
	for i, name := range names {
		data, err := testdata.ReadFile(name)
		if err != nil {
			panic(err)
		}
		out[i] = Fixture{
			Name: strings.TrimSuffix(path.Base(name), ".json"),
			Data: data,
		}
	}
	return out
}

// MustFixture returns the contents of the named fixture, or panics.
func MustFixture(name string) []byte {
	data, err := testdata.ReadFile("testdata/" + name + ".json")
	if err != nil {
		panic(err)
	}
	return data
}

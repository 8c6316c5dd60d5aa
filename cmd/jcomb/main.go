// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jcomb parses JSON documents with the jsonp combinator grammar.
//
// Usage:
//
//	jcomb parse [flags] [file ...]
//	jcomb check [flags] [file ...]
//
// With no file arguments, jcomb reads a single document from stdin.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/creachadair/jcomb/jsonp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tailscale/hujson"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:          "jcomb",
		Short:        "Parse JSON documents with a combinator grammar",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(h))
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newParseCmd(), newCheckCmd())
	return cmd
}

// grammarFlags are the flags shared by commands that parse input.
type grammarFlags struct {
	exact    bool
	escapes  bool
	allSpace bool
	jwcc     bool
}

func (f *grammarFlags) bind(fs *pflag.FlagSet) {
	fs.BoolVar(&f.exact, "exact", false, "scale fractions by the number of digits written")
	fs.BoolVar(&f.escapes, "escapes", false, "decode escape sequences in strings")
	fs.BoolVar(&f.allSpace, "all-space", false, "accept tab and carriage return as whitespace")
	fs.BoolVar(&f.jwcc, "jwcc", false, "accept comments and trailing commas (JWCC)")
}

func (f *grammarFlags) grammar() *jsonp.Grammar {
	g := jsonp.New()
	g.ExactFractions(f.exact)
	g.DecodeEscapes(f.escapes)
	g.AllowAllWhitespace(f.allSpace)
	return g
}

// An input is the contents of one document to parse.
type input struct {
	name string
	data []byte
}

// readInputs reads the named files, or stdin if there are none. If JWCC is
// enabled, comments and trailing commas are removed.
func (f *grammarFlags) readInputs(cmd *cobra.Command, args []string) ([]input, error) {
	var out []input
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		out = append(out, input{name: "<stdin>", data: data})
	}
	for _, name := range args {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		out = append(out, input{name: name, data: data})
	}

	if f.jwcc {
		for i, in := range out {
			std, err := hujson.Standardize(in.data)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", in.name, err)
			}
			slog.Debug("standardized input", "name", in.name, "bytes", len(std))
			out[i].data = std
		}
	}
	return out, nil
}

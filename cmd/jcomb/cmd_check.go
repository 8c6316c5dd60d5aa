// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/creachadair/jcomb/internal/reference"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var gf grammarFlags
	var tolerance float64

	cmd := &cobra.Command{
		Use:   "check [file ...]",
		Short: "Compare parsed values to a reference decoder",
		Long: `Parse each named file, or stdin, and compare the value to the result of
decoding the same input with a reference JSON decoder. Numbers are compared as
float64 values within the given relative tolerance.

Each input is reported as "ok" or "FAIL", and the command fails if any input
did not match.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := gf.readInputs(cmd, args)
			if err != nil {
				return err
			}
			g := gf.grammar()
			w := cmd.OutOrStdout()

			var nfail int
			for _, in := range inputs {
				v, err := g.Parse(in.data)
				if err != nil {
					nfail++
					fmt.Fprintf(w, "FAIL %s: parse: %v\n", in.name, err)
					continue
				}
				diff, err := reference.Diff(in.data, v, tolerance)
				if err != nil {
					nfail++
					slog.Debug("reference decoder rejected input", "name", in.name, "error", err)
					fmt.Fprintf(w, "FAIL %s: accepted input the reference rejects: %v\n", in.name, err)
					continue
				}
				if diff != "" {
					nfail++
					fmt.Fprintf(w, "FAIL %s (-want, +got):\n%s", in.name, diff)
					continue
				}
				fmt.Fprintf(w, "ok   %s\n", in.name)
			}
			if nfail != 0 {
				return fmt.Errorf("%d of %d inputs: %w", nfail, len(inputs), errMismatch)
			}
			return nil
		},
	}

	gf.bind(cmd.Flags())
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0, "relative tolerance for comparing numbers")
	return cmd
}

// errMismatch is reported by check when any input differs from the reference.
var errMismatch = errors.New("values do not match")

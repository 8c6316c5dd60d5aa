// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"log/slog"

	"github.com/creachadair/jcomb/jsonp"
	"github.com/creachadair/jcomb/jsonp/cursor"
	"github.com/spf13/cobra"

	json "github.com/goccy/go-json"
)

func newParseCmd() *cobra.Command {
	var gf grammarFlags
	var indent, sel string

	cmd := &cobra.Command{
		Use:   "parse [file ...]",
		Short: "Parse JSON documents and print their values",
		Long: `Parse each named file, or stdin, as a single JSON value and print the
value in compact form, with object keys in sorted order.

With --select, print only the value reached by a dotted path of object keys
and array indices from the top-level value.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := gf.readInputs(cmd, args)
			if err != nil {
				return err
			}
			g := gf.grammar()
			for _, in := range inputs {
				v, err := g.Parse(in.data)
				if err != nil {
					return fmt.Errorf("%s: %w", in.name, err)
				}
				slog.Debug("parsed input", "name", in.name, "bytes", len(in.data), "type", fmt.Sprintf("%T", v))

				if sel != "" {
					c := cursor.New(v).Down(cursor.ParsePath(sel)...)
					if err := c.Err(); err != nil {
						return fmt.Errorf("%s: select %q: %w", in.name, sel, err)
					}
					v = c.Value()
				}

				out := v.JSON()
				if indent != "" {
					bits, err := json.MarshalIndent(jsonp.Native(v), "", indent)
					if err != nil {
						return fmt.Errorf("%s: format: %w", in.name, err)
					}
					out = string(bits)
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}

	gf.bind(cmd.Flags())
	cmd.Flags().StringVar(&indent, "indent", "", "indent output with this string (default compact)")
	cmd.Flags().StringVar(&sel, "select", "", "print only the value at this dotted path (e.g., list.0.name)")
	return cmd
}

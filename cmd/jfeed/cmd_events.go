// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"

	"github.com/creachadair/jfeed"
	"github.com/spf13/cobra"
)

func newEventsCmd(opts *inputOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "events <path>",
		Short: "Print the parser events for a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var depth int
			h := jfeed.HandlerFunc(func(e jfeed.Event) error {
				if e.Kind == jfeed.EndObject || e.Kind == jfeed.EndArray {
					depth--
				}
				_, err := fmt.Fprintf(out, "%*s%v\n", 2*depth, "", e)
				if e.Kind == jfeed.BeginObject || e.Kind == jfeed.BeginArray {
					depth++
				}
				return err
			})
			return parseFile(args[0], h, opts)
		},
	}
}

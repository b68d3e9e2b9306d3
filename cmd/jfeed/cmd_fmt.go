// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"github.com/creachadair/jfeed/generate"
	"github.com/creachadair/jfeed/tree"
	"github.com/creachadair/jfeed/tree/cursor"
	"github.com/spf13/cobra"
)

func newFmtCmd(opts *inputOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <path>",
		Short: "Parse a JSON document and write it back out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := buildTree(args[0], opts)
			if err != nil {
				return err
			}
			return generate.Write(cmd.OutOrStdout(), cursor.New(root))
		},
	}
}

// buildTree parses the named file into a document tree.
func buildTree(path string, opts *inputOptions) (*tree.Object, error) {
	var b tree.Builder
	if err := parseFile(path, &b, opts); err != nil {
		return nil, err
	}
	for _, loc := range b.Truncations {
		log.Infof("%s: truncated at %v", path, loc)
	}
	return b.Root()
}

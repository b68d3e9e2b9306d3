// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"fmt"

	"github.com/creachadair/jfeed"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *inputOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <path>...",
		Short: "Check that JSON documents are well-formed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}
}

func runCheck(cmd *cobra.Command, paths []string, opts *inputOptions) error {
	nullHandler := jfeed.HandlerFunc(func(jfeed.Event) error { return nil })
	var nbad int
	for _, path := range paths {
		err := parseFile(path, nullHandler, opts)
		if err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			continue
		}
		nbad++
		var serr *jfeed.SyntaxError
		if errors.As(err, &serr) {
			log.Infof("%s: fault %d (%v)", path, serr.Fault, serr.Fault)
		}
		fmt.Fprintln(cmd.OutOrStdout(), err)
	}
	if nbad != 0 {
		return fmt.Errorf("%d of %d documents failed", nbad, len(paths))
	}
	return nil
}

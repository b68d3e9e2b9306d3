// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jfeed checks, prints, and reformats JSON documents using the
// incremental jfeed parser.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("jfeed")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts inputOptions
	var verbose int

	rootCmd := &cobra.Command{
		Use:          "jfeed",
		Short:        "Parse JSON documents incrementally",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.IntVar(&opts.chunk, "chunk", 0, "read buffer size in bytes (default: memory page size)")
	pf.BoolVar(&opts.trailing, "allow-trailing", false, "ignore data after the root object")
	pf.BoolVar(&opts.jwcc, "jwcc", false, "accept comments and trailing commas (JWCC) in the input")
	pf.CountVarP(&verbose, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newCheckCmd(&opts))
	rootCmd.AddCommand(newEventsCmd(&opts))
	rootCmd.AddCommand(newFmtCmd(&opts))
	rootCmd.AddCommand(newGetCmd(&opts))
	return rootCmd
}

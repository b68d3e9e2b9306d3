// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"strconv"

	"github.com/creachadair/jfeed"
	"github.com/creachadair/jfeed/generate"
	"github.com/creachadair/jfeed/tree"
	"github.com/creachadair/jfeed/tree/cursor"
	"github.com/spf13/cobra"
)

func newGetCmd(opts *inputOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <path> <elem>...",
		Short: "Print the value at a path of names and indices in a JSON document",
		Long: `Print the value at a path of names and indices in a JSON document.

Each element that parses as an integer selects an array or object element by
position, counting from the end if negative. Any other element selects an
object member by name. Put "--" before the path if it has a negative index.

Objects and arrays are printed in the generator format, strings are printed
quoted, and other values are printed bare.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := buildTree(args[0], opts)
			if err != nil {
				return err
			}
			c := cursor.New(root).Down(pathElems(args[1:])...)
			if err := c.Err(); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			out := cmd.OutOrStdout()
			switch c.Kind() {
			case tree.ObjectKind, tree.ArrayKind:
				return generate.Write(out, c)
			case tree.StringKind:
				_, err = fmt.Fprintln(out, jfeed.Quote([]byte(c.ReadString())))
			default:
				_, err = fmt.Fprint(out, generate.String(c.Value()))
			}
			return err
		},
	}
}

func pathElems(args []string) []any {
	path := make([]any, len(args))
	for i, arg := range args {
		if v, err := strconv.Atoi(arg); err == nil {
			path[i] = v
		} else {
			path[i] = arg
		}
	}
	return path
}

// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli implements the linediff command line tool.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"znkr.io/linediff/internal/logger"
)

var version = "dev"

// errDifferent is returned by the root command if the documents differ. It's not an error from
// the user's perspective, it only determines the exit status.
var errDifferent = errors.New("documents differ")

// options holds the values of the command line flags.
type options struct {
	caseSensitive    bool
	ignoreWhitespace bool
	minimal          bool
	format           string
	context          int
	width            int
	color            string
	config           string
	verbose          bool
	watch            bool
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "linediff [flags] LEFT RIGHT",
		Short: "Compare two text files line by line",
		Long: `Compares two text files line by line and reports every line as equal, removed or added,
followed by similarity statistics in the stats and json formats.

Use - for LEFT or RIGHT to read that document from stdin. Lines are compared ignoring case unless
--case-sensitive is set.

The exit status is 0 if the documents are equal, 1 if they differ and 2 if an error occurred.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logger.SetVerbose(o.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&o.caseSensitive, "case-sensitive", "c", false, "treat lines that only differ in case as different")
	f.BoolVarP(&o.ignoreWhitespace, "ignore-whitespace", "w", false, "ignore leading, trailing and repeated whitespace")
	f.BoolVar(&o.minimal, "minimal", false, "find a minimal diff instead of scanning sequentially")
	f.StringVarP(&o.format, "format", "f", defaultSettings.format, "output format: "+formatNames())
	f.IntVarP(&o.context, "context", "U", defaultSettings.context, "number of context lines in unified output")
	f.IntVar(&o.width, "width", 0, "width of side-by-side output (default: terminal width)")
	f.StringVar(&o.color, "color", defaultSettings.color, "colorize output: auto, always or never")
	f.StringVar(&o.config, "config", "", "path to a TOML config file (default: "+defaultConfigPath()+")")
	f.BoolVar(&o.watch, "watch", false, "compare again whenever one of the files changes")
	cmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "print diagnostic messages to stderr")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("linediff version %s\n", version)
		},
	}
}

// Execute runs the command line with the process arguments and returns the exit status.
func Execute(ctx context.Context) int {
	return run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	logger.SetOutput(stderr)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errDifferent):
		return 1
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
}

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

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"znkr.io/linediff"
	"znkr.io/linediff/internal/logger"
	"znkr.io/linediff/render"
)

func (o *options) run(cmd *cobra.Command, args []string) error {
	s, err := o.settings(cmd)
	if err != nil {
		return err
	}
	left, right := args[0], args[1]
	if left == "-" && right == "-" {
		return errors.New("only one of LEFT and RIGHT can be read from stdin")
	}

	if o.watch {
		if left == "-" || right == "-" {
			return errors.New("--watch can't be used with stdin")
		}
		// Files may be missing for a moment while they are replaced, keep watching.
		return watchFiles(cmd.Context(), []string{left, right}, func() error {
			if _, err := compareFiles(cmd, left, right, s); err != nil {
				cmd.PrintErrf("error: %v\n", err)
			}
			return nil
		})
	}

	identical, err := compareFiles(cmd, left, right, s)
	if err != nil {
		return err
	}
	if !identical {
		return errDifferent
	}
	return nil
}

// compareFiles compares the documents named left and right, writes the result to the output of
// cmd and reports whether they are identical.
func compareFiles(cmd *cobra.Command, left, right string, s settings) (bool, error) {
	x, err := readInput(cmd.InOrStdin(), left)
	if err != nil {
		return false, err
	}
	y, err := readInput(cmd.InOrStdin(), right)
	if err != nil {
		return false, err
	}

	done := logger.Trace("compare")
	res := linediff.Compare(x, y, s.compare.Apply()...)
	done()
	logger.Info("compared %d with %d lines: %s", res.LeftLines, res.RightLines, render.Summary(res))

	if err := write(cmd.OutOrStdout(), res, s); err != nil {
		return false, err
	}
	return res.Identical(), nil
}

func readInput(stdin io.Reader, name string) (string, error) {
	var (
		b   []byte
		err error
	)
	if name == "-" {
		b, err = io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		b, err = os.ReadFile(name)
		if err != nil {
			return "", err
		}
	}
	logger.Debug("read %s: %d bytes", name, len(b))
	return string(b), nil
}

// write renders res in the configured format.
func write(w io.Writer, res linediff.Result, s settings) error {
	var opts []linediff.Option
	if useColor(s.color, w) {
		opts = append(opts, render.TerminalColors())
	}

	var out string
	switch s.format {
	case "unified":
		out = render.Unified(res, append(opts, render.Context(s.context))...)
	case "listing":
		out = render.Listing(res, opts...)
	case "side-by-side":
		out = render.SideBySide(res, outputWidth(s.width, w), opts...)
	case "stats":
		out = render.Summary(res) + "\n"
	case "json":
		b, err := render.JSON(res)
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		out = string(b) + "\n"
	default:
		panic("never reached")
	}
	_, err := io.WriteString(w, out)
	return err
}

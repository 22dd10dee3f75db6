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

package linediff

import (
	"fmt"
	"strings"

	"znkr.io/linediff/internal/align"
	"znkr.io/linediff/internal/config"
	"znkr.io/linediff/internal/rvecs"
)

// Kind classifies a line in a diff.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	Equal   Kind = iota // The line is present in both documents
	Removed             // The line is only present in the left document
	Added               // The line is only present in the right document
)

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Equal, Removed, Added:
		return []byte(strings.ToLower(k.String())), nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrInvalidArgument, int(k))
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "equal":
		*k = Equal
	case "removed":
		*k = Removed
	case "added":
		*k = Added
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidArgument, text)
	}
	return nil
}

// Record describes a single line of a diff.
type Record struct {
	Kind Kind
	Text string // Original line without the newline character.
	Line int    // One-based line number in the document the line is from, x for Equal.
}

// Result is the outcome of a comparison.
type Result struct {
	Records    []Record // One record per line, in order.
	Stats      Stats    // Statistics derived from Records.
	LeftLines  int      // Number of lines in x.
	RightLines int      // Number of lines in y.
}

// Identical reports whether the compared documents are equal under the comparison options.
func (r Result) Identical() bool {
	return r.Stats.Changes == 0
}

// Split splits text into lines on '\n'. The newline characters are not part of the lines.
//
// An empty text consists of a single empty line and a text ending in '\n' has an empty last line.
func Split(text string) []string {
	return strings.Split(text, "\n")
}

// Compare compares the lines of x and y and returns the classified lines.
//
// If x and y are identical, the result consists of an [Equal] record for every line.
//
// The following options are supported: [CaseSensitive], [IgnoreWhitespace], [Minimal]
func Compare(x, y string, opts ...Option) Result {
	cfg := config.FromOptions(opts, config.Compare)
	return compare(Split(x), Split(y), cfg)
}

// CompareLines compares the documents x and y that have already been split into lines.
//
// The following options are supported: [CaseSensitive], [IgnoreWhitespace], [Minimal]
func CompareLines(x, y []string, opts ...Option) Result {
	cfg := config.FromOptions(opts, config.Compare)
	return compare(x, y, cfg)
}

func compare(x, y []string, cfg config.Config) Result {
	rx, ry := align.Lines(x, y, cfg)
	recs := records(x, y, rx, ry)
	return Result{
		Records:    recs,
		Stats:      Summarize(recs, len(x), len(y)),
		LeftLines:  len(x),
		RightLines: len(y),
	}
}

func records(x, y []string, rx, ry []bool) []Record {
	n, m := len(rx)-1, len(ry)-1

	// Every line matched in x is also matched in y, so this is the exact number of records.
	nrecs := n + m - rvecs.Matches(rx)
	if nrecs == 0 {
		return nil
	}

	out := make([]Record, 0, nrecs)
	for s, t := 0, 0; s < n || t < m; {
		for s < n && rx[s] {
			out = append(out, Record{Kind: Removed, Text: x[s], Line: s + 1})
			s++
		}
		for t < m && ry[t] {
			out = append(out, Record{Kind: Added, Text: y[t], Line: t + 1})
			t++
		}
		for s < n && t < m && !rx[s] && !ry[t] {
			out = append(out, Record{Kind: Equal, Text: x[s], Line: s + 1})
			s++
			t++
		}
	}
	return out
}

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

// Package render formats the result of a line comparison.
//
// The output formats are meant for humans ([Listing], [Unified], [SideBySide], [Summary]) and for
// other programs ([JSON]). None of them is meant to be applied as a patch.
package render

import (
	"fmt"
	"strings"

	"znkr.io/linediff"
	"znkr.io/linediff/internal/config"
	"znkr.io/linediff/render/color"
)

const (
	prefixEqual   = " "
	prefixRemoved = "-"
	prefixAdded   = "+"
)

const reset = "\033[0m"

// Context sets the number of equal lines to include before and after the changes in a hunk
// returned by [Unified]. The default is 3.
func Context(n int) linediff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

// TerminalColors colors the output using ANSI escape sequences. By default, hunk headers are cyan,
// removed lines red, added lines green and equal lines uncolored. Use the options from the
// [color] package to change that.
func TerminalColors(opts ...color.Option) linediff.Option {
	cc := config.ColorConfig{
		HunkHeader: "\033[36m",
		Removed:    "\033[31m",
		Added:      "\033[32m",
	}
	for _, opt := range opts {
		opt(&cc)
	}
	return func(cfg *config.Config) config.Flag {
		cfg.Colors = &cc
		return config.Colors
	}
}

// Listing returns every line of res prefixed with " " if it's equal, "-" if it's removed and "+"
// if it's added.
//
// The following option is supported: [TerminalColors]
func Listing(res linediff.Result, opts ...linediff.Option) string {
	cfg := config.FromOptions(opts, config.Colors)
	p := printer{colors: cfg.Colors}
	for _, r := range res.Records {
		p.record(r)
	}
	return p.String()
}

// Unified returns the changes in res grouped into hunks with the surrounding equal lines. Every
// hunk starts with a "@@ -l,s +l,s @@" header. If there are no changes, the output is empty.
//
// The following options are supported: [Context], [TerminalColors]
func Unified(res linediff.Result, opts ...linediff.Option) string {
	cfg := config.FromOptions(opts, config.Context|config.Colors)
	p := printer{colors: cfg.Colors}
	for h := range hunks(res.Records, cfg.Context) {
		p.line(p.hunkHeader(), fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.s0+1, h.s1-h.s0, h.t0+1, h.t1-h.t0))
		for _, r := range res.Records[h.r0:h.r1] {
			p.record(r)
		}
	}
	return p.String()
}

// Summary returns a one line summary of the statistics in res.
func Summary(res linediff.Result) string {
	st := res.Stats
	return fmt.Sprintf("%s, %s, %s, %d%% similar",
		plural(st.Added, "addition"),
		plural(st.Removed, "removal"),
		plural(st.Changes, "change"),
		st.Similarity)
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}

type printer struct {
	strings.Builder
	colors *config.ColorConfig // nil if uncolored
}

func (p *printer) record(r linediff.Record) {
	switch r.Kind {
	case linediff.Equal:
		p.line(p.color(linediff.Equal), prefixEqual+r.Text)
	case linediff.Removed:
		p.line(p.color(linediff.Removed), prefixRemoved+r.Text)
	case linediff.Added:
		p.line(p.color(linediff.Added), prefixAdded+r.Text)
	}
}

func (p *printer) line(code, text string) {
	if code == "" {
		p.WriteString(text)
	} else {
		p.WriteString(code)
		p.WriteString(text)
		p.WriteString(reset)
	}
	p.WriteByte('\n')
}

func (p *printer) color(k linediff.Kind) string {
	if p.colors == nil {
		return ""
	}
	switch k {
	case linediff.Removed:
		return p.colors.Removed
	case linediff.Added:
		return p.colors.Added
	default:
		return p.colors.Equal
	}
}

func (p *printer) hunkHeader() string {
	if p.colors == nil {
		return ""
	}
	return p.colors.HunkHeader
}

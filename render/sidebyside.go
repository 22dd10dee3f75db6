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

package render

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"znkr.io/linediff"
	"znkr.io/linediff/internal/config"
)

const (
	markEqual   = " "
	markRemoved = "<"
	markAdded   = ">"
	ellipsis    = "..."
	tabWidth    = 4
)

// SideBySide returns res as two columns, the left document on the left and the right document on
// the right. Every row is at most width cells wide, lines that don't fit are truncated. Rows with
// a removed line are marked with "<" and rows with an added line with ">".
//
// The following option is supported: [TerminalColors]
func SideBySide(res linediff.Result, width int, opts ...linediff.Option) string {
	cfg := config.FromOptions(opts, config.Colors)
	p := printer{colors: cfg.Colors}

	// Each row is: <num> <text> <mark> <num> <text>
	nw := len(strconv.Itoa(max(res.LeftLines, res.RightLines)))
	tw := max(1, (width-3)/2-nw-1)

	s, t := 0, 0
	var row strings.Builder
	for _, r := range res.Records {
		row.Reset()
		switch r.Kind {
		case linediff.Equal:
			s++
			t++
			cell(&row, s, nw, r.Text, tw)
			row.WriteString(" " + markEqual + " ")
			cell(&row, t, nw, r.Text, tw)
		case linediff.Removed:
			s++
			cell(&row, s, nw, r.Text, tw)
			row.WriteString(" " + markRemoved)
		case linediff.Added:
			t++
			blank(&row, nw+1+tw)
			row.WriteString(" " + markAdded + " ")
			cell(&row, t, nw, r.Text, tw)
		}
		p.line(p.color(r.Kind), strings.TrimRight(row.String(), " "))
	}
	return p.String()
}

func cell(b *strings.Builder, lineno, nw int, text string, tw int) {
	num := strconv.Itoa(lineno)
	blank(b, nw-len(num))
	b.WriteString(num)
	b.WriteByte(' ')
	text = strings.ReplaceAll(text, "\t", strings.Repeat(" ", tabWidth))
	b.WriteString(runewidth.FillRight(runewidth.Truncate(text, tw, ellipsis), tw))
}

func blank(b *strings.Builder, n int) {
	for range n {
		b.WriteByte(' ')
	}
}

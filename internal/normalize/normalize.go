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

// Package normalize derives the comparison keys used to decide whether two lines are equal.
//
// A key is never shown to users, the original line is always what ends up in a diff.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"znkr.io/linediff/internal/config"
)

// Key returns the comparison key for line under cfg.
func Key(line string, cfg config.Config) string {
	n := newNormalizer(cfg)
	return n.key(line)
}

// Keys returns the comparison keys for all lines. If cfg doesn't require any normalization, lines
// is returned as is.
func Keys(lines []string, cfg config.Config) []string {
	if cfg.CaseSensitive && !cfg.IgnoreWhitespace {
		return lines
	}
	n := newNormalizer(cfg)
	keys := make([]string, len(lines))
	for i, line := range lines {
		keys[i] = n.key(line)
	}
	return keys
}

type normalizer struct {
	fold   *cases.Caser // nil if case sensitive
	spaces bool
}

func newNormalizer(cfg config.Config) normalizer {
	n := normalizer{spaces: cfg.IgnoreWhitespace}
	if !cfg.CaseSensitive {
		// A Caser is stateful, every normalizer needs its own.
		c := cases.Fold()
		n.fold = &c
	}
	return n
}

func (n normalizer) key(line string) string {
	if n.fold != nil {
		line = n.fold.String(line)
	}
	if n.spaces {
		line = collapseSpace(line)
	}
	return line
}

// collapseSpace replaces every run of whitespace with a single space and trims whitespace at both
// ends.
func collapseSpace(s string) string {
	if !strings.ContainsFunc(s, unicode.IsSpace) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i, f := range strings.Fields(s) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(f)
	}
	return sb.String()
}

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

// Package color provides configuration for coloring rendered diffs using ANSI escape sequences.
//
// Specifying colors uses [Select Graphic Rendition parameters]. For example the code below,
// presents the header in bold yellow:
//
//	HunkHeaders(1, 33)
//
// This is equivalent to the following raw ANSI sequence: \033[1;33m. Calling an option without
// parameters removes the color.
//
// It's the responsibility of the caller to ensure that the parameters are correct and supported
// by the underlying terminal.
//
// [Select Graphic Rendition parameters]: https://en.wikipedia.org/wiki/ANSI_escape_code#SGR
package color

import (
	"fmt"
	"strings"

	"znkr.io/linediff/internal/config"
)

// A Option makes it possible to configure custom colors in render.TerminalColors.
type Option func(*config.ColorConfig)

// HunkHeaders colors hunk headers, the "@@ ... @@" part of a unified diff.
func HunkHeaders(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.HunkHeader = code
	}
}

// Equals colors equal lines.
func Equals(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Equal = code
	}
}

// Removals colors removed lines.
func Removals(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Removed = code
	}
}

// Additions colors added lines.
func Additions(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Added = code
	}
}

func format(params []int) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}

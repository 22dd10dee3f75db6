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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// linediff.Option.
package config

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// If set, lines that only differ in case are considered different.
	CaseSensitive bool

	// If set, runs of whitespace are collapsed and leading and trailing whitespace is ignored when
	// comparing lines.
	IgnoreWhitespace bool

	// If set, lines are aligned with a minimal diff instead of the sequential scan.
	Minimal bool

	// Context is the number of matches to include as a prefix and postfix for rendered hunks.
	Context int

	// If set, rendered output is colored using ANSI escape sequences.
	Colors *ColorConfig
}

// ColorConfig holds the ANSI escape sequences used to color rendered output. An empty sequence
// leaves the corresponding part uncolored.
type ColorConfig struct {
	HunkHeader string
	Equal      string
	Removed    string
	Added      string
}

// Default is the default configuration.
var Default = Config{
	CaseSensitive:    false,
	IgnoreWhitespace: false,
	Minimal:          false,
	Context:          3,
	Colors:           nil,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	CaseSensitive Flag = 1 << iota
	IgnoreWhitespace
	Minimal
	Context
	Colors
)

// Compare is the set of flags that affect how lines are compared and aligned.
const Compare = CaseSensitive | IgnoreWhitespace | Minimal

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case CaseSensitive:
		return "linediff.CaseSensitive"
	case IgnoreWhitespace:
		return "linediff.IgnoreWhitespace"
	case Minimal:
		return "linediff.Minimal"
	case Context:
		return "render.Context"
	case Colors:
		return "render.TerminalColors"
	default:
		panic("never reached")
	}
}

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
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"znkr.io/linediff"
	"znkr.io/linediff/internal/logger"
)

// settings is the effective configuration of a run, built from the defaults, the config file and
// the command line flags, in that order.
type settings struct {
	compare linediff.Options
	format  string
	context int
	width   int // 0 means terminal width
	color   string
}

var defaultSettings = settings{
	format:  "unified",
	context: 3,
	color:   "auto",
}

var (
	formats    = []string{"unified", "listing", "side-by-side", "stats", "json"}
	colorModes = []string{"auto", "always", "never"}
)

func formatNames() string {
	return strings.Join(formats, ", ")
}

// fileConfig is the layout of the config file:
//
//	[compare]
//	case_sensitive = false
//	ignore_whitespace = true
//
//	[output]
//	format = "side-by-side"
//	color = "never"
type fileConfig struct {
	// Decoded generically, linediff.ParseOptions validates it.
	Compare map[string]any `toml:"compare"`
	Output  struct {
		Format  *string `toml:"format"`
		Context *int    `toml:"context"`
		Width   *int    `toml:"width"`
		Color   *string `toml:"color"`
	} `toml:"output"`
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "linediff", "config.toml")
}

// loadConfig applies the config file at path to s. A missing file is only an error if it was
// explicitly requested.
func loadConfig(path string, required bool, s *settings) error {
	f, err := os.Open(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			logger.Debug("no config file at %s", path)
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	defer f.Close()

	var fc fileConfig
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&fc); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	opts, err := linediff.ParseOptions(fc.Compare)
	if err != nil {
		return fmt.Errorf("config %s: [compare]: %w", path, err)
	}
	logger.Debug("loaded config from %s", path)

	s.compare = opts
	if v := fc.Output.Format; v != nil {
		s.format = *v
	}
	if v := fc.Output.Context; v != nil {
		s.context = *v
	}
	if v := fc.Output.Width; v != nil {
		s.width = *v
	}
	if v := fc.Output.Color; v != nil {
		s.color = *v
	}
	return nil
}

// settings returns the effective settings for cmd.
func (o *options) settings(cmd *cobra.Command) (settings, error) {
	s := defaultSettings
	path, required := o.config, true
	if path == "" {
		path, required = defaultConfigPath(), false
	}
	if path != "" {
		if err := loadConfig(path, required, &s); err != nil {
			return settings{}, err
		}
	}

	f := cmd.Flags()
	if f.Changed("case-sensitive") {
		s.compare.CaseSensitive = o.caseSensitive
	}
	if f.Changed("ignore-whitespace") {
		s.compare.IgnoreWhitespace = o.ignoreWhitespace
	}
	if f.Changed("minimal") {
		s.compare.Minimal = o.minimal
	}
	if f.Changed("format") {
		s.format = o.format
	}
	if f.Changed("context") {
		s.context = o.context
	}
	if f.Changed("width") {
		s.width = o.width
	}
	if f.Changed("color") {
		s.color = o.color
	}

	if !slices.Contains(formats, s.format) {
		return settings{}, fmt.Errorf("%w: unknown format %q, must be one of %s", linediff.ErrInvalidArgument, s.format, formatNames())
	}
	if !slices.Contains(colorModes, s.color) {
		return settings{}, fmt.Errorf("%w: unknown color mode %q, must be one of %s", linediff.ErrInvalidArgument, s.color, strings.Join(colorModes, ", "))
	}
	if s.context < 0 {
		return settings{}, fmt.Errorf("%w: context must not be negative, got %d", linediff.ErrInvalidArgument, s.context)
	}
	if s.width < 0 {
		return settings{}, fmt.Errorf("%w: width must not be negative, got %d", linediff.ErrInvalidArgument, s.width)
	}
	return s, nil
}

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
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"znkr.io/linediff"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `
[compare]
case_sensitive = true
ignoreWhitespace = true

[output]
format = "side-by-side"
context = 5
width = 100
color = "never"
`)

	s := defaultSettings
	require.NoError(t, loadConfig(path, true, &s))

	assert.Equal(t, settings{
		compare: linediff.Options{CaseSensitive: true, IgnoreWhitespace: true},
		format:  "side-by-side",
		context: 5,
		width:   100,
		color:   "never",
	}, s)
}

func TestLoadConfig_Partial(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", "[output]\nformat = \"stats\"\n")

	s := defaultSettings
	require.NoError(t, loadConfig(path, true, &s))

	want := defaultSettings
	want.format = "stats"
	assert.Equal(t, want, s)
}

func TestLoadConfig_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	s := defaultSettings
	assert.NoError(t, loadConfig(path, false, &s))
	assert.Equal(t, defaultSettings, s)
	assert.Error(t, loadConfig(path, true, &s))
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown-compare-option", "[compare]\nword_diff = true\n", "unknown option \"word_diff\""},
		{"compare-option-not-bool", "[compare]\ncase_sensitive = \"yes\"\n", "must be a boolean"},
		{"unknown-output-option", "[output]\ntheme = \"dark\"\n", "parsing config"},
		{"syntax-error", "[compare\n", "parsing config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "config.toml", tt.content)
			s := defaultSettings
			err := loadConfig(path, true, &s)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("invalid-argument", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "config.toml", "[compare]\nminimal = 1\n")
		s := defaultSettings
		assert.ErrorIs(t, loadConfig(path, true, &s), linediff.ErrInvalidArgument)
	})
}

func TestCompare_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	x := writeFile(t, dir, "x.txt", "Hello")
	y := writeFile(t, dir, "y.txt", "hello")
	cfg := writeFile(t, dir, "config.toml", "[compare]\ncase_sensitive = true\n\n[output]\nformat = \"listing\"\n")

	code, stdout, _ := runCLI(t, "", "--config", cfg, x, y)
	assert.Equal(t, 1, code)
	assert.Equal(t, "-Hello\n+hello\n", stdout)

	// Flags override the config file.
	code, stdout, _ = runCLI(t, "", "--config", cfg, "--case-sensitive=false", "--format", "stats", x, y)
	assert.Equal(t, 0, code)
	assert.Equal(t, "0 additions, 0 removals, 0 changes, 100% similar\n", stdout)
}

func TestCompare_DefaultConfigFile(t *testing.T) {
	dir := t.TempDir()
	x := writeFile(t, dir, "x.txt", "a")
	y := writeFile(t, dir, "y.txt", "b")

	code, stdout, _ := runCLI(t, "", x, y)
	require.Equal(t, 1, code)
	require.Contains(t, stdout, "@@")

	// runCLI points the config directory to an empty directory, populate a new one.
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	t.Setenv("AppData", home)
	configDir, err := os.UserConfigDir()
	require.NoError(t, err)
	writeFile(t, mkdir(t, filepath.Join(configDir, "linediff")), "config.toml", "[output]\nformat = \"stats\"\n")

	var out, errOut strings.Builder
	code = run(context.Background(), []string{x, y}, strings.NewReader(""), &out, &errOut)
	assert.Equal(t, 1, code)
	assert.Equal(t, "1 addition, 1 removal, 2 changes, 0% similar\n", out.String())
}

func mkdir(t *testing.T, dir string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	return dir
}

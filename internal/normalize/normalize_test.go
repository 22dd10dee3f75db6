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

package normalize

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/linediff/internal/config"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		line string
		cfg  config.Config
		want string
	}{
		{
			name: "default-folds-case",
			line: "Hello World",
			cfg:  config.Config{},
			want: "hello world",
		},
		{
			name: "case-sensitive",
			line: "Hello World",
			cfg:  config.Config{CaseSensitive: true},
			want: "Hello World",
		},
		{
			name: "case-sensitive-keeps-whitespace",
			line: "  a \t b  ",
			cfg:  config.Config{CaseSensitive: true},
			want: "  a \t b  ",
		},
		{
			name: "collapse-whitespace",
			line: "  a \t b  ",
			cfg:  config.Config{CaseSensitive: true, IgnoreWhitespace: true},
			want: "a b",
		},
		{
			name: "collapse-and-fold",
			line: "\tFOO   Bar ",
			cfg:  config.Config{IgnoreWhitespace: true},
			want: "foo bar",
		},
		{
			name: "whitespace-only",
			line: " \t ",
			cfg:  config.Config{IgnoreWhitespace: true},
			want: "",
		},
		{
			name: "empty",
			line: "",
			cfg:  config.Config{IgnoreWhitespace: true},
			want: "",
		},
		{
			name: "unicode-folding",
			line: "ΣΊΣΥΦΟΣ",
			cfg:  config.Config{},
			want: "σίσυφοσ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Key(tt.line, tt.cfg)
			if got != tt.want {
				t.Errorf("Key(%q, %+v) = %q, want %q", tt.line, tt.cfg, got, tt.want)
			}
			// Normalizing twice must not change the key.
			if again := Key(got, tt.cfg); again != got {
				t.Errorf("Key(Key(%q)) = %q, want %q", tt.line, again, got)
			}
		})
	}
}

func TestKeys(t *testing.T) {
	lines := []string{"A  b", "c", ""}

	t.Run("no-normalization", func(t *testing.T) {
		got := Keys(lines, config.Config{CaseSensitive: true})
		if &got[0] != &lines[0] {
			t.Errorf("Keys(...) copied lines, want them to be returned as is")
		}
	})

	t.Run("normalization", func(t *testing.T) {
		got := Keys(lines, config.Config{IgnoreWhitespace: true})
		want := []string{"a b", "c", ""}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Keys(...) result are different [-want,+got]:\n%s", diff)
		}
		if lines[0] != "A  b" {
			t.Errorf("Keys(...) modified the input: %q", lines[0])
		}
	})
}

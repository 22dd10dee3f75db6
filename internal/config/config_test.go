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

package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromOptions(t *testing.T) {
	context := func(n int) Option {
		return func(cfg *Config) Flag {
			cfg.Context = n
			return Context
		}
	}
	minimal := func(cfg *Config) Flag {
		cfg.Minimal = true
		return Minimal
	}

	tests := []struct {
		name string
		opts []Option
		want Config
	}{
		{
			name: "default",
			opts: nil,
			want: Default,
		},
		{
			name: "context",
			opts: []Option{context(5)},
			want: Config{Context: 5},
		},
		{
			name: "context-override",
			opts: []Option{context(5), minimal, context(1)},
			want: Config{Context: 1, Minimal: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromOptions(tt.opts, Context|Minimal)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromOptions(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFromOptionsNotAllowed(t *testing.T) {
	defer func() {
		r := recover()
		if r != "Option render.Context not allowed here" {
			t.Errorf("FromOptions(...) panicked with %v", r)
		}
	}()
	FromOptions([]Option{func(cfg *Config) Flag { return Context }}, Compare)
}

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
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"znkr.io/linediff/internal/config"
)

// ErrInvalidArgument is returned if a set of comparison options is malformed.
var ErrInvalidArgument = errors.New("invalid argument")

// Option configures the behavior of comparison functions.
type Option = config.Option

// CaseSensitive makes lines that only differ in case compare as different. By default, case is
// ignored.
func CaseSensitive() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.CaseSensitive = true
		return config.CaseSensitive
	}
}

// IgnoreWhitespace makes lines compare equal if they only differ in the amount of whitespace
// between words or in leading and trailing whitespace.
func IgnoreWhitespace() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreWhitespace = true
		return config.IgnoreWhitespace
	}
}

// Minimal aligns the documents with a shortest edit script instead of the default sequential scan.
//
// This changes the output: with the default scan a line inserted in the middle of a document
// turns all following lines into changes, with this option only the inserted line is reported.
func Minimal() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Minimal = true
		return config.Minimal
	}
}

// Options is the decoded form of the comparison options. It's used where options come from
// configuration files or other programs.
type Options struct {
	CaseSensitive    bool
	IgnoreWhitespace bool
	Minimal          bool
}

// Apply returns the options described by o.
func (o Options) Apply() []Option {
	var opts []Option
	if o.CaseSensitive {
		opts = append(opts, CaseSensitive())
	}
	if o.IgnoreWhitespace {
		opts = append(opts, IgnoreWhitespace())
	}
	if o.Minimal {
		opts = append(opts, Minimal())
	}
	return opts
}

// optionKeys maps the accepted keys to the fields they set. Both camel case and snake case
// spellings are accepted.
var optionKeys = map[string]func(*Options) *bool{
	"caseSensitive":     func(o *Options) *bool { return &o.CaseSensitive },
	"case_sensitive":    func(o *Options) *bool { return &o.CaseSensitive },
	"ignoreWhitespace":  func(o *Options) *bool { return &o.IgnoreWhitespace },
	"ignore_whitespace": func(o *Options) *bool { return &o.IgnoreWhitespace },
	"minimal":           func(o *Options) *bool { return &o.Minimal },
}

// ParseOptions decodes options from a generic map, as produced by decoding JSON or TOML.
//
// Every key must be one of caseSensitive, ignoreWhitespace (or their snake case spelling) or
// minimal and every value must be a boolean. Otherwise, the returned error wraps
// [ErrInvalidArgument]. Missing keys keep their default value.
func ParseOptions(m map[string]any) (Options, error) {
	var o Options

	// Sort to report errors deterministically.
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		field, ok := optionKeys[k]
		if !ok {
			return Options{}, fmt.Errorf("%w: unknown option %q", ErrInvalidArgument, k)
		}
		b, ok := m[k].(bool)
		if !ok {
			return Options{}, fmt.Errorf("%w: option %q must be a boolean, got %T", ErrInvalidArgument, k, m[k])
		}
		*field(&o) = b
	}
	return o, nil
}

// UnmarshalJSON implements [json.Unmarshaler] with the validation of [ParseOptions].
func (o *Options) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	opts, err := ParseOptions(m)
	if err != nil {
		return err
	}
	*o = opts
	return nil
}

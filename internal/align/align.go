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

// Package align pairs the lines of two documents and marks the ones that are removed from the
// left document or added by the right document.
//
// The default aligner is a sequential positional scan. It walks both documents with one cursor
// each and never looks ahead: when the lines under the cursors differ, the left line is removed.
// Once the left document is exhausted, the remaining lines of the right document are added. This
// means that a line inserted in the middle of an otherwise identical document turns every line
// after it into a removal followed by an addition.
//
// The minimal aligner finds a shortest edit script instead. It produces different output for the
// same input and is only used if explicitly requested.
package align

import (
	"znkr.io/linediff/internal/config"
	"znkr.io/linediff/internal/normalize"
	"znkr.io/linediff/internal/rvecs"
)

// Lines aligns x and y using the aligner selected by cfg and returns the result vectors.
func Lines(x, y []string, cfg config.Config) (rx, ry []bool) {
	kx, ky := normalize.Keys(x, cfg), normalize.Keys(y, cfg)
	if cfg.Minimal {
		return minimal(kx, ky)
	}
	return scan(kx, ky)
}

// scan aligns x and y with a sequential positional scan.
func scan(x, y []string) (rx, ry []bool) {
	n, m := len(x), len(y)
	rx, ry = rvecs.Make(n, m)
	i, j := 0, 0
	for i < n || j < m {
		switch {
		case i < n && j < m && x[i] == y[j]:
			i++
			j++
		case i < n:
			rx[i] = true
			i++
		default:
			ry[j] = true
			j++
		}
	}
	return rx, ry
}

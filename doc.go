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

// Package linediff compares two text documents line by line.
//
// [Compare] splits both documents into lines, aligns them and classifies every line as [Equal],
// [Removed] or [Added]. The result also carries summary statistics, see [Stats].
//
// Lines are compared on a normalized key: by default the comparison ignores case, use
// [CaseSensitive] to change that. [IgnoreWhitespace] makes runs of whitespace insignificant. The
// records in a [Result] always contain the original, unmodified lines.
//
// Alignment: By default, lines are aligned with a sequential scan that never looks ahead. When the
// current lines of both documents differ, the line from the left document is reported as removed.
// Lines from the right document are only reported as added after the left document is exhausted.
// This is cheap, deterministic and runs in O(N) time where N = len(x) + len(y), but a single line
// inserted in the middle of a document causes all following lines to be reported as changed.
// With [Minimal], the alignment is a shortest edit script instead. The two modes produce different
// output for the same input.
//
// For rendering results as unified diffs, listings or side by side, see [znkr.io/linediff/render].
//
// [znkr.io/linediff/render]: https://pkg.go.dev/znkr.io/linediff/render
package linediff

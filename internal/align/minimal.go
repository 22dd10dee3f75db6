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

package align

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/linediff/internal/rvecs"
)

// minimal aligns x and y with a shortest edit script.
//
// The lines are compared in diffmatchpatch's line mode. Every key is terminated by a newline so
// that each of them becomes exactly one line there, keys never contain a newline themselves.
func minimal(x, y []string) (rx, ry []bool) {
	rx, ry = rvecs.Make(len(x), len(y))

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0 // no deadline, we want a minimal diff
	cx, cy, lines := dmp.DiffLinesToChars(join(x), join(y))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(cx, cy, false), lines)

	s, t := 0, 0
	for _, d := range diffs {
		n := strings.Count(d.Text, "\n")
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			s += n
			t += n
		case diffmatchpatch.DiffDelete:
			for range n {
				rx[s] = true
				s++
			}
		case diffmatchpatch.DiffInsert:
			for range n {
				ry[t] = true
				t++
			}
		}
	}
	return rx, ry
}

func join(lines []string) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	return sb.String()
}

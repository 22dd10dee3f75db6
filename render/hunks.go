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

package render

import (
	"iter"

	"znkr.io/linediff"
)

// hunk describes a sequence of consecutive records with changes.
type hunk struct {
	r0, r1 int // Start and end of the hunk in the records.
	s0, s1 int // Start and end of the hunk in x.
	t0, t1 int // Start and end of the hunk in y.
}

// hunks groups the changes in recs into hunks with up to context equal records before and after
// them. Hunks that would share equal records are merged.
func hunks(recs []linediff.Record, context int) iter.Seq[hunk] {
	return func(yield func(hunk) bool) {
		s, t := 0, 0           // current line in x, y
		r0, s0, t0 := -1, 0, 0 // start of the current hunk
		run := 0               // number of consecutive equal records
		for k, r := range recs {
			if r.Kind == linediff.Equal {
				s++
				t++
				run++

				// Active in-progress hunk and we've seen enough equal records that the context of
				// the next hunk can't overlap, finish the hunk.
				if r0 >= 0 && run > 2*context {
					Δ := run - context
					if !yield(hunk{r0, k + 1 - Δ, s0, s - Δ, t0, t - Δ}) {
						return
					}
					r0 = -1
				}
				continue
			}

			// If we're not inside a hunk, start a new one including the preceding context.
			if r0 < 0 {
				back := min(run, context)
				r0, s0, t0 = k-back, s-back, t-back
			}
			run = 0
			if r.Kind == linediff.Removed {
				s++
			} else {
				t++
			}
		}
		if r0 >= 0 {
			Δ := max(0, run-context)
			yield(hunk{r0, len(recs) - Δ, s0, s - Δ, t0, t - Δ})
		}
	}
}

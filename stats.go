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

// Stats summarizes a diff.
type Stats struct {
	Added      int // Number of Added records.
	Removed    int // Number of Removed records.
	Changes    int // Added + Removed.
	Similarity int // Percentage of Equal records relative to the longer document, 0 to 100.
}

// Summarize computes the statistics for records that were produced by comparing documents with
// leftLines and rightLines lines.
//
// The similarity is the number of equal lines divided by the number of lines in the longer
// document, in percent, rounded half up. Two empty documents are 100% similar.
func Summarize(records []Record, leftLines, rightLines int) Stats {
	var st Stats
	equal := 0
	for _, r := range records {
		switch r.Kind {
		case Equal:
			equal++
		case Removed:
			st.Removed++
		case Added:
			st.Added++
		}
	}
	st.Changes = st.Added + st.Removed

	total := max(leftLines, rightLines)
	if total <= 0 {
		st.Similarity = 100
		return st
	}
	st.Similarity = min(100, (200*equal+total)/(2*total))
	return st
}

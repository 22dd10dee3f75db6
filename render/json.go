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
	"encoding/json"

	"znkr.io/linediff"
)

type jsonRecord struct {
	Kind linediff.Kind `json:"kind"`
	Text string        `json:"text"`
	Line int           `json:"line"`
}

type jsonStats struct {
	Added      int `json:"added"`
	Removed    int `json:"removed"`
	Changes    int `json:"changes"`
	Similarity int `json:"similarity"`
}

type jsonResult struct {
	Records    []jsonRecord `json:"records"`
	Stats      jsonStats    `json:"stats"`
	LeftLines  int          `json:"leftLines"`
	RightLines int          `json:"rightLines"`
}

// JSON returns res encoded as an indented JSON object with the fields records, stats, leftLines
// and rightLines. Record kinds are encoded as "equal", "removed" and "added".
func JSON(res linediff.Result) ([]byte, error) {
	out := jsonResult{
		Records: make([]jsonRecord, len(res.Records)),
		Stats: jsonStats{
			Added:      res.Stats.Added,
			Removed:    res.Stats.Removed,
			Changes:    res.Stats.Changes,
			Similarity: res.Stats.Similarity,
		},
		LeftLines:  res.LeftLines,
		RightLines: res.RightLines,
	}
	for i, r := range res.Records {
		out.Records[i] = jsonRecord(r)
	}
	return json.MarshalIndent(out, "", "  ")
}

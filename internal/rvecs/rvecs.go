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

// Package rvecs contains functions to work with the result vectors, the internal representation
// that's produced by the aligners and is then translated to a user facing API.
//
// For inputs x and y, rx[s] is set if the s-th line of x was removed and ry[t] is set if the t-th
// line of y was added. Both vectors have one extra element that is never set, it acts as a
// sentinel when walking them.
package rvecs

// Make allocates result vectors for inputs with n and m lines.
func Make(n, m int) (rx, ry []bool) {
	r := make([]bool, n+m+2)
	rx = r[: n+1 : n+1]
	ry = r[n+1:]
	return
}

// Matches returns the number of lines in x that are matched by a line in y.
func Matches(rx []bool) int {
	n := 0
	for _, removed := range rx[:len(rx)-1] {
		if !removed {
			n++
		}
	}
	return n
}

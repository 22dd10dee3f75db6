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

package render_test

import (
	"fmt"

	"znkr.io/linediff"
	"znkr.io/linediff/render"
)

func ExampleUnified() {
	x := "one\ntwo\nthree\nfour\nfive\nsix\nseven\neight\nnine"
	y := "one\nthree\nfour\nfive\nsix\nseven\neight\nnine"

	res := linediff.Compare(x, y)
	fmt.Print(render.Unified(res, render.Context(1)))
	fmt.Println(render.Summary(res))
	// Output:
	// @@ -1,3 +1,2 @@
	//  one
	// -two
	//  three
	// 0 additions, 1 removal, 1 change, 89% similar
}

func ExampleListing() {
	res := linediff.Compare("a\nb\nc", "a\nX\nb\nc")
	fmt.Print(render.Listing(res))
	// Output:
	//  a
	// -b
	// -c
	// +X
	// +b
	// +c
}

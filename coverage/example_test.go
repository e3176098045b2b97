// Copyright 2026 go-coverage Authors
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

package coverage_test

import (
	"fmt"

	"github.com/ajroetker/go-coverage/coverage"
)

func ExampleAccumulate() {
	// One scanline: an edge enters a pixel at 25% coverage, fills the next
	// pixel completely, then a right edge uncovers half.
	deltas := []float32{0.25, 0.75, 0, -0.5}

	row := make([]uint8, len(deltas))
	coverage.Accumulate(deltas, row)

	fmt.Printf("% x\n", row)
	// Output: 3f ff ff 7f
}

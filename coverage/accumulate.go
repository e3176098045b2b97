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

package coverage

// coverageScale quantizes a saturated coverage value to [0, 255]:
// min(|sum|, 1) * 255.5 truncated. The extra 0.5 makes the truncating
// float-to-int conversion round to nearest; 255.5 * 1.0 still truncates to
// 255. The same constant and the same truncating conversion are used by
// every implementation so that they agree whenever their running sums
// agree.
const coverageScale = 255.5

// coverageByte is the shared clamp-and-scale step: the magnitude of the
// running sum, saturated to 1.0 and quantized to a byte. The vectorized
// paths apply the identical operations lane-wise.
func coverageByte(sum float32) uint8 {
	y := sum
	if y < 0 {
		y = -y
	}
	if y > 1 {
		y = 1
	}
	return uint8(coverageScale * y)
}

// AccumulateScalar is the reference implementation. It processes one delta
// at a time and writes min(len(src), len(dst)) bytes. Output is
// bit-for-bit reproducible across calls.
func AccumulateScalar(src []float32, dst []uint8) {
	n := min(len(src), len(dst))
	var sum float32
	for i := 0; i < n; i++ {
		sum += src[i]
		dst[i] = coverageByte(sum)
	}
}

// Accumulate converts coverage deltas to coverage bytes using the best
// implementation for the current platform. It writes
// min(len(src), len(dst)) bytes; lengths that are not a multiple of the
// vector width are finished with a scalar tail that continues from the
// carried running sum.
func Accumulate(src []float32, dst []uint8) {
	accumulateImpl(src, dst)
}

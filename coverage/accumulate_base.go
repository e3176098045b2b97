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

import "github.com/ajroetker/go-coverage/vec"

// BaseAccumulate is the width-generic form of the vectorized algorithm,
// written against the portable vec ops. The archsimd kernels in
// accumulate_simd.go are hand-specialized versions of exactly this
// function; it also serves as their test oracle on any lane width.
func BaseAccumulate(src []float32, dst []uint8) {
	n := min(len(src), len(dst))
	if n == 0 {
		return
	}

	lanes := vec.MaxLanes[float32]()
	one := vec.Set[float32](1.0)
	scale := vec.Set[float32](coverageScale)
	buf := make([]float32, lanes)

	carry := float32(0)
	i := 0
	for ; i+lanes <= n; i += lanes {
		v := vec.Load(src[i:])
		v, carry = BaseAccumulateChunk(v, carry)

		// Clamp-and-scale lane-wise, then narrow float32 → uint8 through
		// the lane buffer. Go's conversion truncates, matching coverageByte.
		y := vec.Mul(vec.Min(vec.Abs(v), one), scale)
		vec.Store(y, buf)
		for j := 0; j < lanes; j++ {
			dst[i+j] = uint8(buf[j])
		}
	}

	// Scalar tail continues from the carried running sum.
	for ; i < n; i++ {
		carry += src[i]
		dst[i] = coverageByte(carry)
	}
}

// BaseAccumulateChunk turns one chunk of deltas into running sums: lane j
// of the result holds carry + v[0] + ... + v[j], and the returned carry is
// the last lane, ready for the next chunk. The chunk-local prefix sum is
// the Hillis-Steele shift-and-add tree:
//
//	[a, b, c, d] + slide1 -> [a, a+b, b+c, c+d]
//	            + slide2 -> [a, a+b, a+b+c, a+b+c+d]
//
// Two vector adds replace a four-long serial dependency chain; each
// doubling of the lane count costs one more step. Keeping the carry as an
// explicit value (rather than package state) keeps the fold reentrant.
func BaseAccumulateChunk(v vec.Vec[float32], carry float32) (vec.Vec[float32], float32) {
	n := v.NumLanes()

	if n >= 2 {
		v = vec.Add(v, vec.SlideUpLanes(v, 1))
	}
	if n >= 4 {
		v = vec.Add(v, vec.SlideUpLanes(v, 2))
	}
	if n >= 8 {
		v = vec.Add(v, vec.SlideUpLanes(v, 4))
	}
	if n >= 16 {
		v = vec.Add(v, vec.SlideUpLanes(v, 8))
	}

	v = vec.Add(v, vec.Set[float32](carry))
	return v, vec.GetLane(v, n-1)
}

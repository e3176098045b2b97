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

//go:build amd64 && goexperiment.simd

package coverage

import (
	"simd/archsimd"

	"github.com/ajroetker/go-coverage/vec"
)

// accumulateImpl is the SIMD implementation. Uses AVX2 (8 lanes) if
// available, otherwise the 128-bit baseline (4 lanes).
func accumulateImpl(src []float32, dst []uint8) {
	if vec.CurrentLevel() == vec.DispatchScalar {
		// COVERAGE_NO_SIMD forces the reference path.
		AccumulateScalar(src, dst)
		return
	}
	if archsimd.X86.AVX2() {
		Accumulate_AVX2_F32x8(src, dst)
		return
	}
	Accumulate_SSE2_F32x4(src, dst)
}

// Accumulate_AVX2_F32x8 accumulates coverage deltas 8 lanes at a time.
//
// The lane slides of the prefix-sum tree go through a zero-padded stack
// window: the chunk is stored at pad[8:16] and reloaded at pad[8-k:] to
// slide up by k lanes with zero fill. The store forwards from L1, and the
// three store/load/add rounds replace an 8-long serial float dependency
// chain.
func Accumulate_AVX2_F32x8(src []float32, dst []uint8) {
	n := min(len(src), len(dst))

	one := archsimd.BroadcastFloat32x8(1.0)
	zero := archsimd.BroadcastFloat32x8(0)
	scale := archsimd.BroadcastFloat32x8(coverageScale)
	offset := archsimd.BroadcastFloat32x8(0)

	var pad [16]float32 // pad[:8] stays zero for the slide fill
	var out [8]float32

	carry := float32(0)
	i := 0
	for ; i+8 <= n; i += 8 {
		x := archsimd.LoadFloat32x8Slice(src[i:])

		// Shift-and-add prefix tree: slide up by 1, 2, then 4 lanes.
		// Lane j then holds src[i] + ... + src[i+j].
		x.StoreSlice(pad[8:])
		x = x.Add(archsimd.LoadFloat32x8Slice(pad[7:]))
		x.StoreSlice(pad[8:])
		x = x.Add(archsimd.LoadFloat32x8Slice(pad[6:]))
		x.StoreSlice(pad[8:])
		x = x.Add(archsimd.LoadFloat32x8Slice(pad[4:]))

		// Promote chunk-local sums to global running sums.
		x = x.Add(offset)

		// |x|, saturate to 1.0, scale to [0, 255.5).
		y := zero.Sub(x).Max(x)
		y = y.Min(one).Mul(scale)

		// Narrow float32 → uint8 through the lane buffer; the truncating
		// conversion is the same one coverageByte uses.
		y.StoreSlice(out[:])
		for j := range 8 {
			dst[i+j] = uint8(out[j])
		}

		carry = x.GetHi().GetElem(3)
		offset = archsimd.BroadcastFloat32x8(carry)
	}

	// Scalar tail continues from the carried running sum.
	for ; i < n; i++ {
		carry += src[i]
		dst[i] = coverageByte(carry)
	}
}

// Accumulate_SSE2_F32x4 accumulates coverage deltas 4 lanes at a time.
// Same construction as the AVX2 kernel with a two-round prefix tree.
func Accumulate_SSE2_F32x4(src []float32, dst []uint8) {
	n := min(len(src), len(dst))

	one := archsimd.BroadcastFloat32x4(1.0)
	zero := archsimd.BroadcastFloat32x4(0)
	scale := archsimd.BroadcastFloat32x4(coverageScale)
	offset := archsimd.BroadcastFloat32x4(0)

	var pad [8]float32 // pad[:4] stays zero for the slide fill
	var out [4]float32

	carry := float32(0)
	i := 0
	for ; i+4 <= n; i += 4 {
		x := archsimd.LoadFloat32x4Slice(src[i:])

		x.StoreSlice(pad[4:])
		x = x.Add(archsimd.LoadFloat32x4Slice(pad[3:]))
		x.StoreSlice(pad[4:])
		x = x.Add(archsimd.LoadFloat32x4Slice(pad[2:]))

		x = x.Add(offset)

		y := zero.Sub(x).Max(x)
		y = y.Min(one).Mul(scale)

		y.StoreSlice(out[:])
		for j := range 4 {
			dst[i+j] = uint8(out[j])
		}

		carry = x.GetElem(3)
		offset = archsimd.BroadcastFloat32x4(carry)
	}

	for ; i < n; i++ {
		carry += src[i]
		dst[i] = coverageByte(carry)
	}
}

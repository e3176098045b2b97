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

// Package coverage converts signed per-sample coverage deltas into pixel
// coverage bytes, the final stage of a scanline antialiasing pipeline.
//
// A vector rasterizer emits, for each sample position, a signed float32
// delta such that the running sum of deltas is the accumulated signed
// coverage at that position. This package computes that running sum, takes
// its magnitude, saturates it to [0, 1] and quantizes to a byte:
//
//	dst[i] = uint8(255.5 * min(|src[0] + ... + src[i]|, 1))
//
// Accumulate dispatches to the fastest implementation for the current CPU;
// AccumulateScalar is the one-element-at-a-time reference that defines the
// exact semantics. The running sum is inherently serial, so the vectorized
// paths use a shift-and-add prefix-sum tree within each chunk of lanes and
// carry a single scalar between chunks. Floating-point addition is not
// associative, so the reassociated vector sums can differ from the scalar
// reference in the last ULP on long sequences, which may move a quantized
// byte by one; callers needing bit-exact output should use
// AccumulateScalar.
//
// All functions are pure: no allocation on the dispatched paths, no
// retained references, and no shared mutable state, so concurrent calls on
// disjoint buffers are safe.
package coverage

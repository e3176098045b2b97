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

// Package vec provides the portable lane-level operations used by the
// coverage kernels, with runtime CPU dispatch.
//
// Operations are written once against Vec[T] and run at the lane width of
// the best SIMD level detected at startup (AVX2, AVX-512) or fall back to
// 128-bit-equivalent scalar code. Set COVERAGE_NO_SIMD to force the scalar
// path.
//
// Basic usage:
//
//	a := vec.Load(deltas)
//	b := vec.Add(a, vec.SlideUpLanes(a, 1))
//	vec.Store(b, sums)
package vec

// Floats is a constraint for Go-native floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector handle. In base (scalar) mode it wraps a slice;
// the lane count is fixed at creation to MaxLanes[T]() for the current
// dispatch width.
//
// Vec instances should not be created directly; use Load, Set, or Zero.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in
// performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
// This is the method form of the vec.Store function.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

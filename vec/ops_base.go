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

package vec

import "unsafe"

// This file provides pure Go (scalar) implementations of the lane
// operations. The amd64 goexperiment.simd kernels in the coverage package
// bypass these and work on archsimd types directly; this portable form is
// the reference for their semantics and the fallback everywhere else.

// MaxLanes returns the number of lanes of type T that fit in a vector at
// the current dispatch width.
func MaxLanes[T Lanes]() int {
	var zero T
	return CurrentWidth() / int(unsafe.Sizeof(zero))
}

// Load creates a vector by loading data from a slice.
func Load[T Lanes](src []T) Vec[T] {
	n := MaxLanes[T]()
	if len(src) < n {
		n = len(src)
	}
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := len(v.data)
	if len(dst) < n {
		n = len(dst)
	}
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	return Vec[T]{data: data}
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := len(a.data)
	if len(b.data) < n {
		n = len(b.data)
	}
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	n := len(a.data)
	if len(b.data) < n {
		n = len(b.data)
	}
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: result}
}

// Abs computes absolute value.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i := 0; i < len(v.data); i++ {
		val := v.data[i]
		if val < 0 {
			result[i] = -val
		} else {
			result[i] = val
		}
	}
	return Vec[T]{data: result}
}

// Min returns element-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	n := len(a.data)
	if len(b.data) < n {
		n = len(b.data)
	}
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if a.data[i] < b.data[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// Max returns element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	n := len(a.data)
	if len(b.data) < n {
		n = len(b.data)
	}
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if a.data[i] > b.data[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// SlideUpLanes shifts lanes toward higher indices by count, filling the
// vacated low lanes with zero: result[i] = v[i-count] for i >= count.
func SlideUpLanes[T Lanes](v Vec[T], count int) Vec[T] {
	n := len(v.data)
	if count < 0 {
		count = 0
	}
	if count > n {
		count = n
	}
	result := make([]T, n)
	copy(result[count:], v.data[:n-count])
	return Vec[T]{data: result}
}

// GetLane returns the value of the given lane, or zero if the index is out
// of range.
func GetLane[T Lanes](v Vec[T], lane int) T {
	if lane < 0 || lane >= len(v.data) {
		var zero T
		return zero
	}
	return v.data[lane]
}

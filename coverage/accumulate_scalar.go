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

//go:build !amd64 || !goexperiment.simd

package coverage

// accumulateImpl is the scalar-only implementation. Without archsimd the
// emulated vec path is slower than the plain loop, so the dispatched entry
// point goes straight to the reference.
func accumulateImpl(src []float32, dst []uint8) {
	AccumulateScalar(src, dst)
}

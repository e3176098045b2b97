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

import (
	"fmt"
	"math/rand"
	"testing"
)

func BenchmarkAccumulate(b *testing.B) {
	rng := rand.New(rand.NewSource(3))

	for _, size := range []int{64, 1024, 16384} {
		src := exactDeltas(rng, size)
		dst := make([]uint8, size)

		b.Run(fmt.Sprintf("Scalar/%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(size) * 4)
			for i := 0; i < b.N; i++ {
				AccumulateScalar(src, dst)
			}
		})

		b.Run(fmt.Sprintf("Dispatched/%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(size) * 4)
			for i := 0; i < b.N; i++ {
				Accumulate(src, dst)
			}
		})

		b.Run(fmt.Sprintf("Base/%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(size) * 4)
			for i := 0; i < b.N; i++ {
				BaseAccumulate(src, dst)
			}
		})
	}
}

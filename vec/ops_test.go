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

import (
	"slices"
	"testing"
)

func TestDispatchState(t *testing.T) {
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName %q does not match CurrentLevel %q",
			CurrentName(), CurrentLevel().String())
	}
	switch CurrentWidth() {
	case 16, 32, 64:
	default:
		t.Errorf("unexpected vector width %d", CurrentWidth())
	}
}

func TestNoSimdEnv(t *testing.T) {
	t.Setenv("COVERAGE_NO_SIMD", "")
	if NoSimdEnv() {
		t.Error("NoSimdEnv = true with COVERAGE_NO_SIMD empty")
	}
	t.Setenv("COVERAGE_NO_SIMD", "1")
	if !NoSimdEnv() {
		t.Error("NoSimdEnv = false with COVERAGE_NO_SIMD=1")
	}
}

func TestNoSimdEnvForcesScalar(t *testing.T) {
	// The variable is read once at init, so this observes the level chosen
	// at process start. Run the package with COVERAGE_NO_SIMD=1 to exercise
	// the forced-scalar branch.
	if !NoSimdEnv() {
		t.Skip("COVERAGE_NO_SIMD not set for this process")
	}
	if CurrentLevel() != DispatchScalar {
		t.Errorf("COVERAGE_NO_SIMD set but dispatch level is %s", CurrentLevel())
	}
	if CurrentWidth() != 16 {
		t.Errorf("scalar mode width = %d, want 16", CurrentWidth())
	}
}

func TestMaxLanes(t *testing.T) {
	if got := MaxLanes[float32](); got != CurrentWidth()/4 {
		t.Errorf("MaxLanes[float32] = %d, want %d", got, CurrentWidth()/4)
	}
	if got := MaxLanes[float64](); got != CurrentWidth()/8 {
		t.Errorf("MaxLanes[float64] = %d, want %d", got, CurrentWidth()/8)
	}
	if got := MaxLanes[uint8](); got != CurrentWidth() {
		t.Errorf("MaxLanes[uint8] = %d, want %d", got, CurrentWidth())
	}
}

func TestLoadStoreRoundTrip(t *testing.T) {
	lanes := MaxLanes[float32]()
	src := make([]float32, lanes)
	for i := range src {
		src[i] = float32(i) - 1.5
	}

	v := Load(src)
	if v.NumLanes() != lanes {
		t.Fatalf("NumLanes = %d, want %d", v.NumLanes(), lanes)
	}

	dst := make([]float32, lanes)
	Store(v, dst)
	if !slices.Equal(src, dst) {
		t.Errorf("round trip mismatch: got %v, want %v", dst, src)
	}

	// Method form behaves the same.
	clear(dst)
	v.Store(dst)
	if !slices.Equal(src, dst) {
		t.Errorf("method round trip mismatch: got %v, want %v", dst, src)
	}
}

func TestLoadShortSlice(t *testing.T) {
	src := []float32{1, 2}
	v := Load(src)
	if v.NumLanes() > 2 {
		t.Fatalf("Load of short slice produced %d lanes", v.NumLanes())
	}
	if !slices.Equal(v.Data(), src[:v.NumLanes()]) {
		t.Errorf("Data = %v, want prefix of %v", v.Data(), src)
	}
}

func TestSetZero(t *testing.T) {
	s := Set[float32](2.5)
	for i, got := range s.Data() {
		if got != 2.5 {
			t.Errorf("Set lane %d = %v, want 2.5", i, got)
		}
	}
	z := Zero[float32]()
	for i, got := range z.Data() {
		if got != 0 {
			t.Errorf("Zero lane %d = %v, want 0", i, got)
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := Load([]float32{1, -2, 3, -4})
	b := Load([]float32{0.5, 0.5, -1, 2})

	sum := Add(a, b)
	wantSum := []float32{1.5, -1.5, 2, -2}
	if !slices.Equal(sum.Data(), wantSum[:sum.NumLanes()]) {
		t.Errorf("Add = %v, want %v", sum.Data(), wantSum)
	}

	prod := Mul(a, b)
	wantProd := []float32{0.5, -1, -3, -8}
	if !slices.Equal(prod.Data(), wantProd[:prod.NumLanes()]) {
		t.Errorf("Mul = %v, want %v", prod.Data(), wantProd)
	}
}

func TestAbsMinMax(t *testing.T) {
	v := Load([]float32{-1.5, 0, 2, -0.25})

	abs := Abs(v)
	wantAbs := []float32{1.5, 0, 2, 0.25}
	if !slices.Equal(abs.Data(), wantAbs[:abs.NumLanes()]) {
		t.Errorf("Abs = %v, want %v", abs.Data(), wantAbs)
	}

	one := Set[float32](1)
	clamped := Min(abs, one)
	wantMin := []float32{1, 0, 1, 0.25}
	if !slices.Equal(clamped.Data(), wantMin[:clamped.NumLanes()]) {
		t.Errorf("Min = %v, want %v", clamped.Data(), wantMin)
	}

	floored := Max(v, Zero[float32]())
	wantMax := []float32{0, 0, 2, 0}
	if !slices.Equal(floored.Data(), wantMax[:floored.NumLanes()]) {
		t.Errorf("Max = %v, want %v", floored.Data(), wantMax)
	}
}

func TestSlideUpLanes(t *testing.T) {
	lanes := MaxLanes[float32]()
	src := make([]float32, lanes)
	for i := range src {
		src[i] = float32(i + 1)
	}
	v := Load(src)

	tests := []struct {
		name  string
		count int
	}{
		{"zero", 0},
		{"one", 1},
		{"two", 2},
		{"all", lanes},
		{"past end", lanes + 3},
		{"negative", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SlideUpLanes(v, tt.count)
			count := tt.count
			if count < 0 {
				count = 0
			}
			if count > lanes {
				count = lanes
			}
			for i := 0; i < lanes; i++ {
				want := float32(0)
				if i >= count {
					want = src[i-count]
				}
				if GetLane(got, i) != want {
					t.Errorf("count %d lane %d = %v, want %v",
						tt.count, i, GetLane(got, i), want)
				}
			}
		})
	}
}

func TestGetLane(t *testing.T) {
	v := Load([]float32{10, 20, 30, 40})
	if got := GetLane(v, 0); got != 10 {
		t.Errorf("GetLane(0) = %v, want 10", got)
	}
	last := v.NumLanes() - 1
	if got := GetLane(v, last); got != v.Data()[last] {
		t.Errorf("GetLane(last) = %v, want %v", got, v.Data()[last])
	}
	if got := GetLane(v, -1); got != 0 {
		t.Errorf("GetLane(-1) = %v, want 0", got)
	}
	if got := GetLane(v, v.NumLanes()); got != 0 {
		t.Errorf("GetLane(NumLanes) = %v, want 0", got)
	}
}

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

import "os"

// DispatchLevel identifies the SIMD instruction level selected at startup.
type DispatchLevel int

const (
	// DispatchScalar means no SIMD instructions are used.
	DispatchScalar DispatchLevel = iota
	// DispatchSSE2 is the amd64 baseline (128-bit vectors).
	DispatchSSE2
	// DispatchAVX2 enables 256-bit vectors.
	DispatchAVX2
	// DispatchAVX512 enables 512-bit vectors.
	DispatchAVX512
)

func (l DispatchLevel) String() string {
	switch l {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	}
	return "unknown"
}

// Dispatch state, written once by the per-architecture init() and read-only
// afterwards, so concurrent callers need no synchronization.
var (
	currentLevel DispatchLevel
	currentWidth int
	currentName  string
)

// CurrentLevel returns the SIMD level selected for this process.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector width in bytes for the selected level.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns the name of the selected level ("scalar", "sse2", ...).
func CurrentName() string {
	return currentName
}

// NoSimdEnv reports whether SIMD has been disabled via the COVERAGE_NO_SIMD
// environment variable. It is checked once at init; changing the variable
// later has no effect.
func NoSimdEnv() bool {
	return os.Getenv("COVERAGE_NO_SIMD") != ""
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
	currentName = "scalar"
}

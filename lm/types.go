// Copyright 2025 go-lightmat Authors
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

// Package lm provides the SIMD pack abstraction and fold primitives that
// back dense-matrix reductions.
//
// A Pack is a fixed-width vector register value parameterized by its lane
// type and an instruction-set kind. The kind is a type parameter, so the
// lane count of every pack is fixed at compile time; there is no runtime
// instruction-set selection. Fold kernels built on packs process full
// registers in the inner loop and fall back to scalar code for the
// trailing elements.
//
// Basic usage:
//
//	a := lm.Load[float32, lm.K128](data)
//	b := lm.Set1[float32, lm.K128](2.0)
//	lm.Store(lm.Mul(a, b), out)
package lm

import "unsafe"

// Floats is the constraint for pack lane types.
type Floats interface {
	~float32 | ~float64
}

// Kind identifies an instruction-set register width. It is implemented by
// zero-size tag types so that packs can be monomorphized over it.
type Kind interface {
	// WidthBytes returns the register width in bytes.
	WidthBytes() int

	// Name returns a human-readable name for this kind.
	Name() string
}

// K128 selects 128-bit registers (SSE, NEON).
type K128 struct{}

// WidthBytes returns 16 bytes (128 bits).
func (K128) WidthBytes() int { return 16 }

// Name returns "128bit".
func (K128) Name() string { return "128bit" }

// K256 selects 256-bit registers (AVX2).
type K256 struct{}

// WidthBytes returns 32 bytes (256 bits).
func (K256) WidthBytes() int { return 32 }

// Name returns "256bit".
func (K256) Name() string { return "256bit" }

// K512 selects 512-bit registers (AVX-512, SVE).
type K512 struct{}

// WidthBytes returns 64 bytes (512 bits).
func (K512) WidthBytes() int { return 64 }

// Name returns "512bit".
func (K512) Name() string { return "512bit" }

// maxPackLanes is the widest supported pack: K512 with float32 lanes.
const maxPackLanes = 16

// PackWidth returns the number of T lanes in a pack of kind K.
// The value depends only on the two type parameters and is a compile-time
// constant for any concrete instantiation: 4 for float32/K128, 2 for
// float64/K128, 8 for float32/K256, and so on.
func PackWidth[T Floats, K Kind]() int {
	var k K
	var dummy T
	return k.WidthBytes() / int(unsafe.Sizeof(dummy))
}

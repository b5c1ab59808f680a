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

package lm

import "math"

// Pack is a fixed-width vector register value holding PackWidth[T, K]
// lanes of type T. Packs have copy semantics: assigning or passing a pack
// copies its lanes, and no pack operation allocates.
//
// Lanes beyond the pack width are always zero; only Width() lanes are
// meaningful.
type Pack[T Floats, K Kind] struct {
	lane [maxPackLanes]T
}

// Width returns the number of lanes, fixed per (T, K) instantiation.
func (p Pack[T, K]) Width() int { return PackWidth[T, K]() }

// Zeros returns a pack with every lane set to zero.
func Zeros[T Floats, K Kind]() Pack[T, K] {
	var p Pack[T, K]
	return p
}

// Ones returns a pack with every lane set to one.
func Ones[T Floats, K Kind]() Pack[T, K] {
	return Set1[T, K](1)
}

// Inf returns a pack with every lane set to positive infinity.
func Inf[T Floats, K Kind]() Pack[T, K] {
	return Set1[T, K](T(math.Inf(1)))
}

// NegInf returns a pack with every lane set to negative infinity.
func NegInf[T Floats, K Kind]() Pack[T, K] {
	return Set1[T, K](T(math.Inf(-1)))
}

// NaN returns a pack with every lane set to a quiet NaN.
func NaN[T Floats, K Kind]() Pack[T, K] {
	return Set1[T, K](T(math.NaN()))
}

// Set1 returns a pack with every lane set to v (scalar broadcast).
func Set1[T Floats, K Kind](v T) Pack[T, K] {
	var p Pack[T, K]
	for i := range PackWidth[T, K]() {
		p.lane[i] = v
	}
	return p
}

// SetLanes returns a pack with the given per-lane values.
// Panics unless exactly Width values are supplied.
func SetLanes[T Floats, K Kind](vals ...T) Pack[T, K] {
	w := PackWidth[T, K]()
	if len(vals) != w {
		panic("lm: SetLanes requires exactly one value per lane")
	}
	var p Pack[T, K]
	copy(p.lane[:w], vals)
	return p
}

// Load reads Width contiguous elements starting at src[0].
// The address is asserted to satisfy the pack's natural alignment;
// in the portable implementation this is the same as LoadU, but callers
// should honor the contract so accelerated builds stay valid.
// Panics if src holds fewer than Width elements.
func Load[T Floats, K Kind](src []T) Pack[T, K] {
	w := PackWidth[T, K]()
	if len(src) < w {
		panic("lm: Load source shorter than pack width")
	}
	var p Pack[T, K]
	copy(p.lane[:w], src)
	return p
}

// LoadU reads Width contiguous elements from an arbitrarily aligned
// address. Panics if src holds fewer than Width elements.
func LoadU[T Floats, K Kind](src []T) Pack[T, K] {
	w := PackWidth[T, K]()
	if len(src) < w {
		panic("lm: LoadU source shorter than pack width")
	}
	var p Pack[T, K]
	copy(p.lane[:w], src)
	return p
}

// LoadPart reads the first count lanes from src; lanes [count, Width)
// are zero. count == Width behaves exactly like Load.
// Panics if count is outside [0, Width] or src is shorter than count.
func LoadPart[T Floats, K Kind](count int, src []T) Pack[T, K] {
	w := PackWidth[T, K]()
	if count < 0 || count > w {
		panic("lm: LoadPart count out of range")
	}
	if len(src) < count {
		panic("lm: LoadPart source shorter than count")
	}
	var p Pack[T, K]
	copy(p.lane[:count], src)
	return p
}

// Set1 re-assigns every lane to v, same semantics as the Set1 constructor.
func (p *Pack[T, K]) Set1(v T) {
	for i := range PackWidth[T, K]() {
		p.lane[i] = v
	}
}

// SetLanes re-assigns the pack's lanes to the given values.
// Panics unless exactly Width values are supplied.
func (p *Pack[T, K]) SetLanes(vals ...T) {
	w := PackWidth[T, K]()
	if len(vals) != w {
		panic("lm: SetLanes requires exactly one value per lane")
	}
	copy(p.lane[:w], vals)
}

// Reset sets every lane to zero.
func (p *Pack[T, K]) Reset() {
	var z Pack[T, K]
	*p = z
}

// Store writes all Width lanes to dst, which is asserted to satisfy the
// pack's natural alignment. Panics if dst holds fewer than Width elements.
func (p Pack[T, K]) Store(dst []T) {
	w := PackWidth[T, K]()
	if len(dst) < w {
		panic("lm: Store destination shorter than pack width")
	}
	copy(dst, p.lane[:w])
}

// StoreU writes all Width lanes to an arbitrarily aligned destination.
// Panics if dst holds fewer than Width elements.
func (p Pack[T, K]) StoreU(dst []T) {
	w := PackWidth[T, K]()
	if len(dst) < w {
		panic("lm: StoreU destination shorter than pack width")
	}
	copy(dst, p.lane[:w])
}

// StorePart writes exactly the first count lanes to dst; dst elements at
// and beyond count are left untouched. count == Width behaves exactly
// like Store. Panics if count is outside [0, Width] or dst is shorter
// than count.
func (p Pack[T, K]) StorePart(count int, dst []T) {
	w := PackWidth[T, K]()
	if count < 0 || count > w {
		panic("lm: StorePart count out of range")
	}
	if len(dst) < count {
		panic("lm: StorePart destination shorter than count")
	}
	copy(dst[:count], p.lane[:count])
}

// ToScalar returns lane 0.
func (p Pack[T, K]) ToScalar() T {
	return p.lane[0]
}

// Extract returns lane i. Panics if i is not in [0, Width).
func (p Pack[T, K]) Extract(i int) T {
	if i < 0 || i >= PackWidth[T, K]() {
		panic("lm: Extract lane index out of range")
	}
	return p.lane[i]
}

// Broadcast returns a pack with every lane set to source lane i.
// Panics if i is not in [0, Width).
func (p Pack[T, K]) Broadcast(i int) Pack[T, K] {
	if i < 0 || i >= PackWidth[T, K]() {
		panic("lm: Broadcast lane index out of range")
	}
	return Set1[T, K](p.lane[i])
}

// Lanes returns a copy of the meaningful lanes as a slice.
// This is primarily for testing and should not be used in inner loops.
func (p Pack[T, K]) Lanes() []T {
	w := PackWidth[T, K]()
	out := make([]T, w)
	copy(out, p.lane[:w])
	return out
}

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

// Transform is a pure element-wise function of one operand, with a
// scalar and a pack form that must agree lane for lane. Composed with a
// folder it fuses a map stage into a reduction pass.
type Transform[T Floats, K Kind] interface {
	Apply(x T) T
	ApplyPack(x Pack[T, K]) Pack[T, K]
}

// Transform2 is a pure element-wise function of two co-indexed operands.
type Transform2[T Floats, K Kind] interface {
	Apply(x, y T) T
	ApplyPack(x, y Pack[T, K]) Pack[T, K]
}

// Ident passes values through unchanged. Folding through Ident is
// defined to equal the plain fold.
type Ident[T Floats, K Kind] struct{}

func (Ident[T, K]) Apply(x T) T { return x }

func (Ident[T, K]) ApplyPack(x Pack[T, K]) Pack[T, K] { return x }

// AbsT maps each value to its absolute value.
type AbsT[T Floats, K Kind] struct{}

func (AbsT[T, K]) Apply(x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func (AbsT[T, K]) ApplyPack(x Pack[T, K]) Pack[T, K] { return Abs(x) }

// SquareT maps each value to its square.
type SquareT[T Floats, K Kind] struct{}

func (SquareT[T, K]) Apply(x T) T { return x * x }

func (SquareT[T, K]) ApplyPack(x Pack[T, K]) Pack[T, K] { return Mul(x, x) }

// DiffT combines two operands as x - y. Summing through DiffT reduces
// the element-wise difference of two matrices without materializing it.
type DiffT[T Floats, K Kind] struct{}

func (DiffT[T, K]) Apply(x, y T) T { return x - y }

func (DiffT[T, K]) ApplyPack(x, y Pack[T, K]) Pack[T, K] { return Sub(x, y) }

// ProdT combines two operands as x * y. Summing through ProdT is a dot
// product over co-indexed elements.
type ProdT[T Floats, K Kind] struct{}

func (ProdT[T, K]) Apply(x, y T) T { return x * y }

func (ProdT[T, K]) ApplyPack(x, y Pack[T, K]) Pack[T, K] { return Mul(x, y) }

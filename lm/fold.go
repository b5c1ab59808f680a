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

// Folder defines one reduction kind over lane type T and pack kind K:
// an associative combine step with a scalar and a pack form, and the
// value of the reduction over an empty range. The two fold forms must
// apply the same combine logic lane for lane, which is what lets the
// reduction drivers switch between scalar and vectorized traversal
// without duplicating semantics.
type Folder[T Floats, K Kind] interface {
	// Fold combines an accumulator with one element.
	Fold(a, x T) T

	// FoldPack combines a pack accumulator with a pack of elements,
	// lane-wise.
	FoldPack(a, x Pack[T, K]) Pack[T, K]

	// Empty returns the reduction's value over zero elements.
	Empty() T

	// Vectorizable reports whether this fold may run on the pack path.
	Vectorizable() bool
}

// SumFolder accumulates by addition; the empty sum is 0.
type SumFolder[T Floats, K Kind] struct{}

func (SumFolder[T, K]) Fold(a, x T) T { return a + x }

func (SumFolder[T, K]) FoldPack(a, x Pack[T, K]) Pack[T, K] { return Add(a, x) }

func (SumFolder[T, K]) Empty() T { return 0 }

func (SumFolder[T, K]) Vectorizable() bool { return true }

// MaxFolder keeps the larger value; the empty maximum is -Inf.
type MaxFolder[T Floats, K Kind] struct{}

func (MaxFolder[T, K]) Fold(a, x T) T {
	if x > a {
		return x
	}
	return a
}

func (MaxFolder[T, K]) FoldPack(a, x Pack[T, K]) Pack[T, K] { return Max(a, x) }

func (MaxFolder[T, K]) Empty() T { return T(math.Inf(-1)) }

func (MaxFolder[T, K]) Vectorizable() bool { return true }

// MinFolder keeps the smaller value; the empty minimum is +Inf.
type MinFolder[T Floats, K Kind] struct{}

func (MinFolder[T, K]) Fold(a, x T) T {
	if x < a {
		return x
	}
	return a
}

func (MinFolder[T, K]) FoldPack(a, x Pack[T, K]) Pack[T, K] { return Min(a, x) }

func (MinFolder[T, K]) Empty() T { return T(math.Inf(1)) }

func (MinFolder[T, K]) Vectorizable() bool { return true }

// Empty-reduction sentinel values. Mean has no folder of its own (it is
// the sum fold plus a post-scale) but still defines its empty value.

// EmptySum returns the sum over zero elements: 0.
func EmptySum[T Floats]() T { return 0 }

// EmptyMean returns the mean over zero elements: NaN.
func EmptyMean[T Floats]() T { return T(math.NaN()) }

// EmptyMaximum returns the maximum over zero elements: -Inf.
func EmptyMaximum[T Floats]() T { return T(math.Inf(-1)) }

// EmptyMinimum returns the minimum over zero elements: +Inf.
func EmptyMinimum[T Floats]() T { return T(math.Inf(1)) }

// ReduceWith folds the lanes of p into a single scalar using f,
// starting from f.Empty().
func ReduceWith[T Floats, K Kind](f Folder[T, K], p Pack[T, K]) T {
	a := f.Empty()
	for i := range PackWidth[T, K]() {
		a = f.Fold(a, p.lane[i])
	}
	return a
}

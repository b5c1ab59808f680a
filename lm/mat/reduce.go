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

package mat

import "github.com/ajroetker/go-lightmat/lm"

// dk is the pack kind every driver in this package is compiled against.
type dk = lm.DefaultKind

// Column-wise reductions produce one scalar per column: dst must hold at
// least Cols elements. Row-wise reductions produce one scalar per row:
// dst must hold at least Rows elements.
//
// Row-wise drivers do not flip the colwise loop, because rows are the
// strided direction. Instead dst is initialized from column 0 and every
// later column is combined into it with a vectorized full-row fold, so
// the row dimension is what gets packed. A matrix with zero columns has
// no column 0 to start from; the drivers define that case to yield the
// fold's empty value per row, consistent with zero-row colwise calls.

func colwiseFold[T lm.Floats](f lm.Folder[T, dk], a Dense[T], dst []T) {
	if len(dst) < a.cols {
		panic("mat: destination shorter than column count")
	}
	k := lm.NewFold(f)
	for j := range a.cols {
		dst[j] = k.Apply(a.Col(j))
	}
}

func colwiseFoldX[T lm.Floats](f lm.Folder[T, dk], fn lm.Transform[T, dk], a Dense[T], dst []T) {
	if len(dst) < a.cols {
		panic("mat: destination shorter than column count")
	}
	k := lm.NewFoldX(f, fn)
	for j := range a.cols {
		dst[j] = k.Apply(a.Col(j))
	}
}

func colwiseFoldX2[T lm.Floats](f lm.Folder[T, dk], fn lm.Transform2[T, dk], a, b Dense[T], dst []T) {
	s := CommonShape(a, b)
	if len(dst) < s.Cols {
		panic("mat: destination shorter than column count")
	}
	k := lm.NewFoldX2(f, fn)
	for j := range s.Cols {
		dst[j] = k.Apply(a.Col(j), b.Col(j))
	}
}

// ColwiseSum writes the sum of each column into dst[0:Cols].
// Zero-row columns sum to 0.
func ColwiseSum[T lm.Floats](a Dense[T], dst []T) {
	colwiseFold[T](lm.SumFolder[T, dk]{}, a, dst)
}

// ColwiseMean writes the mean of each column into dst[0:Cols].
// Zero-row columns yield NaN.
func ColwiseMean[T lm.Floats](a Dense[T], dst []T) {
	ColwiseSum(a, dst)
	if a.rows == 0 {
		fill(dst[:a.cols], lm.EmptyMean[T]())
		return
	}
	scaleSlice(dst[:a.cols], 1/T(a.rows))
}

// ColwiseMaximum writes the maximum of each column into dst[0:Cols].
// Zero-row columns yield -Inf.
func ColwiseMaximum[T lm.Floats](a Dense[T], dst []T) {
	colwiseFold[T](lm.MaxFolder[T, dk]{}, a, dst)
}

// ColwiseMinimum writes the minimum of each column into dst[0:Cols].
// Zero-row columns yield +Inf.
func ColwiseMinimum[T lm.Floats](a Dense[T], dst []T) {
	colwiseFold[T](lm.MinFolder[T, dk]{}, a, dst)
}

// ColwiseSumX writes the per-column sum of fn over a into dst[0:Cols].
func ColwiseSumX[T lm.Floats](fn lm.Transform[T, dk], a Dense[T], dst []T) {
	colwiseFoldX[T](lm.SumFolder[T, dk]{}, fn, a, dst)
}

// ColwiseMeanX writes the per-column mean of fn over a into dst[0:Cols].
func ColwiseMeanX[T lm.Floats](fn lm.Transform[T, dk], a Dense[T], dst []T) {
	ColwiseSumX(fn, a, dst)
	if a.rows == 0 {
		fill(dst[:a.cols], lm.EmptyMean[T]())
		return
	}
	scaleSlice(dst[:a.cols], 1/T(a.rows))
}

// ColwiseMaximumX writes the per-column maximum of fn over a into dst[0:Cols].
func ColwiseMaximumX[T lm.Floats](fn lm.Transform[T, dk], a Dense[T], dst []T) {
	colwiseFoldX[T](lm.MaxFolder[T, dk]{}, fn, a, dst)
}

// ColwiseMinimumX writes the per-column minimum of fn over a into dst[0:Cols].
func ColwiseMinimumX[T lm.Floats](fn lm.Transform[T, dk], a Dense[T], dst []T) {
	colwiseFoldX[T](lm.MinFolder[T, dk]{}, fn, a, dst)
}

// ColwiseSumX2 writes the per-column sum of fn over co-indexed elements
// of a and b into dst[0:Cols]. Panics if the operand shapes disagree.
func ColwiseSumX2[T lm.Floats](fn lm.Transform2[T, dk], a, b Dense[T], dst []T) {
	colwiseFoldX2[T](lm.SumFolder[T, dk]{}, fn, a, b, dst)
}

// ColwiseMeanX2 writes the per-column mean of fn over co-indexed
// elements of a and b into dst[0:Cols].
func ColwiseMeanX2[T lm.Floats](fn lm.Transform2[T, dk], a, b Dense[T], dst []T) {
	ColwiseSumX2(fn, a, b, dst)
	if a.rows == 0 {
		fill(dst[:a.cols], lm.EmptyMean[T]())
		return
	}
	scaleSlice(dst[:a.cols], 1/T(a.rows))
}

// ColwiseMaximumX2 writes the per-column maximum of fn over co-indexed
// elements of a and b into dst[0:Cols].
func ColwiseMaximumX2[T lm.Floats](fn lm.Transform2[T, dk], a, b Dense[T], dst []T) {
	colwiseFoldX2[T](lm.MaxFolder[T, dk]{}, fn, a, b, dst)
}

// ColwiseMinimumX2 writes the per-column minimum of fn over co-indexed
// elements of a and b into dst[0:Cols].
func ColwiseMinimumX2[T lm.Floats](fn lm.Transform2[T, dk], a, b Dense[T], dst []T) {
	colwiseFoldX2[T](lm.MinFolder[T, dk]{}, fn, a, b, dst)
}

func rowwiseFold[T lm.Floats](f lm.Folder[T, dk], a Dense[T], dst []T) {
	if len(dst) < a.rows {
		panic("mat: destination shorter than row count")
	}
	if a.cols == 0 {
		fill(dst[:a.rows], f.Empty())
		return
	}
	copy(dst[:a.rows], a.Col(0))
	for j := 1; j < a.cols; j++ {
		lm.Combine(f, dst[:a.rows], a.Col(j))
	}
}

func rowwiseFoldX[T lm.Floats](f lm.Folder[T, dk], fn lm.Transform[T, dk], a Dense[T], dst []T) {
	if len(dst) < a.rows {
		panic("mat: destination shorter than row count")
	}
	if a.cols == 0 {
		fill(dst[:a.rows], f.Empty())
		return
	}
	lm.MapTo(fn, dst[:a.rows], a.Col(0))
	for j := 1; j < a.cols; j++ {
		lm.CombineX(f, fn, dst[:a.rows], a.Col(j))
	}
}

func rowwiseFoldX2[T lm.Floats](f lm.Folder[T, dk], fn lm.Transform2[T, dk], a, b Dense[T], dst []T) {
	s := CommonShape(a, b)
	if len(dst) < s.Rows {
		panic("mat: destination shorter than row count")
	}
	if s.Cols == 0 {
		fill(dst[:s.Rows], f.Empty())
		return
	}
	lm.Map2To(fn, dst[:s.Rows], a.Col(0), b.Col(0))
	for j := 1; j < s.Cols; j++ {
		lm.CombineX2(f, fn, dst[:s.Rows], a.Col(j), b.Col(j))
	}
}

// RowwiseSum writes the sum of each row into dst[0:Rows].
// A zero-column matrix yields 0 per row.
func RowwiseSum[T lm.Floats](a Dense[T], dst []T) {
	rowwiseFold[T](lm.SumFolder[T, dk]{}, a, dst)
}

// RowwiseMean writes the mean of each row into dst[0:Rows].
// A zero-column matrix yields NaN per row.
func RowwiseMean[T lm.Floats](a Dense[T], dst []T) {
	if a.cols == 0 {
		if len(dst) < a.rows {
			panic("mat: destination shorter than row count")
		}
		fill(dst[:a.rows], lm.EmptyMean[T]())
		return
	}
	RowwiseSum(a, dst)
	scaleSlice(dst[:a.rows], 1/T(a.cols))
}

// RowwiseMaximum writes the maximum of each row into dst[0:Rows].
// A zero-column matrix yields -Inf per row.
func RowwiseMaximum[T lm.Floats](a Dense[T], dst []T) {
	rowwiseFold[T](lm.MaxFolder[T, dk]{}, a, dst)
}

// RowwiseMinimum writes the minimum of each row into dst[0:Rows].
// A zero-column matrix yields +Inf per row.
func RowwiseMinimum[T lm.Floats](a Dense[T], dst []T) {
	rowwiseFold[T](lm.MinFolder[T, dk]{}, a, dst)
}

// RowwiseSumX writes the per-row sum of fn over a into dst[0:Rows].
func RowwiseSumX[T lm.Floats](fn lm.Transform[T, dk], a Dense[T], dst []T) {
	rowwiseFoldX[T](lm.SumFolder[T, dk]{}, fn, a, dst)
}

// RowwiseMeanX writes the per-row mean of fn over a into dst[0:Rows].
func RowwiseMeanX[T lm.Floats](fn lm.Transform[T, dk], a Dense[T], dst []T) {
	if a.cols == 0 {
		if len(dst) < a.rows {
			panic("mat: destination shorter than row count")
		}
		fill(dst[:a.rows], lm.EmptyMean[T]())
		return
	}
	RowwiseSumX(fn, a, dst)
	scaleSlice(dst[:a.rows], 1/T(a.cols))
}

// RowwiseMaximumX writes the per-row maximum of fn over a into dst[0:Rows].
func RowwiseMaximumX[T lm.Floats](fn lm.Transform[T, dk], a Dense[T], dst []T) {
	rowwiseFoldX[T](lm.MaxFolder[T, dk]{}, fn, a, dst)
}

// RowwiseMinimumX writes the per-row minimum of fn over a into dst[0:Rows].
func RowwiseMinimumX[T lm.Floats](fn lm.Transform[T, dk], a Dense[T], dst []T) {
	rowwiseFoldX[T](lm.MinFolder[T, dk]{}, fn, a, dst)
}

// RowwiseSumX2 writes the per-row sum of fn over co-indexed elements of
// a and b into dst[0:Rows]. Panics if the operand shapes disagree.
func RowwiseSumX2[T lm.Floats](fn lm.Transform2[T, dk], a, b Dense[T], dst []T) {
	rowwiseFoldX2[T](lm.SumFolder[T, dk]{}, fn, a, b, dst)
}

// RowwiseMeanX2 writes the per-row mean of fn over co-indexed elements
// of a and b into dst[0:Rows].
func RowwiseMeanX2[T lm.Floats](fn lm.Transform2[T, dk], a, b Dense[T], dst []T) {
	s := CommonShape(a, b)
	if s.Cols == 0 {
		if len(dst) < s.Rows {
			panic("mat: destination shorter than row count")
		}
		fill(dst[:s.Rows], lm.EmptyMean[T]())
		return
	}
	RowwiseSumX2(fn, a, b, dst)
	scaleSlice(dst[:s.Rows], 1/T(s.Cols))
}

// RowwiseMaximumX2 writes the per-row maximum of fn over co-indexed
// elements of a and b into dst[0:Rows].
func RowwiseMaximumX2[T lm.Floats](fn lm.Transform2[T, dk], a, b Dense[T], dst []T) {
	rowwiseFoldX2[T](lm.MaxFolder[T, dk]{}, fn, a, b, dst)
}

// RowwiseMinimumX2 writes the per-row minimum of fn over co-indexed
// elements of a and b into dst[0:Rows].
func RowwiseMinimumX2[T lm.Floats](fn lm.Transform2[T, dk], a, b Dense[T], dst []T) {
	rowwiseFoldX2[T](lm.MinFolder[T, dk]{}, fn, a, b, dst)
}

// Full reductions collapse the whole matrix to one scalar. A contiguous
// view is folded as one flat run; a strided view folds column results.

func fullFold[T lm.Floats](f lm.Folder[T, dk], a Dense[T]) T {
	k := lm.NewFold(f)
	if a.IsContiguous() {
		return k.Apply(a.Linear())
	}
	r := f.Empty()
	for j := range a.cols {
		r = f.Fold(r, k.Apply(a.Col(j)))
	}
	return r
}

func fullFoldX[T lm.Floats](f lm.Folder[T, dk], fn lm.Transform[T, dk], a Dense[T]) T {
	k := lm.NewFoldX(f, fn)
	if a.IsContiguous() {
		return k.Apply(a.Linear())
	}
	r := f.Empty()
	for j := range a.cols {
		r = f.Fold(r, k.Apply(a.Col(j)))
	}
	return r
}

func fullFoldX2[T lm.Floats](f lm.Folder[T, dk], fn lm.Transform2[T, dk], a, b Dense[T]) T {
	s := CommonShape(a, b)
	k := lm.NewFoldX2(f, fn)
	if a.IsContiguous() && b.IsContiguous() {
		return k.Apply(a.Linear(), b.Linear())
	}
	r := f.Empty()
	for j := range s.Cols {
		r = f.Fold(r, k.Apply(a.Col(j), b.Col(j)))
	}
	return r
}

// Sum returns the sum of every element; 0 for an empty matrix.
func Sum[T lm.Floats](a Dense[T]) T {
	return fullFold[T](lm.SumFolder[T, dk]{}, a)
}

// Mean returns the mean of every element; NaN for an empty matrix.
func Mean[T lm.Floats](a Dense[T]) T {
	n := a.NElems()
	if n == 0 {
		return lm.EmptyMean[T]()
	}
	return Sum(a) / T(n)
}

// Maximum returns the largest element; -Inf for an empty matrix.
func Maximum[T lm.Floats](a Dense[T]) T {
	return fullFold[T](lm.MaxFolder[T, dk]{}, a)
}

// Minimum returns the smallest element; +Inf for an empty matrix.
func Minimum[T lm.Floats](a Dense[T]) T {
	return fullFold[T](lm.MinFolder[T, dk]{}, a)
}

// SumX returns the sum of fn over every element.
func SumX[T lm.Floats](fn lm.Transform[T, dk], a Dense[T]) T {
	return fullFoldX[T](lm.SumFolder[T, dk]{}, fn, a)
}

// MeanX returns the mean of fn over every element; NaN for an empty matrix.
func MeanX[T lm.Floats](fn lm.Transform[T, dk], a Dense[T]) T {
	n := a.NElems()
	if n == 0 {
		return lm.EmptyMean[T]()
	}
	return SumX(fn, a) / T(n)
}

// MaximumX returns the maximum of fn over every element.
func MaximumX[T lm.Floats](fn lm.Transform[T, dk], a Dense[T]) T {
	return fullFoldX[T](lm.MaxFolder[T, dk]{}, fn, a)
}

// MinimumX returns the minimum of fn over every element.
func MinimumX[T lm.Floats](fn lm.Transform[T, dk], a Dense[T]) T {
	return fullFoldX[T](lm.MinFolder[T, dk]{}, fn, a)
}

// SumX2 returns the sum of fn over co-indexed elements of a and b.
func SumX2[T lm.Floats](fn lm.Transform2[T, dk], a, b Dense[T]) T {
	return fullFoldX2[T](lm.SumFolder[T, dk]{}, fn, a, b)
}

// MeanX2 returns the mean of fn over co-indexed elements of a and b.
func MeanX2[T lm.Floats](fn lm.Transform2[T, dk], a, b Dense[T]) T {
	s := CommonShape(a, b)
	if s.NElems() == 0 {
		return lm.EmptyMean[T]()
	}
	return SumX2(fn, a, b) / T(s.NElems())
}

// MaximumX2 returns the maximum of fn over co-indexed elements of a and b.
func MaximumX2[T lm.Floats](fn lm.Transform2[T, dk], a, b Dense[T]) T {
	return fullFoldX2[T](lm.MaxFolder[T, dk]{}, fn, a, b)
}

// MinimumX2 returns the minimum of fn over co-indexed elements of a and b.
func MinimumX2[T lm.Floats](fn lm.Transform2[T, dk], a, b Dense[T]) T {
	return fullFoldX2[T](lm.MinFolder[T, dk]{}, fn, a, b)
}

func fill[T lm.Floats](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}

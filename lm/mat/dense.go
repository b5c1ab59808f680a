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

// Dense is a column-major matrix view over a caller-owned buffer.
// Element (i, j) lives at data[j*stride + i]; each column is a
// contiguous run of rows elements, which is what makes columns the
// traversal-friendly direction for the reduction drivers.
//
// A Dense never owns its buffer: writes through Set or the arithmetic
// functions are visible to the caller, and the view must not outlive
// the buffer.
type Dense[T lm.Floats] struct {
	data   []T
	rows   int
	cols   int
	stride int
}

// NewDense returns a contiguous view of rows x cols elements over data.
// Panics if either extent is negative or data is too short.
func NewDense[T lm.Floats](rows, cols int, data []T) Dense[T] {
	return NewDenseStride(rows, cols, rows, data)
}

// NewDenseStride returns a view whose columns start stride elements
// apart. stride must be at least rows. Panics on a negative extent, an
// undersized stride, or a buffer too short for the last column.
func NewDenseStride[T lm.Floats](rows, cols, stride int, data []T) Dense[T] {
	if rows < 0 || cols < 0 {
		panic("mat: negative matrix extent")
	}
	if stride < rows {
		panic("mat: stride shorter than column length")
	}
	if rows > 0 && cols > 0 {
		if need := (cols-1)*stride + rows; len(data) < need {
			panic("mat: buffer shorter than matrix extents")
		}
	}
	return Dense[T]{data: data, rows: rows, cols: cols, stride: stride}
}

// Rows returns the row count.
func (m Dense[T]) Rows() int { return m.rows }

// Cols returns the column count.
func (m Dense[T]) Cols() int { return m.cols }

// Shape returns the view's shape.
func (m Dense[T]) Shape() Shape { return Shape{Rows: m.rows, Cols: m.cols} }

// NElems returns the total element count.
func (m Dense[T]) NElems() int { return m.rows * m.cols }

// Stride returns the distance between column starts in the buffer.
func (m Dense[T]) Stride() int { return m.stride }

// IsContiguous reports whether the view covers one gap-free run of
// rows*cols elements, the precondition for flat linear traversal.
func (m Dense[T]) IsContiguous() bool { return m.stride == m.rows || m.cols <= 1 }

// At returns element (i, j). Panics if the index is out of range.
func (m Dense[T]) At(i, j int) T {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic("mat: element index out of range")
	}
	return m.data[j*m.stride+i]
}

// Set assigns element (i, j). Panics if the index is out of range.
func (m Dense[T]) Set(i, j int, v T) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic("mat: element index out of range")
	}
	m.data[j*m.stride+i] = v
}

// Col returns the contiguous view of column j. Panics if j is out of
// range. The slice aliases the underlying buffer.
func (m Dense[T]) Col(j int) []T {
	if j < 0 || j >= m.cols {
		panic("mat: column index out of range")
	}
	if m.rows == 0 {
		return nil
	}
	off := j * m.stride
	return m.data[off : off+m.rows]
}

// Linear returns the whole view as one contiguous slice.
// Panics unless IsContiguous holds.
func (m Dense[T]) Linear() []T {
	if !m.IsContiguous() {
		panic("mat: Linear on a strided view")
	}
	if m.NElems() == 0 {
		return nil
	}
	return m.data[:m.rows*m.cols]
}

// CommonShape resolves the shape shared by two operands of an
// element-wise-then-reduce call. Both must agree on row and column
// counts; disagreement is a programming error and panics.
func CommonShape[T lm.Floats](a, b Dense[T]) Shape {
	if a.rows != b.rows || a.cols != b.cols {
		panic("mat: operand shapes disagree: " + a.Shape().String() + " vs " + b.Shape().String())
	}
	return a.Shape()
}

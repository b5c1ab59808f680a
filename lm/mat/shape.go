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

// Package mat provides column-major dense matrix views and the
// column-wise, row-wise, and full reductions built on the lm fold
// kernels. Views never own storage; every function writes into
// caller-supplied buffers.
package mat

import "fmt"

// Shape is a (row count, column count) pair. Zero is a valid extent;
// a zero-extent reduction yields the fold's empty value, not an error.
type Shape struct {
	Rows int
	Cols int
}

// NElems returns the total element count, Rows * Cols.
func (s Shape) NElems() int { return s.Rows * s.Cols }

// String returns the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

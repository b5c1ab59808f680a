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

// Fold kernels adapt a folder, optionally composed with a transform,
// into the combining operation run by the linear traversal loops below.
// Every kernel honors the access tag from ReducePolicy: full packs in
// the inner loop, scalar code for the remainder.

// FoldKernel reduces a contiguous range with a bare folder.
type FoldKernel[T Floats, K Kind] struct {
	F Folder[T, K]
}

// NewFold returns a fold kernel over f.
func NewFold[T Floats, K Kind](f Folder[T, K]) FoldKernel[T, K] {
	return FoldKernel[T, K]{F: f}
}

// Apply folds all elements of col and returns the result.
// An empty col yields the folder's empty value.
func (k FoldKernel[T, K]) Apply(col []T) T {
	n := len(col)
	if ReducePolicy[T, K](n, k.F) == AccessSIMD {
		w := PackWidth[T, K]()
		acc := Set1[T, K](k.F.Empty())
		var i int
		for i = 0; i+w <= n; i += w {
			acc = k.F.FoldPack(acc, LoadU[T, K](col[i:]))
		}
		r := ReduceWith(k.F, acc)
		for ; i < n; i++ {
			r = k.F.Fold(r, col[i])
		}
		return r
	}
	r := k.F.Empty()
	for _, x := range col {
		r = k.F.Fold(r, x)
	}
	return r
}

// FoldXKernel reduces a contiguous range, transforming each element
// before it reaches the folder. The transform and fold are fused into
// one pass; no intermediate range is materialized.
type FoldXKernel[T Floats, K Kind] struct {
	F  Folder[T, K]
	Fn Transform[T, K]
}

// NewFoldX returns a transform-fold kernel over f and fn.
func NewFoldX[T Floats, K Kind](f Folder[T, K], fn Transform[T, K]) FoldXKernel[T, K] {
	return FoldXKernel[T, K]{F: f, Fn: fn}
}

// Apply folds fn(x) over all elements x of col.
func (k FoldXKernel[T, K]) Apply(col []T) T {
	n := len(col)
	if ReducePolicy[T, K](n, k.F) == AccessSIMD {
		w := PackWidth[T, K]()
		acc := Set1[T, K](k.F.Empty())
		var i int
		for i = 0; i+w <= n; i += w {
			acc = k.F.FoldPack(acc, k.Fn.ApplyPack(LoadU[T, K](col[i:])))
		}
		r := ReduceWith(k.F, acc)
		for ; i < n; i++ {
			r = k.F.Fold(r, k.Fn.Apply(col[i]))
		}
		return r
	}
	r := k.F.Empty()
	for _, x := range col {
		r = k.F.Fold(r, k.Fn.Apply(x))
	}
	return r
}

// FoldX2Kernel reduces two co-indexed contiguous ranges through a
// two-operand transform.
type FoldX2Kernel[T Floats, K Kind] struct {
	F  Folder[T, K]
	Fn Transform2[T, K]
}

// NewFoldX2 returns a two-operand transform-fold kernel over f and fn.
func NewFoldX2[T Floats, K Kind](f Folder[T, K], fn Transform2[T, K]) FoldX2Kernel[T, K] {
	return FoldX2Kernel[T, K]{F: f, Fn: fn}
}

// Apply folds fn(x, y) over co-indexed elements of x and y.
// Panics if y is shorter than x.
func (k FoldX2Kernel[T, K]) Apply(x, y []T) T {
	n := len(x)
	if len(y) < n {
		panic("lm: FoldX2Kernel operands have different lengths")
	}
	if ReducePolicy[T, K](n, k.F) == AccessSIMD {
		w := PackWidth[T, K]()
		acc := Set1[T, K](k.F.Empty())
		var i int
		for i = 0; i+w <= n; i += w {
			t := k.Fn.ApplyPack(LoadU[T, K](x[i:]), LoadU[T, K](y[i:]))
			acc = k.F.FoldPack(acc, t)
		}
		r := ReduceWith(k.F, acc)
		for ; i < n; i++ {
			r = k.F.Fold(r, k.Fn.Apply(x[i], y[i]))
		}
		return r
	}
	r := k.F.Empty()
	for i := range n {
		r = k.F.Fold(r, k.Fn.Apply(x[i], y[i]))
	}
	return r
}

// Combine folds src into acc element-wise: acc[i] = f.Fold(acc[i], src[i]).
// This is the row-direction combine step used by rowwise reductions.
// Panics if src is shorter than acc.
func Combine[T Floats, K Kind](f Folder[T, K], acc, src []T) {
	n := len(acc)
	if len(src) < n {
		panic("lm: Combine operand shorter than accumulator")
	}
	if ReducePolicy[T, K](n, f) == AccessSIMD {
		w := PackWidth[T, K]()
		var i int
		for i = 0; i+w <= n; i += w {
			a := f.FoldPack(LoadU[T, K](acc[i:]), LoadU[T, K](src[i:]))
			a.StoreU(acc[i:])
		}
		for ; i < n; i++ {
			acc[i] = f.Fold(acc[i], src[i])
		}
		return
	}
	for i := range n {
		acc[i] = f.Fold(acc[i], src[i])
	}
}

// CombineX folds fn(src[i]) into acc[i] element-wise.
func CombineX[T Floats, K Kind](f Folder[T, K], fn Transform[T, K], acc, src []T) {
	n := len(acc)
	if len(src) < n {
		panic("lm: CombineX operand shorter than accumulator")
	}
	if ReducePolicy[T, K](n, f) == AccessSIMD {
		w := PackWidth[T, K]()
		var i int
		for i = 0; i+w <= n; i += w {
			a := f.FoldPack(LoadU[T, K](acc[i:]), fn.ApplyPack(LoadU[T, K](src[i:])))
			a.StoreU(acc[i:])
		}
		for ; i < n; i++ {
			acc[i] = f.Fold(acc[i], fn.Apply(src[i]))
		}
		return
	}
	for i := range n {
		acc[i] = f.Fold(acc[i], fn.Apply(src[i]))
	}
}

// CombineX2 folds fn(x[i], y[i]) into acc[i] element-wise.
func CombineX2[T Floats, K Kind](f Folder[T, K], fn Transform2[T, K], acc, x, y []T) {
	n := len(acc)
	if len(x) < n || len(y) < n {
		panic("lm: CombineX2 operand shorter than accumulator")
	}
	if ReducePolicy[T, K](n, f) == AccessSIMD {
		w := PackWidth[T, K]()
		var i int
		for i = 0; i+w <= n; i += w {
			t := fn.ApplyPack(LoadU[T, K](x[i:]), LoadU[T, K](y[i:]))
			a := f.FoldPack(LoadU[T, K](acc[i:]), t)
			a.StoreU(acc[i:])
		}
		for ; i < n; i++ {
			acc[i] = f.Fold(acc[i], fn.Apply(x[i], y[i]))
		}
		return
	}
	for i := range n {
		acc[i] = f.Fold(acc[i], fn.Apply(x[i], y[i]))
	}
}

// MapTo writes fn(src[i]) into dst[i]. It is the initialization step of
// transformed rowwise reductions. Panics if src is shorter than dst.
func MapTo[T Floats, K Kind](fn Transform[T, K], dst, src []T) {
	n := len(dst)
	if len(src) < n {
		panic("lm: MapTo source shorter than destination")
	}
	w := PackWidth[T, K]()
	if simdPreferred && n >= w {
		var i int
		for i = 0; i+w <= n; i += w {
			fn.ApplyPack(LoadU[T, K](src[i:])).StoreU(dst[i:])
		}
		for ; i < n; i++ {
			dst[i] = fn.Apply(src[i])
		}
		return
	}
	for i := range n {
		dst[i] = fn.Apply(src[i])
	}
}

// Map2To writes fn(x[i], y[i]) into dst[i].
func Map2To[T Floats, K Kind](fn Transform2[T, K], dst, x, y []T) {
	n := len(dst)
	if len(x) < n || len(y) < n {
		panic("lm: Map2To source shorter than destination")
	}
	w := PackWidth[T, K]()
	if simdPreferred && n >= w {
		var i int
		for i = 0; i+w <= n; i += w {
			fn.ApplyPack(LoadU[T, K](x[i:]), LoadU[T, K](y[i:])).StoreU(dst[i:])
		}
		for ; i < n; i++ {
			dst[i] = fn.Apply(x[i], y[i])
		}
		return
	}
	for i := range n {
		dst[i] = fn.Apply(x[i], y[i])
	}
}

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

// Element-wise arithmetic over matrix views. Every operation is defined
// by a scalar function and the equivalent pack function; the slice
// kernels below run packs over full groups and the scalar form over the
// remainder, one column at a time. In-place forms alias the destination
// with the first operand and are defined to equal the out-of-place form.

func ewise1[T lm.Floats](dst, x []T, sf func(T) T, pf func(lm.Pack[T, dk]) lm.Pack[T, dk]) {
	n := len(dst)
	w := lm.PackWidth[T, dk]()
	var i int
	if lm.SIMDPreferred() && n >= w {
		for ; i+w <= n; i += w {
			pf(lm.LoadU[T, dk](x[i:])).StoreU(dst[i:])
		}
	}
	for ; i < n; i++ {
		dst[i] = sf(x[i])
	}
}

func ewise2[T lm.Floats](dst, x, y []T, sf func(a, b T) T, pf func(a, b lm.Pack[T, dk]) lm.Pack[T, dk]) {
	n := len(dst)
	w := lm.PackWidth[T, dk]()
	var i int
	if lm.SIMDPreferred() && n >= w {
		for ; i+w <= n; i += w {
			pf(lm.LoadU[T, dk](x[i:]), lm.LoadU[T, dk](y[i:])).StoreU(dst[i:])
		}
	}
	for ; i < n; i++ {
		dst[i] = sf(x[i], y[i])
	}
}

// scaleSlice multiplies dst by the broadcast scalar c in place. The mean
// drivers use it for their 1/count post-scaling step.
func scaleSlice[T lm.Floats](dst []T, c T) {
	pc := lm.Set1[T, dk](c)
	ewise1(dst, dst,
		func(a T) T { return a * c },
		func(a lm.Pack[T, dk]) lm.Pack[T, dk] { return lm.Mul(a, pc) })
}

func checkEwise[T lm.Floats](a Dense[T], rest ...Dense[T]) Shape {
	s := a.Shape()
	for _, m := range rest {
		if m.rows != s.Rows || m.cols != s.Cols {
			panic("mat: operand shapes disagree: " + s.String() + " vs " + m.Shape().String())
		}
	}
	return s
}

func binary[T lm.Floats](a, b, dst Dense[T], sf func(x, y T) T, pf func(x, y lm.Pack[T, dk]) lm.Pack[T, dk]) {
	s := checkEwise(a, b, dst)
	for j := range s.Cols {
		ewise2(dst.Col(j), a.Col(j), b.Col(j), sf, pf)
	}
}

func unary[T lm.Floats](a, dst Dense[T], sf func(x T) T, pf func(x lm.Pack[T, dk]) lm.Pack[T, dk]) {
	s := checkEwise(a, dst)
	for j := range s.Cols {
		ewise1(dst.Col(j), a.Col(j), sf, pf)
	}
}

func binaryScalar[T lm.Floats](a Dense[T], c T, dst Dense[T], sf func(x, y T) T, pf func(x, y lm.Pack[T, dk]) lm.Pack[T, dk]) {
	s := checkEwise(a, dst)
	pc := lm.Set1[T, dk](c)
	for j := range s.Cols {
		ewise1(dst.Col(j), a.Col(j),
			func(x T) T { return sf(x, c) },
			func(x lm.Pack[T, dk]) lm.Pack[T, dk] { return pf(x, pc) })
	}
}

// Add writes a + b element-wise into dst. All shapes must agree.
func Add[T lm.Floats](a, b, dst Dense[T]) {
	binary(a, b, dst,
		func(x, y T) T { return x + y }, lm.Add[T, dk])
}

// Sub writes a - b element-wise into dst.
func Sub[T lm.Floats](a, b, dst Dense[T]) {
	binary(a, b, dst,
		func(x, y T) T { return x - y }, lm.Sub[T, dk])
}

// Mul writes a * b element-wise into dst.
func Mul[T lm.Floats](a, b, dst Dense[T]) {
	binary(a, b, dst,
		func(x, y T) T { return x * y }, lm.Mul[T, dk])
}

// Div writes a / b element-wise into dst.
func Div[T lm.Floats](a, b, dst Dense[T]) {
	binary(a, b, dst,
		func(x, y T) T { return x / y }, lm.Div[T, dk])
}

// MaxElem writes the element-wise maximum of a and b into dst.
func MaxElem[T lm.Floats](a, b, dst Dense[T]) {
	binary(a, b, dst,
		func(x, y T) T {
			if y > x {
				return y
			}
			return x
		}, lm.Max[T, dk])
}

// MinElem writes the element-wise minimum of a and b into dst.
func MinElem[T lm.Floats](a, b, dst Dense[T]) {
	binary(a, b, dst,
		func(x, y T) T {
			if y < x {
				return y
			}
			return x
		}, lm.Min[T, dk])
}

// Neg writes -a element-wise into dst.
func Neg[T lm.Floats](a, dst Dense[T]) {
	unary(a, dst,
		func(x T) T { return -x }, lm.Neg[T, dk])
}

// Abs writes |a| element-wise into dst.
func Abs[T lm.Floats](a, dst Dense[T]) {
	unary(a, dst,
		func(x T) T {
			if x < 0 {
				return -x
			}
			return x
		}, lm.Abs[T, dk])
}

// Rcp writes 1 / a element-wise into dst.
func Rcp[T lm.Floats](a, dst Dense[T]) {
	one := lm.Ones[T, dk]()
	unary(a, dst,
		func(x T) T { return 1 / x },
		func(x lm.Pack[T, dk]) lm.Pack[T, dk] { return lm.Div(one, x) })
}

// AddScalar writes a + c element-wise into dst.
func AddScalar[T lm.Floats](a Dense[T], c T, dst Dense[T]) {
	binaryScalar(a, c, dst,
		func(x, y T) T { return x + y }, lm.Add[T, dk])
}

// SubScalar writes a - c element-wise into dst.
func SubScalar[T lm.Floats](a Dense[T], c T, dst Dense[T]) {
	binaryScalar(a, c, dst,
		func(x, y T) T { return x - y }, lm.Sub[T, dk])
}

// MulScalar writes a * c element-wise into dst.
func MulScalar[T lm.Floats](a Dense[T], c T, dst Dense[T]) {
	binaryScalar(a, c, dst,
		func(x, y T) T { return x * y }, lm.Mul[T, dk])
}

// DivScalar writes a / c element-wise into dst.
func DivScalar[T lm.Floats](a Dense[T], c T, dst Dense[T]) {
	binaryScalar(a, c, dst,
		func(x, y T) T { return x / y }, lm.Div[T, dk])
}

// ScalarSub writes c - a element-wise into dst.
func ScalarSub[T lm.Floats](c T, a Dense[T], dst Dense[T]) {
	binaryScalar(a, c, dst,
		func(x, y T) T { return y - x },
		func(x, y lm.Pack[T, dk]) lm.Pack[T, dk] { return lm.Sub(y, x) })
}

// ScalarDiv writes c / a element-wise into dst.
func ScalarDiv[T lm.Floats](c T, a Dense[T], dst Dense[T]) {
	binaryScalar(a, c, dst,
		func(x, y T) T { return y / x },
		func(x, y lm.Pack[T, dk]) lm.Pack[T, dk] { return lm.Div(y, x) })
}

// AddAssign performs a += b element-wise.
func AddAssign[T lm.Floats](a, b Dense[T]) { Add(a, b, a) }

// SubAssign performs a -= b element-wise.
func SubAssign[T lm.Floats](a, b Dense[T]) { Sub(a, b, a) }

// MulAssign performs a *= b element-wise.
func MulAssign[T lm.Floats](a, b Dense[T]) { Mul(a, b, a) }

// DivAssign performs a /= b element-wise.
func DivAssign[T lm.Floats](a, b Dense[T]) { Div(a, b, a) }

// AddScalarAssign performs a += c element-wise.
func AddScalarAssign[T lm.Floats](a Dense[T], c T) { AddScalar(a, c, a) }

// SubScalarAssign performs a -= c element-wise.
func SubScalarAssign[T lm.Floats](a Dense[T], c T) { SubScalar(a, c, a) }

// MulScalarAssign performs a *= c element-wise.
func MulScalarAssign[T lm.Floats](a Dense[T], c T) { MulScalar(a, c, a) }

// DivScalarAssign performs a /= c element-wise.
func DivScalarAssign[T lm.Floats](a Dense[T], c T) { DivScalar(a, c, a) }

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

// Lane-wise pack arithmetic. These are the portable implementations;
// they are written so that every operation touches exactly Width lanes
// and produces a new pack value.

// Add performs lane-wise addition.
func Add[T Floats, K Kind](a, b Pack[T, K]) Pack[T, K] {
	var r Pack[T, K]
	for i := range PackWidth[T, K]() {
		r.lane[i] = a.lane[i] + b.lane[i]
	}
	return r
}

// Sub performs lane-wise subtraction.
func Sub[T Floats, K Kind](a, b Pack[T, K]) Pack[T, K] {
	var r Pack[T, K]
	for i := range PackWidth[T, K]() {
		r.lane[i] = a.lane[i] - b.lane[i]
	}
	return r
}

// Mul performs lane-wise multiplication.
func Mul[T Floats, K Kind](a, b Pack[T, K]) Pack[T, K] {
	var r Pack[T, K]
	for i := range PackWidth[T, K]() {
		r.lane[i] = a.lane[i] * b.lane[i]
	}
	return r
}

// Div performs lane-wise division.
func Div[T Floats, K Kind](a, b Pack[T, K]) Pack[T, K] {
	var r Pack[T, K]
	for i := range PackWidth[T, K]() {
		r.lane[i] = a.lane[i] / b.lane[i]
	}
	return r
}

// Neg negates every lane.
func Neg[T Floats, K Kind](a Pack[T, K]) Pack[T, K] {
	var r Pack[T, K]
	for i := range PackWidth[T, K]() {
		r.lane[i] = -a.lane[i]
	}
	return r
}

// Abs returns the lane-wise absolute value.
func Abs[T Floats, K Kind](a Pack[T, K]) Pack[T, K] {
	var r Pack[T, K]
	for i := range PackWidth[T, K]() {
		v := a.lane[i]
		if v < 0 {
			v = -v
		}
		r.lane[i] = v
	}
	return r
}

// Max returns the lane-wise maximum as the select b > a ? b : a, the
// same rule the maximum folder applies to scalars. A NaN in b compares
// false and keeps a.
func Max[T Floats, K Kind](a, b Pack[T, K]) Pack[T, K] {
	var r Pack[T, K]
	for i := range PackWidth[T, K]() {
		if b.lane[i] > a.lane[i] {
			r.lane[i] = b.lane[i]
		} else {
			r.lane[i] = a.lane[i]
		}
	}
	return r
}

// Min returns the lane-wise minimum as the select b < a ? b : a, with
// the same NaN policy as Max.
func Min[T Floats, K Kind](a, b Pack[T, K]) Pack[T, K] {
	var r Pack[T, K]
	for i := range PackWidth[T, K]() {
		if b.lane[i] < a.lane[i] {
			r.lane[i] = b.lane[i]
		} else {
			r.lane[i] = a.lane[i]
		}
	}
	return r
}

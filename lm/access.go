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

// AccessTag selects the traversal strategy for one reduction call:
// one element at a time, or one pack at a time with a scalar tail.
// The tag is decided once per call, never per element.
//
// Linear access itself is not a runtime property here: fold kernels only
// accept contiguous []T views, so an operand that cannot produce one
// does not compile against this API.
type AccessTag int

const (
	// AccessScalar processes one element at a time.
	AccessScalar AccessTag = iota

	// AccessSIMD processes PackWidth elements at a time, with a scalar
	// remainder loop for the final partial group.
	AccessSIMD
)

// String returns a human-readable name for the access tag.
func (t AccessTag) String() string {
	switch t {
	case AccessScalar:
		return "scalar"
	case AccessSIMD:
		return "simd"
	default:
		return "unknown"
	}
}

// ReducePolicy decides the access tag for folding n elements with f.
// The pack path is chosen only when the folder vectorizes, the host
// prefers the compiled-in kind, and there is at least one full pack of
// work.
func ReducePolicy[T Floats, K Kind](n int, f Folder[T, K]) AccessTag {
	if !f.Vectorizable() || !simdPreferred || n < PackWidth[T, K]() {
		return AccessScalar
	}
	return AccessSIMD
}

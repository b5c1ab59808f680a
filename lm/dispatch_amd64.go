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

//go:build amd64

package lm

import "golang.org/x/sys/cpu"

// DefaultKind is the compiled-in pack kind for amd64: 256-bit registers.
type DefaultKind = K256

func init() {
	if NoSimdEnv() {
		simdPreferred = false
		currentName = "scalar"
		return
	}
	if cpu.X86.HasAVX2 {
		simdPreferred = true
		currentName = "avx2"
		return
	}
	// Pre-AVX2 hosts keep the 256-bit kind but run it through the
	// scalar path.
	simdPreferred = false
	currentName = "scalar"
}

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

import (
	"os"
	"strconv"
)

// The pack kind is fixed at compile time (DefaultKind in dispatch_*.go);
// what the host probe decides is only whether vectorized traversal is
// worth preferring on this machine. The access policy consults that
// preference once per reduction call.

// simdPreferred records whether the host supports the compiled-in kind.
// Set by init() in dispatch_*.go files.
var simdPreferred bool

// currentName is the human-readable name of the active configuration.
// Set by init() in dispatch_*.go files.
var currentName string

// SIMDPreferred reports whether vectorized traversal is preferred on
// this host for the compiled-in default kind.
func SIMDPreferred() bool {
	return simdPreferred
}

// CurrentName returns a human-readable name for the active configuration,
// for example "avx2", "neon", or "scalar".
func CurrentName() string {
	return currentName
}

// NoSimdEnv checks if the LM_NO_SIMD environment variable is set.
// When set, reductions use the scalar path regardless of CPU
// capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("LM_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

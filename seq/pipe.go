// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package seq

// This file contains the matrix of Pipe{,2,3}: left-to-right application
// of deferred adaptors, standing in for the pipe operator of languages
// that have one. `Pipe2(r, MapBy(f), TakeBy(3))` reads the way
// `r | map(f) | take(3)` would.

// Pipe applies a deferred adaptor to a range.
func Pipe[E, R any](r Range[E], f func(Range[E]) R) R {
	return f(r)
}

// Pipe2 applies two deferred adaptors to a range, left to right.
func Pipe2[E, M, R any](r Range[E], f func(Range[E]) M, g func(M) R) R {
	return g(f(r))
}

// Pipe3 applies three deferred adaptors to a range, left to right.
func Pipe3[E, M1, M2, R any](r Range[E], f func(Range[E]) M1, g func(M1) M2, h func(M2) R) R {
	return h(g(f(r)))
}

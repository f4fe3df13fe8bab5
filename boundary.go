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

package takebefore

import "github.com/bufbuild/takebefore/seq"

// Boundary is the sentinel of a [View]: a position is at the boundary if
// it is at the underlying range's end, or if the element there equals the
// delimiter.
//
// Boundaries are disposable values minted by [View.End]; they hold the
// underlying sentinel and, for non-tidy delimiter types, a pointer to the
// delimiter stored in the View that minted them. They have no state
// machine and no identity: any number of them may exist at once and all
// of them agree.
type Boundary[E comparable] struct {
	end seq.Sentinel[E]

	// nil when E is tidy; a fresh value is synthesized per comparison
	// instead.
	value *E
}

// Base returns the underlying range's sentinel.
func (b Boundary[E]) Base() seq.Sentinel[E] {
	return b.end
}

// Done implements [seq.Sentinel].
//
// The underlying end is tested before the element is read: once a cursor
// is at the true end there is no element, and cursors like [seq.Ptr] may
// not even have readable memory there.
func (b Boundary[E]) Done(c seq.Cursor[E]) bool {
	if b.end.Done(c) {
		return true
	}
	if b.value == nil {
		var value E
		return c.At() == value
	}
	return c.At() == *b.value
}

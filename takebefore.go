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

// Package takebefore provides a lazy view over the longest prefix of a
// sequence preceding the first occurrence of a delimiter value.
//
// The view never scans ahead: the delimiter test is folded into the
// sequence's end sentinel (a [Boundary]), so termination is decided one
// step at a time during ordinary forward traversal. Sources with no
// natural end at all, such as a pointer scan over a nul-terminated
// buffer, become finite by the same mechanism; see [FromCursor].
//
// Views compose with the adaptors in package [seq]:
//
//	evens := seq.Pipe2(src,
//		seq.MapBy(double),
//		takebefore.By(6),
//	)
package takebefore

import (
	"iter"

	"github.com/bufbuild/takebefore/internal/ext/unsafex"
	"github.com/bufbuild/takebefore/seq"
)

// View is a [seq.Range] over the prefix of a base range that precedes the
// first element equal to a delimiter value.
//
// A View owns its delimiter and a copy of the base range, nothing else.
// Traversal mutates neither, so a View may be walked any number of times
// and always yields the same prefix (for an unchanged source). The zero
// View is an empty view.
type View[E comparable] struct {
	base seq.Range[E]

	// Populated once by [New] and never written again; nil only in the
	// zero View.
	value *E
}

// New constructs a view over the elements of base before the first
// occurrence of value.
//
// If value never occurs, the view is all of base. The delimiter itself is
// never yielded.
func New[E comparable](base seq.Range[E], value E) View[E] {
	return View[E]{base: base, value: &value}
}

// FromCursor constructs a view over the elements from position c up to
// the first occurrence of value.
//
// The cursor is paired with [seq.Unbounded]: there is no natural end, and
// the delimiter alone terminates traversal. This is the shape to reach
// for when scanning implicitly terminated data, such as walking a
// [seq.Ptr] over a nul-terminated buffer. If value never occurs,
// traversal does not terminate.
func FromCursor[E comparable](c seq.Cursor[E], value E) View[E] {
	return New[E](seq.NewSub(c, seq.Unbounded[E]{}), value)
}

// By returns the deferred form of [New] for use with [seq.Pipe]:
// By(v)(r) and New(r, v) are the same view.
func By[E comparable](value E) func(seq.Range[E]) seq.Range[E] {
	return func(r seq.Range[E]) seq.Range[E] { return New(r, value) }
}

// Base returns the underlying range.
func (v View[E]) Base() seq.Range[E] {
	return v.base
}

// Begin implements [seq.Range]. It is the underlying range's begin,
// unchanged.
func (v View[E]) Begin() seq.Cursor[E] {
	if v.base == nil {
		return seq.NewSlice[E](nil).Begin()
	}
	return v.base.Begin()
}

// End implements [seq.Range]. It returns a fresh [Boundary] on every
// call.
//
// When E is a tidy type the boundary does not retain the delimiter: an
// instance can be synthesized at comparison time instead, and the
// boundary depends on nothing stored in the View.
func (v View[E]) End() seq.Sentinel[E] {
	var end seq.Sentinel[E]
	if v.base == nil {
		end = seq.NewSlice[E](nil).End()
	} else {
		end = v.base.End()
	}
	if tidy[E]() {
		return Boundary[E]{end: end}
	}
	return Boundary[E]{end: end, value: v.value}
}

// Values bridges the view to an [iter.Seq] over its elements.
func (v View[E]) Values() iter.Seq[E] {
	return seq.Values[E](v)
}

// Borrowed implements [seq.Borrower].
//
// The view is borrowed only when the base is borrowed and the delimiter
// type is tidy. A non-tidy delimiter lives inside the View, and every
// [Boundary] the view hands out points at it, so the combination cannot
// claim independence from the View value.
func (v View[E]) Borrowed() bool {
	return tidy[E]() && seq.IsBorrowed(v.base)
}

// tidy reports whether E carries no runtime state, in which case a fresh
// instance is as good as a stored one. In Go every type is trivially
// constructible and destructible, so emptiness is the entire test.
func tidy[E any]() bool {
	return unsafex.LayoutOf[E]().Size == 0
}

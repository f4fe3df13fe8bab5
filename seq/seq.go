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

// Package seq provides the cursor/sentinel contract that this module's
// adaptors are written against.
//
// A sequence is anything implementing [Range]: it hands out a fresh
// [Cursor] positioned at its first element, and a [Sentinel] that decides
// when a cursor has run off the end. Unlike a plain range func, a cursor
// is a first-class position: it can be stored, copied, re-walked, and
// compared against sentinels other than the one its range was born with.
// That last property is what makes delimiter-style adaptors possible,
// where "the end" is a predicate rather than a place.
//
// Cursors are immutable values. Advancing one returns a new cursor and
// leaves the original where it was, so every traversal of a [Range] is
// independent and ranges are trivially re-iterable.
package seq

import (
	"iter"
	"slices"
)

// Cursor is a forward reading position within some sequence.
//
// At must not be called on a cursor that its range's sentinel reports as
// done; what happens then is the underlying sequence's business, and for
// most of the cursors in this package it is a panic.
type Cursor[E any] interface {
	// At returns the element at this position.
	At() E

	// Next returns the position one step forward.
	Next() Cursor[E]
}

// MutCursor is a [Cursor] whose position can be written through.
//
// Every MutCursor is usable as a Cursor; the reverse conversion does not
// exist. Sentinels compare against the read-only interface, so a mutable
// cursor and its read-only self always agree on where the sequence ends.
type MutCursor[E any] interface {
	Cursor[E]

	// Set overwrites the element at this position.
	Set(value E)
}

// Sentinel decides whether a cursor has reached the end of a sequence.
//
// A sentinel is not a position; it is a comparison value. Done may be
// called any number of times against any cursor produced by the same
// range, and should panic if handed a cursor from somewhere else.
type Sentinel[E any] interface {
	// Done reports whether c is at (or past) the end.
	Done(c Cursor[E]) bool
}

// Range is a view over a sequence of elements.
//
// Ranges are cheap values: copying one never copies elements. Begin
// returns a fresh cursor on every call, and End a fresh sentinel, so a
// Range may be traversed any number of times with identical results
// (assuming the underlying data is not mutated between walks).
type Range[E any] interface {
	// Begin returns a cursor at the first element.
	Begin() Cursor[E]

	// End returns the sentinel terminating this sequence.
	End() Sentinel[E]
}

// Borrower is implemented by ranges whose cursors and sentinels remain
// valid independently of the range value that produced them.
//
// Such a range may safely outlive the expression it came from: nothing a
// traversal touches lives inside the range value itself.
type Borrower interface {
	Borrowed() bool
}

// IsBorrowed reports whether r advertises itself as borrowed via
// [Borrower]. Ranges that say nothing are assumed not to be.
func IsBorrowed(r any) bool {
	b, ok := r.(Borrower)
	return ok && b.Borrowed()
}

// Values bridges a [Range] to an [iter.Seq] over its elements.
func Values[E any](r Range[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		end := r.End()
		for c := r.Begin(); !end.Done(c); c = c.Next() {
			if !yield(c.At()) {
				return
			}
		}
	}
}

// Collect copies a [Range] into a slice.
func Collect[E any](r Range[E]) []E {
	return slices.Collect(Values(r))
}

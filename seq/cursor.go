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

import (
	"golang.org/x/exp/constraints"

	"github.com/bufbuild/takebefore/internal/ext/unsafex"
)

// Sub is a [Range] assembled from an explicit cursor/sentinel pair.
//
// It is the escape hatch for sequences that exist only as a position: a
// pointer into an implicitly terminated buffer, a generator, a cursor
// handed out by some other range. Pairing such a position with
// [Unbounded] yields a range with no natural end, which only makes sense
// under an adaptor that supplies the end some other way.
type Sub[E any] struct {
	begin Cursor[E]
	end   Sentinel[E]
}

// NewSub constructs a new [Sub] from a starting position and a sentinel.
func NewSub[E any](begin Cursor[E], end Sentinel[E]) Sub[E] {
	return Sub[E]{begin, end}
}

// Begin implements [Range].
func (r Sub[E]) Begin() Cursor[E] {
	return r.begin
}

// End implements [Range].
func (r Sub[E]) End() Sentinel[E] {
	return r.end
}

// Borrowed implements [Borrower]. A Sub is just its cursor and sentinel,
// both of which are free-standing values already.
func (r Sub[E]) Borrowed() bool {
	return true
}

// Unbounded is the sentinel of a sequence with no natural end: Done never
// fires. Traversal under an Unbounded sentinel terminates only if some
// enclosing adaptor cuts it short.
type Unbounded[E any] struct{}

// Done implements [Sentinel].
func (Unbounded[E]) Done(Cursor[E]) bool {
	return false
}

// Ptr is a cursor that walks raw memory one element at a time.
//
// It has no idea where the buffer ends; the caller is responsible for
// pairing it with a sentinel (or a delimiter-style adaptor) that stops
// traversal before it runs off the allocation. This is the moral
// equivalent of a C pointer scan and carries the same caveats.
type Ptr[E any] struct {
	p *E
}

// NewPtr constructs a new [Ptr] starting at p.
func NewPtr[E any](p *E) Ptr[E] {
	return Ptr[E]{p}
}

// At implements [Cursor].
func (c Ptr[E]) At() E {
	return *c.p
}

// Next implements [Cursor].
func (c Ptr[E]) Next() Cursor[E] {
	return Ptr[E]{unsafex.Index(c.p, 1)}
}

// Count returns an endless cursor counting up from start.
func Count[T constraints.Integer](start T) Cursor[T] {
	return counter[T]{start}
}

type counter[T constraints.Integer] struct {
	n T
}

func (c counter[T]) At() T {
	return c.n
}

func (c counter[T]) Next() Cursor[T] {
	return counter[T]{c.n + 1}
}

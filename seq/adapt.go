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

import "fmt"

// This file contains the lazy adaptors {Map, Filter, Take, Drop}, each as
// a direct form and a By form that defers the range for use with [Pipe].
// All of them are cursor-level rewrites: no elements are buffered, and
// composing them costs one wrapper per step per adaptor.

// Map returns a new range applying f to each element of r.
func Map[E, U any](r Range[E], f func(E) U) Range[U] {
	return mapRange[E, U]{r, f}
}

// MapBy is the deferred form of [Map].
func MapBy[E, U any](f func(E) U) func(Range[E]) Range[U] {
	return func(r Range[E]) Range[U] { return Map(r, f) }
}

type mapRange[E, U any] struct {
	base Range[E]
	f    func(E) U
}

func (r mapRange[E, U]) Begin() Cursor[U] {
	return mapCursor[E, U]{r.base.Begin(), r.f}
}

func (r mapRange[E, U]) End() Sentinel[U] {
	return mapEnd[E, U]{r.base.End()}
}

func (r mapRange[E, U]) Borrowed() bool {
	return IsBorrowed(r.base)
}

type mapCursor[E, U any] struct {
	inner Cursor[E]
	f     func(E) U
}

func (c mapCursor[E, U]) At() U {
	return c.f(c.inner.At())
}

func (c mapCursor[E, U]) Next() Cursor[U] {
	return mapCursor[E, U]{c.inner.Next(), c.f}
}

type mapEnd[E, U any] struct {
	end Sentinel[E]
}

func (e mapEnd[E, U]) Done(c Cursor[U]) bool {
	return e.end.Done(unwrap[mapCursor[E, U]](c).inner)
}

// Filter returns a new range that only includes elements satisfying keep.
func Filter[E any](r Range[E], keep func(E) bool) Range[E] {
	return filterRange[E]{r, keep}
}

// FilterBy is the deferred form of [Filter].
func FilterBy[E any](keep func(E) bool) func(Range[E]) Range[E] {
	return func(r Range[E]) Range[E] { return Filter(r, keep) }
}

type filterRange[E any] struct {
	base Range[E]
	keep func(E) bool
}

func (r filterRange[E]) Begin() Cursor[E] {
	c := filterCursor[E]{r.base.Begin(), r.base.End(), r.keep}
	return c.settle()
}

func (r filterRange[E]) End() Sentinel[E] {
	return filterEnd[E]{}
}

func (r filterRange[E]) Borrowed() bool {
	return IsBorrowed(r.base)
}

// filterCursor carries its range's underlying sentinel: skipping rejected
// elements requires knowing where the underlying sequence stops.
type filterCursor[E any] struct {
	inner Cursor[E]
	end   Sentinel[E]
	keep  func(E) bool
}

// settle advances inner to the next element satisfying keep, or to the
// underlying end, whichever comes first.
func (c filterCursor[E]) settle() filterCursor[E] {
	for !c.end.Done(c.inner) && !c.keep(c.inner.At()) {
		c.inner = c.inner.Next()
	}
	return c
}

func (c filterCursor[E]) At() E {
	return c.inner.At()
}

func (c filterCursor[E]) Next() Cursor[E] {
	c.inner = c.inner.Next()
	return c.settle()
}

type filterEnd[E any] struct{}

func (filterEnd[E]) Done(c Cursor[E]) bool {
	fc := unwrap[filterCursor[E]](c)
	return fc.end.Done(fc.inner)
}

// Take returns a new range limited to at most n elements of r.
func Take[E any](r Range[E], n int) Range[E] {
	return takeRange[E]{r, n}
}

// TakeBy is the deferred form of [Take].
func TakeBy[E any](n int) func(Range[E]) Range[E] {
	return func(r Range[E]) Range[E] { return Take(r, n) }
}

type takeRange[E any] struct {
	base Range[E]
	n    int
}

func (r takeRange[E]) Begin() Cursor[E] {
	return takeCursor[E]{r.base.Begin(), r.n}
}

func (r takeRange[E]) End() Sentinel[E] {
	return takeEnd[E]{r.base.End()}
}

func (r takeRange[E]) Borrowed() bool {
	return IsBorrowed(r.base)
}

type takeCursor[E any] struct {
	inner Cursor[E]
	left  int
}

func (c takeCursor[E]) At() E {
	return c.inner.At()
}

func (c takeCursor[E]) Next() Cursor[E] {
	return takeCursor[E]{c.inner.Next(), c.left - 1}
}

type takeEnd[E any] struct {
	end Sentinel[E]
}

func (e takeEnd[E]) Done(c Cursor[E]) bool {
	tc := unwrap[takeCursor[E]](c)
	return tc.left <= 0 || e.end.Done(tc.inner)
}

// Drop returns a new range skipping the first n elements of r.
//
// The skip happens on Begin, not on construction, so a Drop over a
// mutated source re-skips from the current state on every traversal.
func Drop[E any](r Range[E], n int) Range[E] {
	return dropRange[E]{r, n}
}

// DropBy is the deferred form of [Drop].
func DropBy[E any](n int) func(Range[E]) Range[E] {
	return func(r Range[E]) Range[E] { return Drop(r, n) }
}

type dropRange[E any] struct {
	base Range[E]
	n    int
}

func (r dropRange[E]) Begin() Cursor[E] {
	c := r.base.Begin()
	end := r.base.End()
	for i := 0; i < r.n && !end.Done(c); i++ {
		c = c.Next()
	}
	return c
}

func (r dropRange[E]) End() Sentinel[E] {
	return r.base.End()
}

func (r dropRange[E]) Borrowed() bool {
	return IsBorrowed(r.base)
}

// unwrap recovers an adaptor's concrete cursor from the interface its
// sentinel is handed, panicking on cursors from some other range.
func unwrap[C any](c any) C {
	out, ok := c.(C)
	if !ok {
		panic(fmt.Sprintf("seq: sentinel compared against foreign cursor %T", c))
	}
	return out
}

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

// Slice implements [Range] using an ordinary slice as the backing storage.
//
// A Slice is borrowed: its cursors carry the slice header themselves, so
// they stay valid after the Slice value is gone. Its cursors also
// implement [MutCursor], writing through to the backing array.
type Slice[E any] struct {
	elems []E
}

// NewSlice constructs a new [Slice].
//
// This function exists because Go currently will not infer type parameters
// of a type.
func NewSlice[E any](elems []E) Slice[E] {
	return Slice[E]{elems}
}

// Begin implements [Range].
func (r Slice[E]) Begin() Cursor[E] {
	return sliceCursor[E]{r.elems, 0}
}

// End implements [Range].
func (r Slice[E]) End() Sentinel[E] {
	return sliceEnd[E]{}
}

// Borrowed implements [Borrower].
func (r Slice[E]) Borrowed() bool {
	return true
}

type sliceCursor[E any] struct {
	elems []E
	idx   int
}

func (c sliceCursor[E]) At() E {
	return c.elems[c.idx]
}

func (c sliceCursor[E]) Next() Cursor[E] {
	return sliceCursor[E]{c.elems, c.idx + 1}
}

func (c sliceCursor[E]) Set(value E) {
	c.elems[c.idx] = value
}

type sliceEnd[E any] struct{}

func (sliceEnd[E]) Done(c Cursor[E]) bool {
	sc, ok := c.(sliceCursor[E])
	if !ok {
		panic(fmt.Sprintf("seq: slice sentinel compared against foreign cursor %T", c))
	}
	return sc.idx >= len(sc.elems)
}

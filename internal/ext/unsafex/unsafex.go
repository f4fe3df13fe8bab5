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

// Package unsafex contains extensions to Go's package unsafe.
//
// Importing this package should be treated as equivalent to importing unsafe.
package unsafex

import "unsafe"

// Layout is the layout of a type.
//
// This is a more convenient abstraction than manipulating the size and
// alignment separately.
type Layout struct {
	Size, Align int
}

// LayoutOf returns the layout of some type.
func LayoutOf[T any]() Layout {
	var v T
	return Layout{
		Size:  int(unsafe.Sizeof(v)),
		Align: int(unsafe.Alignof(v)),
	}
}

// Index is like [unsafe.Add], but it operates on a typed pointer and scales
// the offset by that type's size, similar to pointer arithmetic in Rust or C.
//
// This function has the same safety caveats as [unsafe.Add].
func Index[T any](p *T, idx int) *T {
	raw := unsafe.Pointer(p)
	raw = unsafe.Add(raw, idx*LayoutOf[T]().Size)
	return (*T)(raw)
}

// StringData is like [unsafe.StringData], but it accepts any type whose
// underlying type is string.
func StringData[S ~string](data S) *byte {
	return unsafe.StringData(string(data))
}

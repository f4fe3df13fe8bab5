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

package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/takebefore/seq"
)

func TestSlice(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	src := seq.NewSlice([]int{10, 20, 30})
	assert.Equal([]int{10, 20, 30}, seq.Collect[int](src))
	assert.True(src.Borrowed())

	c := src.Begin()
	end := src.End()
	assert.Equal(10, c.At())
	assert.Equal(20, c.Next().At())
	assert.False(end.Done(c))
	assert.True(end.Done(c.Next().Next().Next()))

	// Cursors are positions, not state: the original is unmoved.
	assert.Equal(10, c.At())
}

func TestSliceMutCursor(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	elems := []int{1, 2, 3}
	src := seq.NewSlice(elems)
	mc, ok := src.Begin().(seq.MutCursor[int])
	require.True(ok)

	mc.Set(7)
	next, ok := mc.Next().(seq.MutCursor[int])
	require.True(ok)
	next.Set(8)
	assert.Equal([]int{7, 8, 3}, elems)
}

func TestForeignCursorPanics(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	end := seq.NewSlice([]int{1}).End()
	assert.Panics(func() {
		end.Done(seq.Count(0))
	})
}

func TestMap(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	src := seq.NewSlice([]int{1, 2, 3})
	strs := seq.Map[int](src, func(x int) string {
		return string(rune('a' + x - 1))
	})
	assert.Equal([]string{"a", "b", "c"}, seq.Collect(strs))
	assert.True(seq.IsBorrowed(strs))
}

func TestMapIsLazy(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var calls int
	src := seq.NewSlice([]int{1, 2, 3, 4, 5})
	doubled := seq.Map[int](src, func(x int) int {
		calls++
		return 2 * x
	})
	assert.Equal([]int{2, 4}, seq.Collect(seq.Take[int](doubled, 2)))
	assert.Equal(2, calls)
}

func TestFilter(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	odd := func(x int) bool { return x%2 == 1 }
	assert.Equal([]int{1, 3, 5}, seq.Collect(seq.Filter[int](seq.NewSlice([]int{1, 2, 3, 4, 5}), odd)))
	assert.Empty(seq.Collect(seq.Filter[int](seq.NewSlice([]int{2, 4}), odd)))
	assert.Empty(seq.Collect(seq.Filter[int](seq.NewSlice[int](nil), odd)))
}

func TestTake(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	src := seq.NewSlice([]int{1, 2, 3})
	assert.Equal([]int{1, 2}, seq.Collect(seq.Take[int](src, 2)))
	assert.Equal([]int{1, 2, 3}, seq.Collect(seq.Take[int](src, 10)))
	assert.Empty(seq.Collect(seq.Take[int](src, 0)))
}

func TestDrop(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	src := seq.NewSlice([]int{1, 2, 3})
	assert.Equal([]int{3}, seq.Collect(seq.Drop[int](src, 2)))
	assert.Empty(seq.Collect(seq.Drop[int](src, 10)))
	assert.Equal([]int{1, 2, 3}, seq.Collect(seq.Drop[int](src, 0)))
}

func TestPipe(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	src := seq.NewSlice([]int{1, 2, 3, 4, 5, 6})
	got := seq.Pipe3[int](src,
		seq.FilterBy(func(x int) bool { return x%2 == 0 }),
		seq.MapBy(func(x int) int { return x * 10 }),
		seq.TakeBy[int](2),
	)
	assert.Equal([]int{20, 40}, seq.Collect(got))
}

func TestPtr(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	arr := [4]int{4, 5, 6, 7}
	src := seq.NewSub[int](seq.NewPtr(&arr[0]), seq.Unbounded[int]{})
	assert.Equal([]int{4, 5, 6}, seq.Collect(seq.Take[int](src, 3)))
	assert.True(src.Borrowed())
}

func TestCount(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	src := seq.NewSub[int](seq.Count(3), seq.Unbounded[int]{})
	assert.Equal([]int{3, 4, 5, 6}, seq.Collect(seq.Take[int](src, 4)))
}

func TestValuesEarlyBreak(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var seen []int
	for x := range seq.Values[int](seq.NewSlice([]int{1, 2, 3})) {
		seen = append(seen, x)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal([]int{1, 2}, seen)
}

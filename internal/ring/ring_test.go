// MIT License
//
// Copyright (c) 2024-2026 Schemakit Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRing(t *testing.T) {
	t.Run("With empty ring", func(t *testing.T) {
		r := New[int]()
		assert.Zero(t, r.Len())
		assert.True(t, r.IsEmpty())
		assert.Nil(t, r.Front())
		assert.Empty(t, r.Values())
	})

	t.Run("With push back ordering", func(t *testing.T) {
		r := New[string]()
		r.PushBack("a")
		r.PushBack("b")
		r.PushBack("c")
		require.Equal(t, 3, r.Len())
		assert.Equal(t, []string{"a", "b", "c"}, r.Values())
	})

	t.Run("With removal by handle", func(t *testing.T) {
		r := New[int]()
		first := r.PushBack(1)
		middle := r.PushBack(2)
		last := r.PushBack(3)

		r.Remove(middle)
		assert.Equal(t, []int{1, 3}, r.Values())

		r.Remove(first)
		r.Remove(last)
		assert.True(t, r.IsEmpty())
		assert.Nil(t, r.Front())
	})

	t.Run("With removal of detached node", func(t *testing.T) {
		r := New[int]()
		n := r.PushBack(1)
		r.Remove(n)
		require.Zero(t, r.Len())
		// removing twice must not corrupt the ring
		r.Remove(n)
		assert.Zero(t, r.Len())
	})

	t.Run("With removal of foreign node", func(t *testing.T) {
		r1 := New[int]()
		r2 := New[int]()
		n := r2.PushBack(42)
		r1.Remove(n)
		assert.Equal(t, 1, r2.Len())
	})

	t.Run("With nil node removal", func(t *testing.T) {
		r := New[int]()
		r.PushBack(1)
		r.Remove(nil)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("With iteration via Next", func(t *testing.T) {
		r := New[int]()
		for i := 1; i <= 5; i++ {
			r.PushBack(i)
		}
		var got []int
		for n := r.Front(); n != nil; n = r.Next(n) {
			got = append(got, n.Value)
		}
		assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
	})

	t.Run("With interleaved insert and remove", func(t *testing.T) {
		r := New[int]()
		a := r.PushBack(1)
		r.PushBack(2)
		r.Remove(a)
		r.PushBack(3)
		assert.Equal(t, []int{2, 3}, r.Values())
	})
}

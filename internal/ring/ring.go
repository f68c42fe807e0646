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

// Package ring implements a circular doubly-linked list whose node handles
// allow O(1) removal without a lookup. It is the membership structure backing
// holder sets and subscription lists.
package ring

// Node is an element of a Ring. A Node belongs to at most one Ring at a time;
// holding on to a Node after it has been removed is allowed, re-inserting it
// requires a new PushBack.
type Node[T any] struct {
	prev, next *Node[T]
	ring       *Ring[T]
	// Value is the payload carried by this node.
	Value T
}

// Ring is a circular doubly-linked list with a sentinel root. The zero value
// is not usable; create instances with New.
type Ring[T any] struct {
	root Node[T]
	len  int
}

// New creates an empty ring.
func New[T any]() *Ring[T] {
	r := &Ring[T]{}
	r.root.prev = &r.root
	r.root.next = &r.root
	return r
}

// Len returns the number of nodes in the ring.
func (r *Ring[T]) Len() int {
	return r.len
}

// IsEmpty returns true when the ring holds no nodes.
func (r *Ring[T]) IsEmpty() bool {
	return r.len == 0
}

// Front returns the first node of the ring or nil when the ring is empty.
func (r *Ring[T]) Front() *Node[T] {
	if r.len == 0 {
		return nil
	}
	return r.root.next
}

// Next returns the node after n or nil when n is the last node.
func (r *Ring[T]) Next(n *Node[T]) *Node[T] {
	if n == nil || n.ring != r || n.next == &r.root {
		return nil
	}
	return n.next
}

// PushBack appends v at the end of the ring and returns the node handle.
func (r *Ring[T]) PushBack(v T) *Node[T] {
	n := &Node[T]{Value: v, ring: r}
	last := r.root.prev
	last.next = n
	n.prev = last
	n.next = &r.root
	r.root.prev = n
	r.len++
	return n
}

// Remove detaches n from the ring. It is a no-op when n is nil or belongs to
// another ring. The node's links are cleared so a removed node cannot be used
// to reach the ring afterwards.
func (r *Ring[T]) Remove(n *Node[T]) {
	if n == nil || n.ring != r {
		return
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil
	n.ring = nil
	r.len--
}

// Values returns the node payloads in ring order.
func (r *Ring[T]) Values() []T {
	out := make([]T, 0, r.len)
	for n := r.Front(); n != nil; n = r.Next(n) {
		out = append(out, n.Value)
	}
	return out
}

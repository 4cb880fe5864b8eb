// Package minheap provides an array-backed binary min-heap and the
// "hire k workers" cost puzzle built on it.
//
// The heap is stored in level order: node i has children at 2*i+1 and
// 2*i+2 and its parent at (i-1)/2.
package minheap

import "cmp"

// Heap is a binary min-heap of ordered values. The zero value is an empty
// heap ready to use.
type Heap[T cmp.Ordered] struct {
	data []T
}

// New returns an empty heap with room for capacity values before it grows.
func New[T cmp.Ordered](capacity int) *Heap[T] {
	return &Heap[T]{data: make([]T, 0, max(capacity, 0))}
}

// Len returns the number of values in the heap.
func (h *Heap[T]) Len() int { return len(h.data) }

// Push adds v and restores the heap order by moving it up past any larger
// parent. Equal values stay below their parent.
func (h *Heap[T]) Push(v T) {
	h.data = append(h.data, v)
	i := len(h.data) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if h.data[i] >= h.data[parent] {
			break
		}
		h.data[i], h.data[parent] = h.data[parent], h.data[i]
		i = parent
	}
}

// Peek returns the smallest value without removing it. ok is false when the
// heap is empty.
func (h *Heap[T]) Peek() (v T, ok bool) {
	if len(h.data) == 0 {
		return v, false
	}
	return h.data[0], true
}

// Pop removes and returns the smallest value. ok is false when the heap is
// empty.
func (h *Heap[T]) Pop() (v T, ok bool) {
	if len(h.data) == 0 {
		return v, false
	}
	top := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	var zero T
	h.data[last] = zero
	h.data = h.data[:last]
	h.down(0)
	return top, true
}

// down sifts the value at i toward the leaves. The right child is taken only
// when strictly smaller than the left.
func (h *Heap[T]) down(i int) {
	n := len(h.data)
	for 2*i+1 < n {
		l, r := 2*i+1, 2*i+2
		smallest := l
		if r < n && h.data[r] < h.data[l] {
			smallest = r
		}
		if h.data[i] <= h.data[smallest] {
			return
		}
		h.data[i], h.data[smallest] = h.data[smallest], h.data[i]
		i = smallest
	}
}

// File: ring/iter.go
// Author: momentics <momentics@gmail.com>
//
// Read-only traversal as range-over-func iterators.

package ring

import "iter"

// Values returns a forward iterator over the elements, front to back.
func (b *Buffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < b.count; i++ {
			if !yield(b.data[b.slot(i)]) {
				return
			}
		}
	}
}

// All returns a forward iterator over (index, element) pairs.
func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < b.count; i++ {
			if !yield(i, b.data[b.slot(i)]) {
				return
			}
		}
	}
}

// Backward returns a reverse iterator over (index, element) pairs,
// back to front.
func (b *Buffer[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := b.count - 1; i >= 0; i-- {
			if !yield(i, b.data[b.slot(i)]) {
				return
			}
		}
	}
}

// FromSeq returns a buffer holding every value seq produces, capacity
// equal to the value count.
func FromSeq[T any](seq iter.Seq[T], opts ...Option[T]) (*Buffer[T], error) {
	var vals []T
	for v := range seq {
		vals = append(vals, v)
	}
	return FromSlice(vals, opts...)
}

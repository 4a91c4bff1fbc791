// File: ring/sort.go
// Author: momentics <momentics@gmail.com>
//
// In-place sorting of the logical window. The adapter permutes logical
// positions, so a wrapped window sorts the same as a contiguous one.

package ring

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// sortAdapter presents the window to the sort package.
type sortAdapter[T any] struct {
	buf  *Buffer[T]
	less func(a, b T) bool
}

func (s sortAdapter[T]) Len() int { return s.buf.count }

func (s sortAdapter[T]) Less(i, j int) bool {
	return s.less(s.buf.data[s.buf.slot(i)], s.buf.data[s.buf.slot(j)])
}

func (s sortAdapter[T]) Swap(i, j int) {
	pi, pj := s.buf.slot(i), s.buf.slot(j)
	s.buf.data[pi], s.buf.data[pj] = s.buf.data[pj], s.buf.data[pi]
}

// Sort reorders the window ascending.
func Sort[T constraints.Ordered](b *Buffer[T]) {
	sort.Sort(sortAdapter[T]{buf: b, less: func(x, y T) bool { return x < y }})
}

// SortFunc reorders the window by less.
func SortFunc[T any](b *Buffer[T], less func(a, b T) bool) {
	sort.Sort(sortAdapter[T]{buf: b, less: less})
}

// SortStableFunc is SortFunc keeping equal elements in their order.
func SortStableFunc[T any](b *Buffer[T], less func(a, b T) bool) {
	sort.Stable(sortAdapter[T]{buf: b, less: less})
}

// IsSorted reports whether the window is ascending.
func IsSorted[T constraints.Ordered](b *Buffer[T]) bool {
	return sort.IsSorted(sortAdapter[T]{buf: b, less: func(x, y T) bool { return x < y }})
}

// IsSortedFunc reports whether the window is ordered under less.
func IsSortedFunc[T any](b *Buffer[T], less func(a, b T) bool) bool {
	return sort.IsSorted(sortAdapter[T]{buf: b, less: less})
}

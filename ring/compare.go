// File: ring/compare.go
// Author: momentics <momentics@gmail.com>
//
// Equality and lexicographic ordering over the logical sequence.

package ring

import "golang.org/x/exp/constraints"

// Equal reports whether a and b hold the same elements in the same
// logical order.
func Equal[T comparable](a, b *Buffer[T]) bool {
	if a.count != b.count {
		return false
	}
	for i := 0; i < a.count; i++ {
		if a.data[a.slot(i)] != b.data[b.slot(i)] {
			return false
		}
	}
	return true
}

// EqualFunc reports whether a and b are pairwise equivalent under eq.
func EqualFunc[T, U any](a *Buffer[T], b *Buffer[U], eq func(T, U) bool) bool {
	if a.count != b.count {
		return false
	}
	for i := 0; i < a.count; i++ {
		if !eq(a.data[a.slot(i)], b.data[b.slot(i)]) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically over the logical sequence:
// -1, 0 or +1, with a proper prefix comparing less.
func Compare[T constraints.Ordered](a, b *Buffer[T]) int {
	n := min(a.count, b.count)
	for i := 0; i < n; i++ {
		av, bv := a.data[a.slot(i)], b.data[b.slot(i)]
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
	}
	switch {
	case a.count < b.count:
		return -1
	case a.count > b.count:
		return 1
	}
	return 0
}

// CompareFunc is Compare with a caller-supplied three-way comparison.
func CompareFunc[T, U any](a *Buffer[T], b *Buffer[U], cmp func(T, U) int) int {
	n := min(a.count, b.count)
	for i := 0; i < n; i++ {
		if c := cmp(a.data[a.slot(i)], b.data[b.slot(i)]); c != 0 {
			return c
		}
	}
	switch {
	case a.count < b.count:
		return -1
	case a.count > b.count:
		return 1
	}
	return 0
}

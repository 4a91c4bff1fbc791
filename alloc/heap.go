// File: alloc/heap.go
// Author: momentics <momentics@gmail.com>
//
// Default allocator: plain Go heap blocks, reclaimed by the collector.

package alloc

import (
	"math"
	"unsafe"

	"github.com/momentics/hioload-ring/api"
)

type heapAlloc[T any] struct{}

// Heap returns the default allocator backed by the Go heap.
func Heap[T any]() api.Allocator[T] { return heapAlloc[T]{} }

func (heapAlloc[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "negative block length").
			WithContext("n", n)
	}
	if n == 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

// Deallocate drops the reference; the collector reclaims the block.
func (heapAlloc[T]) Deallocate([]T) {}

func (heapAlloc[T]) Max() int { return maxBlock[T]() }

// maxBlock caps a block length by address-space arithmetic on the
// element size.
func maxBlock[T any]() int {
	var z T
	if s := unsafe.Sizeof(z); s > 0 {
		return int(uintptr(math.MaxInt) / s)
	}
	return math.MaxInt
}

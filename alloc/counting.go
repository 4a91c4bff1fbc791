// File: alloc/counting.go
// Author: momentics <momentics@gmail.com>
//
// Accounting wrapper: counts blocks and bytes flowing through any
// inner allocator.

package alloc

import (
	"sync/atomic"
	"unsafe"

	"github.com/momentics/hioload-ring/api"
)

// CountingAllocator decorates an inner allocator with allocation and
// release accounting. Safe for use from multiple buffers.
type CountingAllocator[T any] struct {
	inner      api.Allocator[T]
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
	inUse      atomic.Int64
	bytesInUse atomic.Int64
}

var _ api.StatsProvider = (*CountingAllocator[int])(nil)

// Counting wraps inner with accounting. A nil inner means the heap.
func Counting[T any](inner api.Allocator[T]) *CountingAllocator[T] {
	if inner == nil {
		inner = Heap[T]()
	}
	return &CountingAllocator[T]{inner: inner}
}

func (c *CountingAllocator[T]) Allocate(n int) ([]T, error) {
	block, err := c.inner.Allocate(n)
	if err != nil || n == 0 {
		return block, err
	}
	var z T
	c.totalAlloc.Add(1)
	c.inUse.Add(1)
	c.bytesInUse.Add(int64(n) * int64(unsafe.Sizeof(z)))
	return block, nil
}

func (c *CountingAllocator[T]) Deallocate(block []T) {
	if len(block) == 0 {
		return
	}
	var z T
	c.totalFree.Add(1)
	c.inUse.Add(-1)
	c.bytesInUse.Add(-int64(len(block)) * int64(unsafe.Sizeof(z)))
	c.inner.Deallocate(block)
}

func (c *CountingAllocator[T]) Max() int { return c.inner.Max() }

// Stats exposes allocation accounting for inspection.
func (c *CountingAllocator[T]) Stats() api.AllocatorStats {
	return api.AllocatorStats{
		TotalAlloc: c.totalAlloc.Load(),
		TotalFree:  c.totalFree.Load(),
		InUse:      c.inUse.Load(),
		BytesInUse: c.bytesInUse.Load(),
	}
}

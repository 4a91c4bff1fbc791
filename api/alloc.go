// File: api/alloc.go
// Author: momentics <momentics@gmail.com>
//
// Defines abstract allocation APIs: pluggable backing-store strategies
// for ring buffer storage.

package api

// Allocator supplies and reclaims contiguous backing storage for a
// container of element type T. Implementations decide where the memory
// comes from (heap, free-list, mmap pages).
type Allocator[T any] interface {
	// Allocate returns a zeroed block of exactly n elements.
	Allocate(n int) ([]T, error)

	// Deallocate returns a block obtained from Allocate.
	// After Deallocate, the block must not be used.
	Deallocate(block []T)

	// Max returns the largest block length this allocator can provide.
	Max() int
}

// AllocatorStats aggregates block allocation/release accounting.
type AllocatorStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
	BytesInUse int64
}

// StatsProvider is implemented by allocators that track usage accounting.
type StatsProvider interface {
	// Stats exposes allocation accounting for inspection.
	Stats() AllocatorStats
}

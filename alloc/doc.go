// Package alloc
// Author: momentics <momentics@gmail.com>
//
// Backing-store allocators for hioload-ring.
// Implements the api.Allocator contract over the Go heap, a counting
// wrapper with usage accounting, an exact-size free-list pool, and an
// mmap-backed store for pointer-free element types on Linux.
// See heap.go, counting.go, pooled.go, mmap_linux.go for details.
package alloc

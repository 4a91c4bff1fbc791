//go:build !linux
// +build !linux

// File: alloc/mmap_stub.go
// Author: momentics <momentics@gmail.com>
//
// Portable stand-in: platforms without the mmap path use the heap.

package alloc

import "github.com/momentics/hioload-ring/api"

// Mmap returns the heap allocator on platforms without mmap support.
func Mmap[T any]() api.Allocator[T] { return Heap[T]() }

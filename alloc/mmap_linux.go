//go:build linux
// +build linux

// File: alloc/mmap_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux mmap-backed allocator. Blocks live in anonymous private
// mappings outside the Go heap, with a hugepage attempt for large
// blocks and a plain-page retry, falling back to the heap when the
// kernel refuses. Pointer-bearing element types always stay on the
// heap so the collector can see them.

package alloc

import (
	"os"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-ring/api"
)

const hugePageSize = 2 << 20

type mmapAlloc[T any] struct {
	mu      sync.Mutex
	regions map[uintptr][]byte // first-element address -> full mapping
}

// Mmap returns an allocator backed by anonymous mmap regions. For
// element types containing pointers it degrades to the heap allocator.
func Mmap[T any]() api.Allocator[T] {
	if !pointerFree[T]() {
		return Heap[T]()
	}
	return &mmapAlloc[T]{regions: make(map[uintptr][]byte)}
}

func (m *mmapAlloc[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "negative block length").
			WithContext("n", n)
	}
	if n == 0 {
		return nil, nil
	}
	if n > maxBlock[T]() {
		return nil, api.NewError(api.ErrCodeLengthExceeded, "block length exceeds address space").
			WithContext("n", n)
	}
	var z T
	elem := int(unsafe.Sizeof(z))
	if elem == 0 {
		// zero-size elements need no pages
		return make([]T, n), nil
	}
	raw, err := mapRegion(n * elem)
	if err != nil {
		return make([]T, n), nil
	}
	block := unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), n)
	m.mu.Lock()
	m.regions[uintptr(unsafe.Pointer(&raw[0]))] = raw
	m.mu.Unlock()
	return block, nil
}

func (m *mmapAlloc[T]) Deallocate(block []T) {
	if len(block) == 0 {
		return
	}
	key := uintptr(unsafe.Pointer(&block[0]))
	m.mu.Lock()
	raw, ok := m.regions[key]
	if ok {
		delete(m.regions, key)
	}
	m.mu.Unlock()
	if ok {
		_ = unix.Munmap(raw)
	}
	// heap-fallback blocks just drop to the collector
}

func (m *mmapAlloc[T]) Max() int { return maxBlock[T]() }

// mapRegion maps at least byteLen anonymous bytes. Large regions try
// hugepages first, mirroring the kernel's 2 MiB granularity.
func mapRegion(byteLen int) ([]byte, error) {
	const prot = unix.PROT_READ | unix.PROT_WRITE
	const flags = unix.MAP_ANONYMOUS | unix.MAP_PRIVATE
	if byteLen >= hugePageSize {
		length := alignUp(byteLen, hugePageSize)
		if raw, err := unix.Mmap(-1, 0, length, prot, flags|unix.MAP_HUGETLB); err == nil {
			return raw, nil
		}
	}
	return unix.Mmap(-1, 0, alignUp(byteLen, os.Getpagesize()), prot, flags)
}

func alignUp(n, to int) int {
	return ((n + to - 1) / to) * to
}

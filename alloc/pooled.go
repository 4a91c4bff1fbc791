// File: alloc/pooled.go
// Author: momentics <momentics@gmail.com>
//
// Exact-size free-list allocator. Released blocks park per size class
// and are zeroed before reuse, so churn-heavy workloads resize without
// touching the inner allocator.

package alloc

import (
	"sync"

	"github.com/momentics/hioload-ring/api"
)

const defaultRetainPerClass = 64

// PooledAllocator reuses released blocks of matching length.
type PooledAllocator[T any] struct {
	mu     sync.Mutex
	free   map[int][][]T
	retain int
	inner  api.Allocator[T]
}

// Pooled wraps inner with a free-list keyed by exact block length.
// retainPerClass bounds parked blocks per length; zero or negative
// picks the default. A nil inner means the heap.
func Pooled[T any](inner api.Allocator[T], retainPerClass int) *PooledAllocator[T] {
	if inner == nil {
		inner = Heap[T]()
	}
	if retainPerClass <= 0 {
		retainPerClass = defaultRetainPerClass
	}
	return &PooledAllocator[T]{
		free:   make(map[int][][]T),
		retain: retainPerClass,
		inner:  inner,
	}
}

func (p *PooledAllocator[T]) Allocate(n int) ([]T, error) {
	if n > 0 {
		p.mu.Lock()
		if bucket := p.free[n]; len(bucket) > 0 {
			block := bucket[len(bucket)-1]
			p.free[n] = bucket[:len(bucket)-1]
			p.mu.Unlock()
			clear(block)
			return block, nil
		}
		p.mu.Unlock()
	}
	return p.inner.Allocate(n)
}

func (p *PooledAllocator[T]) Deallocate(block []T) {
	n := len(block)
	if n == 0 {
		return
	}
	p.mu.Lock()
	if len(p.free[n]) < p.retain {
		p.free[n] = append(p.free[n], block)
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()
	p.inner.Deallocate(block)
}

func (p *PooledAllocator[T]) Max() int { return p.inner.Max() }

// Retained reports how many blocks are currently parked.
func (p *PooledAllocator[T]) Retained() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	total := 0
	for _, bucket := range p.free {
		total += len(bucket)
	}
	return total
}

// Package api
// Author: momentics
//
// Mock/testing utilities for all core contracts; extendable for new interfaces.

package api

// MockAllocator is a test and mock-friendly implementation of Allocator.
type MockAllocator[T any] struct {
	AllocateFunc   func(n int) ([]T, error)
	DeallocateFunc func(block []T)
	MaxFunc        func() int
}

func (m *MockAllocator[T]) Allocate(n int) ([]T, error) { return m.AllocateFunc(n) }
func (m *MockAllocator[T]) Deallocate(block []T)        { m.DeallocateFunc(block) }
func (m *MockAllocator[T]) Max() int                    { return m.MaxFunc() }

// Extend with mocks for all additional core contracts as architecture evolves.

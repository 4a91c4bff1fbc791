// File: ring/storage.go
// Author: momentics <momentics@gmail.com>
//
// Backing store management: exact (non-geometric) growth, reserve,
// resize, shrink and the failure contract. On any failure the buffer
// is observably unchanged.

package ring

import (
	"math"
	"unsafe"

	"github.com/momentics/hioload-ring/api"
)

// MaxSize returns the theoretical maximum element count for this
// buffer: the allocator's limit capped by address-space arithmetic on
// the element size.
func (b *Buffer[T]) MaxSize() int {
	m := b.allocator().Max()
	if lim := maxElems[T](); lim < m {
		m = lim
	}
	return m
}

func maxElems[T any]() int {
	var z T
	if s := unsafe.Sizeof(z); s > 0 {
		return int(uintptr(math.MaxInt) / s)
	}
	return math.MaxInt
}

// Reserve grows the capacity to exactly n, relocating the window to
// physical index 0. It never shrinks. Reallocation invalidates all
// cursors.
func (b *Buffer[T]) Reserve(n int) error {
	if n < 0 {
		return errNegative("capacity", n)
	}
	if n <= len(b.data) {
		return nil
	}
	return b.relocate(n)
}

// ShrinkToFit reallocates the capacity down to Len, releasing the
// store entirely when the buffer is empty.
func (b *Buffer[T]) ShrinkToFit() error {
	if b.count == len(b.data) {
		return nil
	}
	return b.relocate(b.count)
}

// Resize changes the logical length to n. New trailing slots take the
// zero value. Shrinking destroys elements from the logical back,
// wherever the physical wrap sits; it never touches the front.
func (b *Buffer[T]) Resize(n int) error {
	var zero T
	return b.ResizeWith(n, zero)
}

// ResizeWith is Resize with an explicit fill value for new slots.
// Growth beyond the current capacity reallocates to exactly n.
func (b *Buffer[T]) ResizeWith(n int, fill T) error {
	switch {
	case n < 0:
		return errNegative("length", n)
	case n == b.count:
		return nil
	case n < b.count:
		var zero T
		for i := n; i < b.count; i++ {
			b.data[b.slot(i)] = zero
		}
		b.count = n
		return nil
	}
	if err := b.grow(n); err != nil {
		return err
	}
	for i := b.count; i < n; i++ {
		b.data[b.slot(i)] = fill
	}
	b.count = n
	return nil
}

// grow makes sure the store holds at least need slots, reallocating to
// exactly need when it does not. Growth is never geometric; repeated
// single-element growth costs O(size) per call.
func (b *Buffer[T]) grow(need int) error {
	if need <= len(b.data) {
		return nil
	}
	return b.relocate(need)
}

// relocate moves the window into a fresh block of newCap slots, front
// first, and resets front to 0. Caller guarantees newCap >= count.
// The old block is zeroed and handed back to the allocator only after
// the new one is populated.
func (b *Buffer[T]) relocate(newCap int) error {
	if m := b.MaxSize(); newCap > m {
		return errLength(newCap, m)
	}
	var block []T
	if newCap > 0 {
		var err error
		block, err = b.allocator().Allocate(newCap)
		if err != nil {
			return errAlloc(newCap, err)
		}
	}
	for i := 0; i < b.count; i++ {
		block[i] = b.data[b.slot(i)]
	}
	if b.data != nil {
		clear(b.data)
		b.allocator().Deallocate(b.data)
	}
	b.data = block
	b.front = 0
	return nil
}

func errNegative(name string, n int) error {
	return api.NewError(api.ErrCodeInvalidArgument, "negative "+name).
		WithContext(name, n)
}

func errLength(requested, max int) error {
	return api.NewError(api.ErrCodeLengthExceeded, "requested length exceeds max size").
		WithContext("requested", requested).
		WithContext("max", max)
}

func errAlloc(n int, cause error) error {
	return api.NewError(api.ErrCodeAllocFailed, "storage allocation failed").
		WithContext("elements", n).
		WithContext("cause", cause.Error())
}

func errRange(i, n int) error {
	return api.NewError(api.ErrCodeOutOfRange, "position out of range").
		WithContext("pos", i).
		WithContext("len", n)
}

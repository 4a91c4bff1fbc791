// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
//
// Buffer core: construction, element access, push/pop at both ends,
// swap and clear. Window encoding is an explicit (front, count) pair,
// so empty and full states never alias.

package ring

import (
	"github.com/momentics/hioload-ring/alloc"
	"github.com/momentics/hioload-ring/api"
)

// Compile-time contract checks.
var (
	_ api.Ring[int]    = (*Buffer[int])(nil)
	_ api.Deque[int]   = (*Buffer[int])(nil)
	_ api.Indexed[int] = (*Buffer[int])(nil)
)

// Buffer is a generic ring buffer: a sequence container whose live
// window may wrap around the end of one contiguous backing store.
// Logical element i lives at physical slot (front+i) mod Cap.
//
// The zero value is an empty buffer with capacity 0, the Evict policy
// and heap-backed storage. A Buffer is not safe for concurrent use.
type Buffer[T any] struct {
	data    []T // backing store; len(data) is the capacity
	front   int // physical slot of logical element 0
	count   int // live elements
	policy  api.OverflowPolicy
	alloc   api.Allocator[T]
	onEvict func(T)
}

// New returns a buffer holding n zero-valued elements with capacity
// exactly n, like make([]T, n).
func New[T any](n int, opts ...Option[T]) (*Buffer[T], error) {
	b := &Buffer[T]{}
	for _, opt := range opts {
		opt(b)
	}
	if err := b.init(n); err != nil {
		return nil, err
	}
	b.count = n
	return b, nil
}

// NewFilled returns a buffer of n copies of fill, capacity n.
func NewFilled[T any](n int, fill T, opts ...Option[T]) (*Buffer[T], error) {
	b, err := New(n, opts...)
	if err != nil {
		return nil, err
	}
	for i := range b.data {
		b.data[i] = fill
	}
	return b, nil
}

// NewWithCapacity returns an empty buffer over a store of n slots,
// like make([]T, 0, n). The usual way to set up a sliding window.
func NewWithCapacity[T any](n int, opts ...Option[T]) (*Buffer[T], error) {
	b := &Buffer[T]{}
	for _, opt := range opts {
		opt(b)
	}
	if err := b.init(n); err != nil {
		return nil, err
	}
	return b, nil
}

// FromSlice returns a buffer holding a copy of src, capacity len(src).
func FromSlice[T any](src []T, opts ...Option[T]) (*Buffer[T], error) {
	b := &Buffer[T]{}
	for _, opt := range opts {
		opt(b)
	}
	if err := b.init(len(src)); err != nil {
		return nil, err
	}
	copy(b.data, src)
	b.count = len(src)
	return b, nil
}

// Of returns a buffer holding exactly the listed values.
func Of[T any](values ...T) *Buffer[T] {
	b, err := FromSlice(values)
	if err != nil {
		// unreachable with the default allocator
		panic(err)
	}
	return b
}

// init allocates the initial store for a constructor.
func (b *Buffer[T]) init(capacity int) error {
	if capacity < 0 {
		return errNegative("capacity", capacity)
	}
	if capacity == 0 {
		return nil
	}
	if m := b.MaxSize(); capacity > m {
		return errLength(capacity, m)
	}
	block, err := b.allocator().Allocate(capacity)
	if err != nil {
		return errAlloc(capacity, err)
	}
	b.data = block
	return nil
}

// Clone returns an independent copy with the same size, capacity and
// configuration. Content is relocated to physical index 0.
func (b *Buffer[T]) Clone() (*Buffer[T], error) {
	c := &Buffer[T]{policy: b.policy, alloc: b.alloc, onEvict: b.onEvict}
	if err := c.init(len(b.data)); err != nil {
		return nil, err
	}
	for i := 0; i < b.count; i++ {
		c.data[i] = b.data[b.slot(i)]
	}
	c.count = b.count
	return c, nil
}

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int { return b.count }

// Cap returns the slot count of the backing store.
func (b *Buffer[T]) Cap() int { return len(b.data) }

// Empty reports whether the buffer holds no elements.
func (b *Buffer[T]) Empty() bool { return b.count == 0 }

// Full reports whether the window covers the whole store.
func (b *Buffer[T]) Full() bool { return len(b.data) > 0 && b.count == len(b.data) }

// Policy returns the overflow policy this buffer was built with.
func (b *Buffer[T]) Policy() api.OverflowPolicy { return b.policy }

// Front returns the oldest element. The buffer must not be empty.
func (b *Buffer[T]) Front() T {
	if b.count == 0 {
		panic("ring: Front on empty buffer")
	}
	return b.data[b.front]
}

// Back returns the newest element. The buffer must not be empty.
func (b *Buffer[T]) Back() T {
	if b.count == 0 {
		panic("ring: Back on empty buffer")
	}
	return b.data[b.slot(b.count-1)]
}

// Get returns the element at logical index i. The index is reduced
// modulo Len, so Get(Len) is the front element again and negative
// indices count back from the front. The buffer must not be empty.
func (b *Buffer[T]) Get(i int) T {
	if b.count == 0 {
		panic("ring: Get on empty buffer")
	}
	return b.data[b.slot(reduce(i, b.count))]
}

// Set replaces the element at logical index i under Get's modular rule.
func (b *Buffer[T]) Set(i int, v T) {
	if b.count == 0 {
		panic("ring: Set on empty buffer")
	}
	b.data[b.slot(reduce(i, b.count))] = v
}

// At returns the element at i, or an out-of-range error when i lies
// outside [0, Len).
func (b *Buffer[T]) At(i int) (T, error) {
	if i < 0 || i >= b.count {
		var zero T
		return zero, errRange(i, b.count)
	}
	return b.data[b.slot(i)], nil
}

// PushBack appends v at the back. A full Evict buffer overwrites the
// front slot and slides the window; a full Grow buffer extends the
// store by one slot first. Only growth can fail.
func (b *Buffer[T]) PushBack(v T) error {
	switch {
	case b.count < len(b.data):
		b.data[b.slot(b.count)] = v
		b.count++
	case b.policy == api.Grow:
		if err := b.grow(b.count + 1); err != nil {
			return err
		}
		b.data[b.slot(b.count)] = v
		b.count++
	default:
		if len(b.data) == 0 {
			// zero-capacity window retains nothing
			b.notifyEvict(v)
			return nil
		}
		old := b.data[b.front]
		b.data[b.front] = v
		b.front = b.inc(b.front)
		b.notifyEvict(old)
	}
	return nil
}

// PushFront prepends v at the front. A full Evict buffer overwrites
// the back slot and slides the window; a full Grow buffer extends the
// store by one slot first. Only growth can fail.
func (b *Buffer[T]) PushFront(v T) error {
	switch {
	case b.count < len(b.data):
		b.front = b.dec(b.front)
		b.data[b.front] = v
		b.count++
	case b.policy == api.Grow:
		if err := b.grow(b.count + 1); err != nil {
			return err
		}
		b.front = b.dec(b.front)
		b.data[b.front] = v
		b.count++
	default:
		if len(b.data) == 0 {
			b.notifyEvict(v)
			return nil
		}
		// full window: the back slot becomes the new front slot
		old := b.data[b.slot(b.count-1)]
		b.front = b.dec(b.front)
		b.data[b.front] = v
		b.notifyEvict(old)
	}
	return nil
}

// PopFront removes and returns the oldest element; false when empty.
func (b *Buffer[T]) PopFront() (T, bool) {
	var zero T
	if b.count == 0 {
		return zero, false
	}
	v := b.data[b.front]
	b.data[b.front] = zero
	b.front = b.inc(b.front)
	b.count--
	return v, true
}

// PopBack removes and returns the newest element; false when empty.
func (b *Buffer[T]) PopBack() (T, bool) {
	var zero T
	if b.count == 0 {
		return zero, false
	}
	p := b.slot(b.count - 1)
	v := b.data[p]
	b.data[p] = zero
	b.count--
	return v, true
}

// Enqueue adds item under the buffer's policy, reporting whether it
// was retained. Only a zero-capacity evicting window or a failed
// growth makes it return false.
func (b *Buffer[T]) Enqueue(item T) bool {
	if b.policy == api.Evict && len(b.data) == 0 {
		b.notifyEvict(item)
		return false
	}
	return b.PushBack(item) == nil
}

// Dequeue removes and returns the oldest item; false when empty.
func (b *Buffer[T]) Dequeue() (T, bool) { return b.PopFront() }

// Swap exchanges the whole state of two buffers in O(1). No element
// moves; storage travels together with its allocator and policy.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	*b, *other = *other, *b
}

// Clear destroys all elements and releases the backing store through
// the allocator, returning the buffer to its default-constructed
// state. Policy, allocator and callback settings are kept.
func (b *Buffer[T]) Clear() {
	if b.data != nil {
		clear(b.data)
		b.allocator().Deallocate(b.data)
	}
	b.data = nil
	b.front = 0
	b.count = 0
}

// ToSlice returns the window as a fresh slice in logical order.
func (b *Buffer[T]) ToSlice() []T {
	if b.count == 0 {
		return nil
	}
	out := make([]T, b.count)
	for i := range out {
		out[i] = b.data[b.slot(i)]
	}
	return out
}

// slot maps a logical index to its physical slot. Valid for
// 0 <= i <= Cap.
func (b *Buffer[T]) slot(i int) int {
	p := b.front + i
	if p >= len(b.data) {
		p -= len(b.data)
	}
	return p
}

// inc advances a physical slot by one with wrap.
func (b *Buffer[T]) inc(p int) int {
	p++
	if p == len(b.data) {
		p = 0
	}
	return p
}

// dec moves a physical slot back by one with wrap.
func (b *Buffer[T]) dec(p int) int {
	if p == 0 {
		p = len(b.data)
	}
	return p - 1
}

// decN moves a physical slot back by n with wrap. Valid for n <= Cap.
func (b *Buffer[T]) decN(p, n int) int {
	p -= n
	if p < 0 {
		p += len(b.data)
	}
	return p
}

func (b *Buffer[T]) allocator() api.Allocator[T] {
	if b.alloc == nil {
		return alloc.Heap[T]()
	}
	return b.alloc
}

func (b *Buffer[T]) notifyEvict(v T) {
	if b.onEvict != nil {
		b.onEvict(v)
	}
}

// reduce maps n into [0, size) for any n, including negatives.
func reduce(n, size int) int {
	n %= size
	if n < 0 {
		n += size
	}
	return n
}

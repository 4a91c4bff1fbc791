// File: ring/options.go
// Author: momentics <momentics@gmail.com>
//
// Construction-time options for Buffer.

package ring

import "github.com/momentics/hioload-ring/api"

// Option configures a buffer during construction.
type Option[T any] func(*Buffer[T])

// WithOverflowPolicy selects what a full buffer does with one more
// element: api.Evict (default) overwrites the opposite end, api.Grow
// extends the store by exactly the shortfall.
func WithOverflowPolicy[T any](p api.OverflowPolicy) Option[T] {
	return func(b *Buffer[T]) { b.policy = p }
}

// WithAllocator injects the backing-store allocation strategy. The
// default is the Go heap.
func WithAllocator[T any](a api.Allocator[T]) Option[T] {
	return func(b *Buffer[T]) { b.alloc = a }
}

// WithEvictCallback registers fn to observe every value the Evict
// policy drops, including values a zero-capacity window discards.
func WithEvictCallback[T any](fn func(T)) Option[T] {
	return func(b *Buffer[T]) { b.onEvict = fn }
}

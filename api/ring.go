// Package api
// Author: momentics@gmail.com
//
// Sequence container contracts: FIFO ring view and double-ended queue.

package api

// Ring is a bounded FIFO ring buffer contract.
type Ring[T any] interface {
	// Enqueue adds an item, returns false if the item was discarded.
	Enqueue(item T) bool
	// Dequeue removes oldest item, returns false if empty.
	Dequeue() (T, bool)
	// Len returns current number of items.
	Len() int
	// Cap returns buffer capacity.
	Cap() int
}

// Deque is a double-ended queue contract with O(1) operations at both ends.
type Deque[T any] interface {
	// PushBack appends an item at the back end.
	PushBack(item T) error
	// PushFront prepends an item at the front end.
	PushFront(item T) error
	// PopBack removes and returns the back item, false if empty.
	PopBack() (T, bool)
	// PopFront removes and returns the front item, false if empty.
	PopFront() (T, bool)
	// Front returns the oldest item without removing it.
	Front() T
	// Back returns the newest item without removing it.
	Back() T
	// Len returns current number of items.
	Len() int
	// Cap returns storage capacity.
	Cap() int
}

// Indexed is random access over a logical sequence.
type Indexed[T any] interface {
	// Get returns the item at logical index i.
	Get(i int) T
	// Set replaces the item at logical index i.
	Set(i int, item T)
	// At returns the item at i, or an out-of-range error.
	At(i int) (T, error)
	// Len returns current number of items.
	Len() int
}

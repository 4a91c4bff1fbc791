// File: ring/insert.go
// Author: momentics <momentics@gmail.com>
//
// Mid-sequence insertion and removal. The side with fewer elements
// shifts, so the cost is O(min(i, Len-i)); ties shift the back side.

package ring

import (
	"iter"

	"github.com/momentics/hioload-ring/api"
)

// Insert places values so the first lands at logical index i, which
// must lie in [0, Len]; anything else panics. With room, the cheaper
// side shifts outward to open the hole. On a full buffer the policy
// decides: Grow extends the store by exactly the shortfall, Evict
// drops the element at the end farther from i (the push mirror), so
// size stays fixed. Only growth can fail.
func (b *Buffer[T]) Insert(i int, values ...T) error {
	if i < 0 || i > b.count {
		panic("ring: insert position out of range")
	}
	n := len(values)
	if n == 0 {
		return nil
	}
	if b.policy == api.Grow {
		if err := b.grow(b.count + n); err != nil {
			return err
		}
	}
	if b.count+n <= len(b.data) {
		b.insertSpan(i, values)
		return nil
	}
	// evicting window short on room: compose single insertions
	for _, v := range values {
		if b.count < len(b.data) {
			b.insertOne(i, v)
			i++
			continue
		}
		i = b.insertEvictOne(i, v)
	}
	return nil
}

// InsertN inserts n copies of value at logical index i.
func (b *Buffer[T]) InsertN(i, n int, value T) error {
	if n < 0 {
		return errNegative("count", n)
	}
	if n == 0 {
		if i < 0 || i > b.count {
			panic("ring: insert position out of range")
		}
		return nil
	}
	vals := make([]T, n)
	for k := range vals {
		vals[k] = value
	}
	return b.Insert(i, vals...)
}

// InsertSeq inserts every value produced by seq starting at index i.
func (b *Buffer[T]) InsertSeq(i int, seq iter.Seq[T]) error {
	var vals []T
	for v := range seq {
		vals = append(vals, v)
	}
	return b.Insert(i, vals...)
}

// Erase removes and returns the element at logical index i, which must
// lie in [0, Len); anything else panics. The shorter side shifts
// inward to close the hole and the window contracts at the end the
// shift came from, making Erase the exact inverse of the matching
// room insert.
func (b *Buffer[T]) Erase(i int) T {
	if i < 0 || i >= b.count {
		panic("ring: erase position out of range")
	}
	v := b.data[b.slot(i)]
	var zero T
	if i >= b.count-i {
		// close from the back side
		for j := i; j < b.count-1; j++ {
			b.data[b.slot(j)] = b.data[b.slot(j+1)]
		}
		b.data[b.slot(b.count-1)] = zero
	} else {
		// close from the front side
		for j := i; j > 0; j-- {
			b.data[b.slot(j)] = b.data[b.slot(j-1)]
		}
		b.data[b.front] = zero
		b.front = b.inc(b.front)
	}
	b.count--
	return v
}

// insertOne opens a one-slot hole at i and writes v. Caller guarantees
// room and 0 <= i <= count.
func (b *Buffer[T]) insertOne(i int, v T) {
	if i >= b.count-i {
		for j := b.count; j > i; j-- {
			b.data[b.slot(j)] = b.data[b.slot(j-1)]
		}
	} else {
		b.front = b.dec(b.front)
		for j := 0; j < i; j++ {
			b.data[b.slot(j)] = b.data[b.slot(j+1)]
		}
	}
	b.data[b.slot(i)] = v
	b.count++
}

// insertSpan opens an n-wide hole at i for values. Caller guarantees
// count+n <= Cap.
func (b *Buffer[T]) insertSpan(i int, values []T) {
	n := len(values)
	if i >= b.count-i {
		for j := b.count - 1 + n; j >= i+n; j-- {
			b.data[b.slot(j)] = b.data[b.slot(j-n)]
		}
	} else {
		b.front = b.decN(b.front, n)
		for j := 0; j < i; j++ {
			b.data[b.slot(j)] = b.data[b.slot(j+n)]
		}
	}
	for k, v := range values {
		b.data[b.slot(i+k)] = v
	}
	b.count += n
}

// insertEvictOne inserts v into a full evicting window, dropping the
// far end first. Returns the index one past the inserted element.
func (b *Buffer[T]) insertEvictOne(i int, v T) int {
	if len(b.data) == 0 {
		b.notifyEvict(v)
		return 0
	}
	if i >= b.count-i {
		old, _ := b.PopFront()
		b.notifyEvict(old)
		i--
	} else {
		old, _ := b.PopBack()
		b.notifyEvict(old)
	}
	b.insertOne(i, v)
	return i + 1
}

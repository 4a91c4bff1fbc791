// File: ring/assign.go
// Author: momentics <momentics@gmail.com>
//
// In-place assignment: the window as the target of a bounded write
// stream. Source element j lands at logical slot j mod Len, so later
// values overwrite earlier ones once the source outruns the window.

package ring

import (
	"iter"

	"github.com/momentics/hioload-ring/api"
)

// Assign overwrites live elements with values, cyclically. Capacity
// never changes and an empty window stays empty. A source shorter than
// the window overwrites only the leading slots; a longer source flows
// through the ring so the last Len values remain, rotated by where the
// overwrite wrapped. Under the Grow policy a longer source extends the
// window first, so every value is retained in order.
func (b *Buffer[T]) Assign(values ...T) error {
	return b.assignSlice(values)
}

// AssignN overwrites the first min(n, Len) slots with value. Under the
// Grow policy n beyond Len extends the window to n first.
func (b *Buffer[T]) AssignN(n int, value T) error {
	if n < 0 {
		return errNegative("count", n)
	}
	if b.policy == api.Grow && n > b.count {
		if err := b.grow(n); err != nil {
			return err
		}
		b.count = n
	}
	if n > b.count {
		n = b.count
	}
	for i := 0; i < n; i++ {
		b.data[b.slot(i)] = value
	}
	return nil
}

// AssignSeq assigns from an iterator sequence. Under Evict the values
// stream through the window without being materialized; under Grow
// the sequence is collected first so the window can be sized to it.
func (b *Buffer[T]) AssignSeq(seq iter.Seq[T]) error {
	if b.policy == api.Grow {
		var tmp []T
		for v := range seq {
			tmp = append(tmp, v)
		}
		return b.assignSlice(tmp)
	}
	if b.count == 0 {
		return nil
	}
	j := 0
	for v := range seq {
		b.data[b.slot(j)] = v
		j++
		if j == b.count {
			j = 0
		}
	}
	return nil
}

func (b *Buffer[T]) assignSlice(src []T) error {
	if b.policy == api.Grow && len(src) > b.count {
		if err := b.grow(len(src)); err != nil {
			return err
		}
		b.count = len(src)
	}
	if b.count == 0 {
		return nil
	}
	j := 0
	for _, v := range src {
		b.data[b.slot(j)] = v
		j++
		if j == b.count {
			j = 0
		}
	}
	return nil
}

// File: ring/cursor.go
// Author: momentics <momentics@gmail.com>
//
// Wrap-aware random-access cursors. A cursor addresses elements by
// logical position, so distance and ordering are plain integer
// arithmetic on both sides of a physical wrap; only dereferencing
// touches the modular slot mapping.

package ring

// Cursor is a random-access position over one buffer. Positions run
// from 0 (front) to Len (the one-past-the-end mark). Cursors observe
// the live buffer on every access; see the package documentation for
// invalidation rules.
type Cursor[T any] struct {
	buf *Buffer[T]
	pos int
}

// Begin returns a cursor at the front element.
func (b *Buffer[T]) Begin() Cursor[T] { return Cursor[T]{buf: b} }

// End returns the one-past-the-end cursor.
func (b *Buffer[T]) End() Cursor[T] { return Cursor[T]{buf: b, pos: b.count} }

// Next returns the cursor advanced one position.
func (c Cursor[T]) Next() Cursor[T] { return c.Add(1) }

// Prev returns the cursor moved back one position.
func (c Cursor[T]) Prev() Cursor[T] { return c.Sub(1) }

// Add returns the cursor advanced n positions. The step is reduced
// modulo Len first; advancing by exactly the remaining distance lands
// on End, any further step wraps back into the window. Negative n
// moves backward.
func (c Cursor[T]) Add(n int) Cursor[T] {
	return Cursor[T]{buf: c.buf, pos: advance(c.pos, n, c.size())}
}

// Sub returns the cursor moved back n positions, mirroring Add.
func (c Cursor[T]) Sub(n int) Cursor[T] {
	return Cursor[T]{buf: c.buf, pos: retreat(c.pos, n, c.size())}
}

// Get returns the element under the cursor, which must address a live
// element.
func (c Cursor[T]) Get() T {
	if !c.Valid() {
		panic("ring: cursor not on a live element")
	}
	return c.buf.data[c.buf.slot(c.pos)]
}

// Set replaces the element under the cursor, which must address a live
// element.
func (c Cursor[T]) Set(v T) {
	if !c.Valid() {
		panic("ring: cursor not on a live element")
	}
	c.buf.data[c.buf.slot(c.pos)] = v
}

// At returns the element n positions away without moving the cursor,
// under Add's modular rule.
func (c Cursor[T]) At(n int) T { return c.Add(n).Get() }

// Pos returns the logical position in [0, Len].
func (c Cursor[T]) Pos() int { return c.pos }

// Valid reports whether the cursor addresses a live element of its
// buffer right now.
func (c Cursor[T]) Valid() bool {
	return c.buf != nil && c.pos >= 0 && c.pos < c.buf.count
}

// Distance returns the number of positions from c to other.
func (c Cursor[T]) Distance(other Cursor[T]) int { return other.pos - c.pos }

// Compare orders two cursors of the same buffer: -1 when c precedes
// other, +1 when it follows, 0 at the same position.
func (c Cursor[T]) Compare(other Cursor[T]) int {
	switch {
	case c.pos < other.pos:
		return -1
	case c.pos > other.pos:
		return 1
	default:
		return 0
	}
}

// Equal reports whether both cursors sit at the same position of the
// same buffer.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.buf == other.buf && c.pos == other.pos
}

// Before reports whether c precedes other in logical order.
func (c Cursor[T]) Before(other Cursor[T]) bool { return c.pos < other.pos }

// After reports whether c follows other in logical order.
func (c Cursor[T]) After(other Cursor[T]) bool { return c.pos > other.pos }

func (c Cursor[T]) size() int {
	if c.buf == nil {
		return 0
	}
	return c.buf.count
}

// ReverseCursor walks the window back to front: position k addresses
// the element at logical index Len-1-k, position Len is the reverse
// end mark. Arithmetic follows the same modular rules as Cursor.
type ReverseCursor[T any] struct {
	buf *Buffer[T]
	pos int
}

// RBegin returns a reverse cursor at the back element.
func (b *Buffer[T]) RBegin() ReverseCursor[T] { return ReverseCursor[T]{buf: b} }

// REnd returns the one-before-the-front reverse mark.
func (b *Buffer[T]) REnd() ReverseCursor[T] { return ReverseCursor[T]{buf: b, pos: b.count} }

// Next returns the cursor advanced one position toward the front.
func (r ReverseCursor[T]) Next() ReverseCursor[T] { return r.Add(1) }

// Prev returns the cursor moved back one position toward the back.
func (r ReverseCursor[T]) Prev() ReverseCursor[T] { return r.Sub(1) }

// Add returns the cursor advanced n reverse positions.
func (r ReverseCursor[T]) Add(n int) ReverseCursor[T] {
	return ReverseCursor[T]{buf: r.buf, pos: advance(r.pos, n, r.size())}
}

// Sub returns the cursor moved back n reverse positions.
func (r ReverseCursor[T]) Sub(n int) ReverseCursor[T] {
	return ReverseCursor[T]{buf: r.buf, pos: retreat(r.pos, n, r.size())}
}

// Get returns the element under the cursor, which must address a live
// element.
func (r ReverseCursor[T]) Get() T {
	if !r.Valid() {
		panic("ring: cursor not on a live element")
	}
	return r.buf.data[r.buf.slot(r.index())]
}

// Set replaces the element under the cursor.
func (r ReverseCursor[T]) Set(v T) {
	if !r.Valid() {
		panic("ring: cursor not on a live element")
	}
	r.buf.data[r.buf.slot(r.index())] = v
}

// Pos returns the reverse position in [0, Len].
func (r ReverseCursor[T]) Pos() int { return r.pos }

// Valid reports whether the cursor addresses a live element.
func (r ReverseCursor[T]) Valid() bool {
	return r.buf != nil && r.pos >= 0 && r.pos < r.buf.count
}

// Distance returns the number of reverse positions from r to other.
func (r ReverseCursor[T]) Distance(other ReverseCursor[T]) int { return other.pos - r.pos }

// Equal reports whether both cursors sit at the same reverse position
// of the same buffer.
func (r ReverseCursor[T]) Equal(other ReverseCursor[T]) bool {
	return r.buf == other.buf && r.pos == other.pos
}

// index maps the reverse position to a logical index.
func (r ReverseCursor[T]) index() int { return r.buf.count - 1 - r.pos }

func (r ReverseCursor[T]) size() int {
	if r.buf == nil {
		return 0
	}
	return r.buf.count
}

// advance moves a position forward n steps on the mark ring [0, size],
// reducing n modulo size first. Exact landings stop on the end mark,
// longer steps wrap into the window.
func advance(pos, n, size int) int {
	if size == 0 {
		return 0
	}
	pos += reduce(n, size)
	if pos > size {
		pos -= size
	}
	return pos
}

// retreat mirrors advance backward.
func retreat(pos, n, size int) int {
	if size == 0 {
		return 0
	}
	pos -= reduce(n, size)
	if pos < 0 {
		pos += size
	}
	return pos
}

package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorArithmetic(t *testing.T) {
	b := Of(10, 20, 30, 40)

	t.Run("bounds", func(t *testing.T) {
		assert.Equal(t, 0, b.Begin().Pos())
		assert.Equal(t, 4, b.End().Pos())
	})

	t.Run("step table", func(t *testing.T) {
		cases := []struct {
			name string
			from int
			step int
			want int
		}{
			{"last element to end", 3, 1, 4},
			{"end wraps past the front", 4, 1, 1},
			{"exact distance lands on end", 2, 2, 4},
			{"step reduced before walking", 2, 6, 4},
			{"overshoot wraps into the window", 2, 3, 1},
			{"full lap returns home", 0, 4, 0},
			{"negative step moves backward", 2, -1, 1},
			{"negative step from one crosses onto end", 1, -1, 4},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				c := Cursor[int]{buf: b, pos: tc.from}
				assert.Equal(t, tc.want, c.Add(tc.step).Pos())
			})
		}
	})

	t.Run("prev from begin wraps to the last element", func(t *testing.T) {
		c := b.Begin().Prev()
		assert.Equal(t, 3, c.Pos())
		assert.Equal(t, 40, c.Get())
	})

	t.Run("prev from end is the back", func(t *testing.T) {
		assert.Equal(t, 40, b.End().Prev().Get())
	})

	t.Run("sub mirrors add", func(t *testing.T) {
		c := b.Begin().Add(2)
		assert.Equal(t, 3, c.Sub(3).Pos())
		assert.Equal(t, 0, c.Sub(2).Pos())
	})

	t.Run("empty buffer pins every move to zero", func(t *testing.T) {
		var e Buffer[int]
		assert.True(t, e.Begin().Equal(e.End()))
		assert.Equal(t, 0, e.Begin().Add(5).Pos())
		assert.Equal(t, 0, e.End().Sub(3).Pos())
	})
}

func TestCursorAccess(t *testing.T) {
	t.Run("walk matches the logical order across a wrap", func(t *testing.T) {
		b := wrapped(t, 6, 4, 1, 2, 3, 4, 5)
		var got []int
		for c := b.Begin(); !c.Equal(b.End()); c = c.Next() {
			got = append(got, c.Get())
		}
		assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
	})

	t.Run("at peeks without moving", func(t *testing.T) {
		b := Of(10, 20, 30, 40)
		c := b.Begin()
		assert.Equal(t, 30, c.At(2))
		assert.Equal(t, 0, c.Pos())
		assert.Equal(t, 20, c.Add(2).At(3))
	})

	t.Run("set writes through", func(t *testing.T) {
		b := Of("a", "b", "c")
		b.Begin().Next().Set("B")
		assert.Equal(t, []string{"a", "B", "c"}, b.ToSlice())
	})

	t.Run("cursors observe the live window", func(t *testing.T) {
		b := Of(1, 2, 3, 4)
		c := b.Begin().Add(1)
		assert.Equal(t, 2, c.Get())
		_, ok := b.PopFront()
		require.True(t, ok)
		assert.Equal(t, 3, c.Get())
	})

	t.Run("dereferencing the end mark panics", func(t *testing.T) {
		b := Of(1, 2)
		assert.Panics(t, func() { b.End().Get() })
		assert.Panics(t, func() { b.End().Set(9) })
	})
}

func TestCursorValidity(t *testing.T) {
	b := Of(1, 2, 3)

	assert.True(t, b.Begin().Valid())
	assert.False(t, b.End().Valid())

	var zero Cursor[int]
	assert.False(t, zero.Valid())

	c := b.Begin().Add(2)
	require.True(t, c.Valid())
	b.PopBack()
	assert.False(t, c.Valid(), "position beyond the shrunk window")
}

func TestCursorOrdering(t *testing.T) {
	b := Of(1, 2, 3, 4, 5)
	front := b.Begin()
	mid := b.Begin().Add(2)
	end := b.End()

	assert.Equal(t, 5, front.Distance(end))
	assert.Equal(t, -5, end.Distance(front))
	assert.Equal(t, 2, front.Distance(mid))

	assert.Equal(t, -1, front.Compare(mid))
	assert.Equal(t, 1, end.Compare(mid))
	assert.Equal(t, 0, mid.Compare(b.Begin().Add(2)))

	assert.True(t, front.Before(mid))
	assert.True(t, end.After(mid))
	assert.False(t, mid.Before(mid))

	assert.True(t, mid.Equal(b.Begin().Add(2)))
	other := Of(1, 2, 3, 4, 5)
	assert.False(t, mid.Equal(other.Begin().Add(2)), "different buffers never compare equal")
}

func TestReverseCursor(t *testing.T) {
	t.Run("walks back to front", func(t *testing.T) {
		b, err := FromSlice(sevenStrings())
		require.NoError(t, err)
		var got []string
		for r := b.RBegin(); !r.Equal(b.REnd()); r = r.Next() {
			got = append(got, r.Get())
		}
		assert.Equal(t,
			[]string{"This is end...", "", "Lakes", "Leeks", "aBCCD", "ABc", "12"},
			got)
	})

	t.Run("arithmetic shares the modular rule", func(t *testing.T) {
		b := Of(1, 2, 3, 4)
		assert.Equal(t, 0, b.RBegin().Add(4).Pos(), "full lap returns home")
		assert.Equal(t, 1, b.REnd().Next().Pos())
		assert.Equal(t, 3, b.RBegin().Prev().Pos())
		last := ReverseCursor[int]{buf: b, pos: 3}
		assert.True(t, last.Add(1).Equal(b.REnd()), "exact distance lands on the reverse end")
	})

	t.Run("get and set address the mirrored element", func(t *testing.T) {
		b := Of(1, 2, 3, 4)
		r := b.RBegin()
		assert.Equal(t, 4, r.Get())
		assert.Equal(t, 2, r.Add(2).Get())
		r.Set(44)
		assert.Equal(t, []int{1, 2, 3, 44}, b.ToSlice())
	})

	t.Run("distance counts reverse positions", func(t *testing.T) {
		b := Of(1, 2, 3)
		assert.Equal(t, 3, b.RBegin().Distance(b.REnd()))
	})

	t.Run("validity mirrors the forward rule", func(t *testing.T) {
		b := Of(1, 2)
		assert.True(t, b.RBegin().Valid())
		assert.False(t, b.REnd().Valid())
	})
}

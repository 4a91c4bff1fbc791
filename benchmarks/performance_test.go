// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance benchmarks for hioload-ring operations.

package benchmarks

import (
	"testing"

	"github.com/momentics/hioload-ring/alloc"
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/ring"
)

// BenchmarkPushBackEvict measures steady-state writes into a full
// evicting window, the sliding-window hot path.
func BenchmarkPushBackEvict(b *testing.B) {
	buf, err := ring.NewWithCapacity[int](1024)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := buf.PushBack(i); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPushPopCycle measures a balanced enqueue/dequeue cycle.
func BenchmarkPushPopCycle(b *testing.B) {
	buf, err := ring.NewWithCapacity[int](1024)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !buf.Enqueue(i) {
			b.Fatal("enqueue refused")
		}
		if i&1 == 1 {
			buf.Dequeue()
		}
	}
}

// BenchmarkPushBackGrow measures appends with exact regrowth from
// empty, the worst case for the growing policy.
func BenchmarkPushBackGrow(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		buf, err := ring.NewWithCapacity[int](0, ring.WithOverflowPolicy[int](api.Grow))
		if err != nil {
			b.Fatal(err)
		}
		b.StartTimer()
		for v := 0; v < 256; v++ {
			if err := buf.PushBack(v); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkGet measures random indexed reads across a wrapped window.
func BenchmarkGet(b *testing.B) {
	buf, err := ring.NewWithCapacity[int](1024)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 1536; i++ {
		if err := buf.PushBack(i); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	var sink int
	for i := 0; i < b.N; i++ {
		sink += buf.Get(i * 31)
	}
	_ = sink
}

// BenchmarkInsert measures single-element insertion at the front,
// middle and back of a half-full window.
func BenchmarkInsert(b *testing.B) {
	for _, tc := range []struct {
		name string
		at   func(n int) int
	}{
		{"front", func(int) int { return 0 }},
		{"middle", func(n int) int { return n / 2 }},
		{"back", func(n int) int { return n }},
	} {
		b.Run(tc.name, func(b *testing.B) {
			buf, err := ring.NewWithCapacity[int](2048)
			if err != nil {
				b.Fatal(err)
			}
			for i := 0; i < 1024; i++ {
				if err := buf.PushBack(i); err != nil {
					b.Fatal(err)
				}
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				pos := tc.at(buf.Len())
				if err := buf.Insert(pos, i); err != nil {
					b.Fatal(err)
				}
				buf.Erase(pos)
			}
		})
	}
}

// BenchmarkCursorWalk measures a full traversal through cursors.
func BenchmarkCursorWalk(b *testing.B) {
	buf, err := ring.NewWithCapacity[int](1024)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 1536; i++ {
		if err := buf.PushBack(i); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	var sink int
	for i := 0; i < b.N; i++ {
		for c := buf.Begin(); !c.Equal(buf.End()); c = c.Next() {
			sink += c.Get()
		}
	}
	_ = sink
}

// BenchmarkIterValues measures the same traversal as a range-over-func.
func BenchmarkIterValues(b *testing.B) {
	buf, err := ring.NewWithCapacity[int](1024)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 1536; i++ {
		if err := buf.PushBack(i); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	var sink int
	for i := 0; i < b.N; i++ {
		for v := range buf.Values() {
			sink += v
		}
	}
	_ = sink
}

// BenchmarkAssign measures cyclic bulk overwrite of a full window.
func BenchmarkAssign(b *testing.B) {
	buf, err := ring.New[int](512)
	if err != nil {
		b.Fatal(err)
	}
	src := make([]int, 768)
	for i := range src {
		src[i] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := buf.Assign(src...); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPooledResize measures repeated shrink/reserve churn with the
// exact-size free list against bare heap allocation.
func BenchmarkPooledResize(b *testing.B) {
	run := func(b *testing.B, a api.Allocator[int]) {
		buf, err := ring.NewWithCapacity[int](0,
			ring.WithOverflowPolicy[int](api.Grow),
			ring.WithAllocator[int](a))
		if err != nil {
			b.Fatal(err)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if err := buf.Reserve(4096); err != nil {
				b.Fatal(err)
			}
			if err := buf.ShrinkToFit(); err != nil {
				b.Fatal(err)
			}
		}
	}

	b.Run("heap", func(b *testing.B) { run(b, alloc.Heap[int]()) })
	b.Run("pooled", func(b *testing.B) { run(b, alloc.Pooled[int](nil, 8)) })
}

// Package ring
// Author: momentics <momentics@gmail.com>
//
// Generic ring buffer sequence container for hioload-ring.
// One contiguous backing store, a live window tracked as an explicit
// (front, count) pair, O(1) push/pop at both ends, O(1) indexed access,
// and wrap-aware random-access cursors. A full buffer either evicts the
// opposite end (bounded sliding window) or grows its store by exactly
// the shortfall (unbounded deque), chosen per instance with
// WithOverflowPolicy.
//
// Cursor validity follows conventional sequence-container rules. Any
// reallocation (Reserve growing, ShrinkToFit, Resize beyond capacity,
// policy growth) invalidates every cursor obtained from the buffer.
// Shifting mutations (push, pop, insert, erase, evicting overwrite)
// disturb only cursors at or beyond the mutation point along the shift
// direction; cursors strictly on the untouched side keep addressing
// their element. Swap moves content between buffer objects while
// cursors stay bound to the object they came from. Cursor.Valid is a
// conservative liveness check, not a staleness detector.
//
// Buffers are not safe for concurrent use; callers own synchronization.
// See ring.go, cursor.go, insert.go for implementation details.
package ring

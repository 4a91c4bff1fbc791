// Package api
// Author: momentics
//
// Overflow policy selection for ring buffer variants.

package api

// OverflowPolicy selects what a full buffer does with one more element.
type OverflowPolicy int

const (
	// Evict keeps capacity fixed and overwrites the element at the
	// opposite end, turning the buffer into a sliding window.
	Evict OverflowPolicy = iota

	// Grow reallocates storage to make room, so no element is ever
	// discarded. Growth is exact, not geometric.
	Grow
)

// String returns a human-readable policy name.
func (p OverflowPolicy) String() string {
	switch p {
	case Evict:
		return "evict"
	case Grow:
		return "grow"
	default:
		return "unknown"
	}
}

// Package linear implements exhaustive and breaking backward scans.
package linear

import (
	"cmp"

	"github.com/katalvlaran/bsearch/core"
)

// search is the common kernel: a backward scan over [begin, end)
// returning the highest position whose element satisfies eq, or end.
func search[E any](s core.Sequence[E], begin, end int, eq func(E) bool) int {
	for i := end - 1; i >= begin; i-- {
		if eq(s.At(i)) {
			return i
		}
	}

	return end
}

// Search scans seq backward for key using natural equality and returns
// the position of the match closest to the end, or len(seq) if absent.
//
// The only variant that does not require seq to be sorted.
// Θ(n) time, O(1) space.
func Search[E comparable](seq []E, key E) int {
	return SearchRange(core.Slice[E](seq), 0, len(seq), key)
}

// SearchFunc is Search with a caller-supplied equality capability.
func SearchFunc[E any](seq []E, key E, eq core.Eq[E]) int {
	return SearchRangeFunc(core.Slice[E](seq), 0, len(seq), key, eq)
}

// SearchRange scans the window [begin, end) of s backward for key
// using natural equality. Returns a position in [begin, end) on a hit,
// end on a miss.
func SearchRange[E comparable](s core.Sequence[E], begin, end int, key E) int {
	return search(s, begin, end, func(right E) bool { return key == right })
}

// SearchRangeFunc is SearchRange with a caller-supplied equality
// capability.
func SearchRangeFunc[E any](s core.Sequence[E], begin, end int, key E, eq core.Eq[E]) int {
	return search(s, begin, end, func(right E) bool { return eq(key, right) })
}

// breaking scans backward while the key orders strictly below the
// current element, then checks equality once at the stop position.
// Requires [begin, end) to be in ascending order.
func breaking[E any](s core.Sequence[E], begin, end int, less, eq func(E) bool) int {
	if begin == end {
		return end
	}
	i := end - 1

	for i > begin && less(s.At(i)) {
		i--
	}

	if eq(s.At(i)) {
		return i
	}

	return end
}

// Breaking scans seq backward for key, stopping at the first element
// the key is no longer strictly below, and checks equality once there.
// Requires ascending order. O(n) time, O(1) space, but terminates as
// soon as the scan's floor is reached.
func Breaking[E cmp.Ordered](seq []E, key E) int {
	return BreakingRange(core.Slice[E](seq), 0, len(seq), key)
}

// BreakingFunc is Breaking with caller-supplied ordering and equality
// capabilities.
func BreakingFunc[E any](seq []E, key E, less core.Less[E], eq core.Eq[E]) int {
	return BreakingRangeFunc(core.Slice[E](seq), 0, len(seq), key, less, eq)
}

// BreakingRange applies the breaking scan to the window [begin, end)
// of s using natural ordering and equality.
func BreakingRange[E cmp.Ordered](s core.Sequence[E], begin, end int, key E) int {
	return breaking(s, begin, end,
		func(right E) bool { return key < right },
		func(right E) bool { return key == right })
}

// BreakingRangeFunc is BreakingRange with caller-supplied ordering and
// equality capabilities.
func BreakingRangeFunc[E any](s core.Sequence[E], begin, end int, key E, less core.Less[E], eq core.Eq[E]) int {
	return breaking(s, begin, end,
		func(right E) bool { return less(key, right) },
		func(right E) bool { return eq(key, right) })
}

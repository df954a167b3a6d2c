package bisect

import (
	"cmp"

	"github.com/katalvlaran/bsearch/core"
)

// standard is the classic half-interval kernel. The loop invariant is
// that the answer, if present, lies in [low, high]; the midpoint is
// taken from the high side so the window strictly shrinks for every
// size, including two elements.
func standard[E any](s core.Sequence[E], begin, end int, less, eq func(E) bool) int {
	if begin == end {
		return end
	}
	low, high := begin, end-1

	for low < high {
		mid := high - (high-low)/2
		if less(s.At(mid)) {
			high = mid - 1
		} else {
			low = mid
		}
	}

	if eq(s.At(low)) {
		return low
	}

	return end
}

// Standard performs a classic binary search for key over the ascending
// slice seq using natural ordering, returning the match position or
// len(seq) if absent. O(log n) time, O(1) space.
func Standard[E cmp.Ordered](seq []E, key E) int {
	return StandardRange(core.Slice[E](seq), 0, len(seq), key)
}

// StandardFunc is Standard with caller-supplied ordering and equality
// capabilities.
func StandardFunc[E any](seq []E, key E, less core.Less[E], eq core.Eq[E]) int {
	return StandardRangeFunc(core.Slice[E](seq), 0, len(seq), key, less, eq)
}

// StandardRange applies the classic binary search to the window
// [begin, end) of s using natural ordering. Returns a position in
// [begin, end) on a hit, end on a miss.
func StandardRange[E cmp.Ordered](s core.Sequence[E], begin, end int, key E) int {
	return standard(s, begin, end,
		func(right E) bool { return key < right },
		func(right E) bool { return key == right })
}

// StandardRangeFunc is StandardRange with caller-supplied ordering and
// equality capabilities.
func StandardRangeFunc[E any](s core.Sequence[E], begin, end int, key E, less core.Less[E], eq core.Eq[E]) int {
	return standard(s, begin, end,
		func(right E) bool { return less(key, right) },
		func(right E) bool { return eq(key, right) })
}

package bisect

import (
	"cmp"

	"github.com/katalvlaran/bsearch/core"
)

// boundless is the galloping kernel: no explicit high bound, just one
// integer step that starts at the window size and halves each round.
// Whenever the probed element is not below the key the base advances
// by the half-step and the step rounds up instead of down, which is
// what keeps the candidate inside the shrinking window.
func boundless[E any](s core.Sequence[E], begin, end int, less, eq func(E) bool) int {
	if begin == end {
		return end
	}
	mid := end - begin
	bot := 0

	for mid > 1 {
		half := mid / 2
		if !less(s.At(begin + bot + half)) {
			bot += half
			mid++
		}
		mid /= 2
	}

	if eq(s.At(begin + bot)) {
		return begin + bot
	}

	return end
}

// Boundless performs a galloping binary search for key over the
// ascending slice seq using natural ordering, returning the match
// position or len(seq) if absent. Same O(log n) bound as Standard with
// a different constant-factor branch pattern: no upper-bound cursor is
// recomputed per round.
func Boundless[E cmp.Ordered](seq []E, key E) int {
	return BoundlessRange(core.Slice[E](seq), 0, len(seq), key)
}

// BoundlessFunc is Boundless with caller-supplied ordering and
// equality capabilities.
func BoundlessFunc[E any](seq []E, key E, less core.Less[E], eq core.Eq[E]) int {
	return BoundlessRangeFunc(core.Slice[E](seq), 0, len(seq), key, less, eq)
}

// BoundlessRange applies the galloping search to the window
// [begin, end) of s using natural ordering.
func BoundlessRange[E cmp.Ordered](s core.Sequence[E], begin, end int, key E) int {
	return boundless(s, begin, end,
		func(right E) bool { return key < right },
		func(right E) bool { return key == right })
}

// BoundlessRangeFunc is BoundlessRange with caller-supplied ordering
// and equality capabilities.
func BoundlessRangeFunc[E any](s core.Sequence[E], begin, end int, key E, less core.Less[E], eq core.Eq[E]) int {
	return boundless(s, begin, end,
		func(right E) bool { return less(key, right) },
		func(right E) bool { return eq(key, right) })
}

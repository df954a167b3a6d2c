package bisect

import (
	"cmp"

	"github.com/katalvlaran/bsearch/core"
)

// quaternary partitions the window into quarters while it is very
// large, spending two probes per round to discard three of them, then
// hands the remainder to the monobound shrink and the linear tail.
func quaternary[E any](s core.Sequence[E], begin, end int, less, eq func(E) bool) int {
	if begin == end {
		return end
	}
	bot, top := 0, end-begin

	for top >= quaternaryThreshold {
		mid := top / 4
		top -= mid * 3

		if less(s.At(begin + bot + mid*2)) {
			// key is in the lower half: first or second quarter.
			if !less(s.At(begin + bot + mid)) {
				bot += mid
			}
		} else {
			// key is in the upper half: third or fourth quarter.
			bot += mid * 2
			if !less(s.At(begin + bot + mid)) {
				bot += mid
			}
		}
	}

	bot, top = shrink(s, begin, bot, top, tailLimit, less)

	return tailScan(s, begin, end, bot, top, eq)
}

// Quaternary performs a 4-way partition search for key over the
// ascending slice seq using natural ordering, returning the match
// position or len(seq) if absent. Each quartering round costs two
// probes but halves the search space twice; below 65536 remaining
// elements it degrades to the monobound shrink, and below 4 to the
// linear tail. Intended for very large sequences. O(log n) time.
func Quaternary[E cmp.Ordered](seq []E, key E) int {
	return QuaternaryRange(core.Slice[E](seq), 0, len(seq), key)
}

// QuaternaryFunc is Quaternary with caller-supplied ordering and
// equality capabilities.
func QuaternaryFunc[E any](seq []E, key E, less core.Less[E], eq core.Eq[E]) int {
	return QuaternaryRangeFunc(core.Slice[E](seq), 0, len(seq), key, less, eq)
}

// QuaternaryRange applies the 4-way partition search to the window
// [begin, end) of s using natural ordering.
func QuaternaryRange[E cmp.Ordered](s core.Sequence[E], begin, end int, key E) int {
	return quaternary(s, begin, end,
		func(right E) bool { return key < right },
		func(right E) bool { return key == right })
}

// QuaternaryRangeFunc is QuaternaryRange with caller-supplied ordering
// and equality capabilities.
func QuaternaryRangeFunc[E any](s core.Sequence[E], begin, end int, key E, less core.Less[E], eq core.Eq[E]) int {
	return quaternary(s, begin, end,
		func(right E) bool { return less(key, right) },
		func(right E) bool { return eq(key, right) })
}

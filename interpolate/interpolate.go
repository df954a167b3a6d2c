package interpolate

import "github.com/katalvlaran/bsearch/core"

// interpolated is the full kernel: estimate, outward gallop, monobound
// shrink, linear tail. bot and top are offsets from begin throughout.
func interpolated[E Real](s core.Sequence[E], begin, end int, key E, less, eq func(E) bool) int {
	if begin == end {
		return end
	}

	if less(s.At(begin)) {
		// key orders below the minimum
		return end
	}

	size := end - begin
	bot := size - 1
	max := s.At(begin + bot)

	if !less(max) {
		// key orders at or above the maximum: one tap decides
		if eq(max) {
			return begin + bot
		}

		return end
	}

	bot = estimate(key, s.At(begin), max, bot)
	top := gallopSeed

	if !less(s.At(begin + bot)) {
		// estimate is at or below the key: gallop upward
		for {
			if bot+top >= size {
				top = size - bot
				break
			}
			bot += top
			if less(s.At(begin + bot)) {
				bot -= top
				break
			}
			top *= 2
		}
	} else {
		// estimate is above the key: gallop downward
		for {
			if bot < top {
				top = bot
				bot = 0
				break
			}
			bot -= top
			if !less(s.At(begin + bot)) {
				break
			}
			top *= 2
		}
	}

	for top > 3 {
		mid := top / 2
		if !less(s.At(begin + bot + mid)) {
			bot += mid
		}
		top -= mid
	}

	for top > 0 {
		top--
		if eq(s.At(begin + bot + top)) {
			return begin + bot + top
		}
	}

	return end
}

// Search performs interpolation search for key over the ascending
// slice seq using natural ordering, returning the match position or
// len(seq) if absent. Expected O(log log n) probes on roughly uniform
// value spacing, O(1) space.
func Search[E Real](seq []E, key E) int {
	return SearchRange(core.Slice[E](seq), 0, len(seq), key)
}

// SearchFunc is Search with caller-supplied ordering and equality
// capabilities. The capabilities must agree with the values' numeric
// order, which the position estimate is computed from.
func SearchFunc[E Real](seq []E, key E, less core.Less[E], eq core.Eq[E]) int {
	return SearchRangeFunc(core.Slice[E](seq), 0, len(seq), key, less, eq)
}

// SearchRange applies interpolation search to the window [begin, end)
// of s using natural ordering. Returns a position in [begin, end) on a
// hit, end on a miss.
func SearchRange[E Real](s core.Sequence[E], begin, end int, key E) int {
	return interpolated(s, begin, end, key,
		func(right E) bool { return key < right },
		func(right E) bool { return key == right })
}

// SearchRangeFunc is SearchRange with caller-supplied ordering and
// equality capabilities.
func SearchRangeFunc[E Real](s core.Sequence[E], begin, end int, key E, less core.Less[E], eq core.Eq[E]) int {
	return interpolated(s, begin, end, key,
		func(right E) bool { return less(key, right) },
		func(right E) bool { return eq(key, right) })
}

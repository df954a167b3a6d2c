package adaptive

import (
	"cmp"

	"github.com/katalvlaran/bsearch/core"
)

// adaptiveSearch is the kernel. bot and every State offset are
// relative to begin, so the same State keeps working for a fixed
// window of any Sequence.
func adaptiveSearch[E any](s core.Sequence[E], begin, end int, st *State, less, eq func(E) bool) int {
	if begin == end {
		return end
	}
	size := end - begin

	if st.Balance < balanceThreshold && size > smallSequence {
		// GALLOP_BRACKET: probe outward from the previous position.
		start := st.Probe
		if start >= size {
			// stale probe after the sequence shrank
			start = size - 1
		}
		if start < 0 {
			start = 0
		}
		bot, top := start, gallopSeed

		if !less(s.At(begin + bot)) {
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

		st.Probe = bot
		if start > bot {
			st.Balance = start - bot
		} else {
			st.Balance = bot - start
		}

		// LINEAR_TAIL over the bracketed window.
		for top > 0 {
			top--
			if eq(s.At(begin + bot + top)) {
				return begin + bot + top
			}
		}

		return end
	}

	// FULL_SCAN_FALLBACK: locality is gone or the window is small.
	// Re-initialize the session and scan the whole window backward.
	st.Probe, st.Balance = 0, 0
	for i := size; i > 0; {
		i--
		if eq(s.At(begin + i)) {
			st.Probe = i
			return begin + i
		}
	}

	return end
}

// Search performs an adaptive search for key over the ascending slice
// seq using natural ordering, threading the caller-owned st across
// calls. Returns the match position or len(seq) if absent. With good
// locality each call costs O(gallop distance) instead of O(log n) or
// O(n).
func Search[E cmp.Ordered](seq []E, key E, st *State) int {
	return SearchRange(core.Slice[E](seq), 0, len(seq), key, st)
}

// SearchFunc is Search with caller-supplied ordering and equality
// capabilities.
func SearchFunc[E any](seq []E, key E, st *State, less core.Less[E], eq core.Eq[E]) int {
	return SearchRangeFunc(core.Slice[E](seq), 0, len(seq), key, st, less, eq)
}

// SearchRange applies the adaptive search to the window [begin, end)
// of s using natural ordering. State offsets are relative to begin.
func SearchRange[E cmp.Ordered](s core.Sequence[E], begin, end int, key E, st *State) int {
	return adaptiveSearch(s, begin, end, st,
		func(right E) bool { return key < right },
		func(right E) bool { return key == right })
}

// SearchRangeFunc is SearchRange with caller-supplied ordering and
// equality capabilities.
func SearchRangeFunc[E any](s core.Sequence[E], begin, end int, key E, st *State, less core.Less[E], eq core.Eq[E]) int {
	return adaptiveSearch(s, begin, end, st,
		func(right E) bool { return less(key, right) },
		func(right E) bool { return eq(key, right) })
}

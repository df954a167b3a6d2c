package bisect

import (
	"cmp"

	"github.com/katalvlaran/bsearch/core"
)

// monobound is the branch-lean kernel: top halves every round, the
// base advances on a single predicate, equality is checked once.
func monobound[E any](s core.Sequence[E], begin, end int, less, eq func(E) bool) int {
	if begin == end {
		return end
	}
	bot, top := 0, end-begin

	for top > 1 {
		mid := top / 2
		if !less(s.At(begin + bot + mid)) {
			bot += mid
		}
		top -= mid
	}

	if eq(s.At(begin + bot)) {
		return begin + bot
	}

	return end
}

// doubleTapped shrinks with the boundless step down to a residual
// window of two elements, then taps each of them from the top.
func doubleTapped[E any](s core.Sequence[E], begin, end int, less, eq func(E) bool) int {
	bot, mid := 0, end-begin

	for mid > 2 {
		half := mid / 2
		if !less(s.At(begin + bot + half)) {
			bot += half
			mid++
		}
		mid /= 2
	}

	// mid is 0 for an empty window, so the tail is a no-op there.
	return tailScan(s, begin, end, bot, mid, eq)
}

// tripleTapped shrinks with monobound halving down to a residual
// window of at most three elements, then taps them from the top.
func tripleTapped[E any](s core.Sequence[E], begin, end int, less, eq func(E) bool) int {
	if begin == end {
		return end
	}
	bot, top := shrink(s, begin, 0, end-begin, tailLimit, less)

	return tailScan(s, begin, end, bot, top, eq)
}

// Monobound performs a single-bound binary search for key over the
// ascending slice seq using natural ordering, returning the match
// position or len(seq) if absent. The kernel every tapped, quaternary
// and interpolated variant reduces to. O(log n) time, O(1) space.
func Monobound[E cmp.Ordered](seq []E, key E) int {
	return MonoboundRange(core.Slice[E](seq), 0, len(seq), key)
}

// MonoboundFunc is Monobound with caller-supplied ordering and
// equality capabilities.
func MonoboundFunc[E any](seq []E, key E, less core.Less[E], eq core.Eq[E]) int {
	return MonoboundRangeFunc(core.Slice[E](seq), 0, len(seq), key, less, eq)
}

// MonoboundRange applies the single-bound search to the window
// [begin, end) of s using natural ordering.
func MonoboundRange[E cmp.Ordered](s core.Sequence[E], begin, end int, key E) int {
	return monobound(s, begin, end,
		func(right E) bool { return key < right },
		func(right E) bool { return key == right })
}

// MonoboundRangeFunc is MonoboundRange with caller-supplied ordering
// and equality capabilities.
func MonoboundRangeFunc[E any](s core.Sequence[E], begin, end int, key E, less core.Less[E], eq core.Eq[E]) int {
	return monobound(s, begin, end,
		func(right E) bool { return less(key, right) },
		func(right E) bool { return eq(key, right) })
}

// DoubleTapped performs bisection that stops at a two-element residual
// window and finishes with a reverse linear tail, trading the final
// comparison branch for two cheap equality taps. O(log n) time.
func DoubleTapped[E cmp.Ordered](seq []E, key E) int {
	return DoubleTappedRange(core.Slice[E](seq), 0, len(seq), key)
}

// DoubleTappedFunc is DoubleTapped with caller-supplied ordering and
// equality capabilities.
func DoubleTappedFunc[E any](seq []E, key E, less core.Less[E], eq core.Eq[E]) int {
	return DoubleTappedRangeFunc(core.Slice[E](seq), 0, len(seq), key, less, eq)
}

// DoubleTappedRange applies the double-tapped search to the window
// [begin, end) of s using natural ordering.
func DoubleTappedRange[E cmp.Ordered](s core.Sequence[E], begin, end int, key E) int {
	return doubleTapped(s, begin, end,
		func(right E) bool { return key < right },
		func(right E) bool { return key == right })
}

// DoubleTappedRangeFunc is DoubleTappedRange with caller-supplied
// ordering and equality capabilities.
func DoubleTappedRangeFunc[E any](s core.Sequence[E], begin, end int, key E, less core.Less[E], eq core.Eq[E]) int {
	return doubleTapped(s, begin, end,
		func(right E) bool { return less(key, right) },
		func(right E) bool { return eq(key, right) })
}

// TripleTapped performs bisection that stops at a residual window of
// at most three elements and finishes with a reverse linear tail.
// O(log n) time, O(1) space.
func TripleTapped[E cmp.Ordered](seq []E, key E) int {
	return TripleTappedRange(core.Slice[E](seq), 0, len(seq), key)
}

// TripleTappedFunc is TripleTapped with caller-supplied ordering and
// equality capabilities.
func TripleTappedFunc[E any](seq []E, key E, less core.Less[E], eq core.Eq[E]) int {
	return TripleTappedRangeFunc(core.Slice[E](seq), 0, len(seq), key, less, eq)
}

// TripleTappedRange applies the triple-tapped search to the window
// [begin, end) of s using natural ordering.
func TripleTappedRange[E cmp.Ordered](s core.Sequence[E], begin, end int, key E) int {
	return tripleTapped(s, begin, end,
		func(right E) bool { return key < right },
		func(right E) bool { return key == right })
}

// TripleTappedRangeFunc is TripleTappedRange with caller-supplied
// ordering and equality capabilities.
func TripleTappedRangeFunc[E any](s core.Sequence[E], begin, end int, key E, less core.Less[E], eq core.Eq[E]) int {
	return tripleTapped(s, begin, end,
		func(right E) bool { return less(key, right) },
		func(right E) bool { return eq(key, right) })
}

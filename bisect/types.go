// Package bisect declares the family's tunables and the shared shrink
// and tail kernels the tapped and quaternary variants are built from.
package bisect

import "github.com/katalvlaran/bsearch/core"

// quaternaryThreshold is the window size above which Quaternary keeps
// partitioning into quarters; below it the monobound shrink takes over.
const quaternaryThreshold = 65536

// tailLimit is the residual window size at which the halving phases
// hand over to the reverse linear tail.
const tailLimit = 3

// shrink narrows the residual window [bot, bot+top) (offsets from
// base) with monobound halving until it holds at most limit elements.
// Returns the updated bot and top.
func shrink[E any](s core.Sequence[E], base, bot, top, limit int, less func(E) bool) (int, int) {
	for top > limit {
		mid := top / 2
		if !less(s.At(base + bot + mid)) {
			bot += mid
		}
		top -= mid
	}

	return bot, top
}

// tailScan walks the residual window [bot, bot+top) (offsets from
// base) from its top downward, returning the first equal position, or
// end on a miss.
func tailScan[E any](s core.Sequence[E], base, end, bot, top int, eq func(E) bool) int {
	for top > 0 {
		top--
		if eq(s.At(base + bot + top)) {
			return base + bot + top
		}
	}

	return end
}

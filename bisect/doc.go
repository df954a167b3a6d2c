// Package bisect provides the bisection members of the bsearch family:
// standard low/high halving, boundless (galloping) halving, monobound
// halving, the double- and triple-tapped variants that finish with a
// short linear tail, and a quaternary variant for very large sequences.
//
// # What
//
//   - Standard: the classic half-interval search. Maintains low/high
//     cursors with the invariant that the answer, if present, lies in
//     [low, high]; one equality check once they meet.
//   - Boundless: no explicit high bound. A single integer step starts
//     at the window size and halves each round, conditionally advancing
//     the base whenever the probe is not below the key — exponential
//     galloping collapsed into one shrinking loop.
//   - Monobound: the branch-lean kernel the rest of the family reuses:
//     top halves every round, the base advances on a single predicate,
//     one equality check at the end.
//   - DoubleTapped / TripleTapped: coarse bisection down to a residual
//     window of 2 or 3 elements, finished with a reverse linear tail.
//     The multi-element tail sidesteps the final-comparison branch
//     misprediction of naively terminating bisection.
//   - Quaternary: above 65536 remaining elements, each round evaluates
//     two probes to pick one of four sub-ranges; below the threshold it
//     degrades to the monobound shrink, and below 4 to the linear tail.
//
// # Calling shapes
//
//	Standard(seq, key)                               — whole slice, natural order
//	StandardFunc(seq, key, less, eq)                 — whole slice, custom capabilities
//	StandardRange(s, begin, end, key)                — window over any core.Sequence
//	StandardRangeFunc(s, begin, end, key, less, eq)  — window + custom capabilities
//
//	Boundless*, Monobound*, DoubleTapped*, TripleTapped* and Quaternary*
//	mirror the same four shapes.
//
// # Contract
//
//	Ascending order over [begin, end) is a precondition; begin == end
//	denotes an empty window and yields the sentinel without reading any
//	element. A hit is a position in [begin, end); a miss is end (len(seq)
//	for the whole-slice shapes). Unsorted input or inconsistent
//	capabilities make the result undefined, not an error.
//
// # Complexity (n = end - begin)
//
//	All variants: O(log n) comparisons, O(1) space, zero allocation.
//	They differ in constant factors: Standard recomputes two bounds per
//	round, Boundless/Monobound shrink a single integer, Quaternary
//	spends two probes per round to quarter the window.
//
// # Duplicates
//
//	Every variant lands on the highest position among equal elements:
//	the halving phases advance the base whenever the probe is not below
//	the key, and the linear tails scan from the top of the residual
//	window downward.
package bisect

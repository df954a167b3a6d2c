// Package linear provides the linear members of the bsearch family:
// an exhaustive backward scan and a breaking (early-stop) backward scan
// over a random-access sequence.
//
// # What
//
//   - Search: visits every position once, from the last down to the
//     first, and returns the first match encountered in that direction,
//     i.e. the matching element closest to the end. The only variant in
//     the library that works on unsorted sequences.
//   - Breaking: the same backward scan, but it stops as soon as the key
//     orders strictly below the current element's floor, checking
//     equality once at the stop position. Requires ascending order; a
//     partial-scan optimization for small or near-worst-case inputs.
//
// # Calling shapes
//
//	Search(seq, key)                          — whole slice, natural equality
//	SearchFunc(seq, key, eq)                  — whole slice, custom equality
//	SearchRange(s, begin, end, key)           — window over any core.Sequence
//	SearchRangeFunc(s, begin, end, key, eq)   — window + custom equality
//
//	Breaking* mirrors the same four shapes, taking both a less-than and
//	an equality capability in its Func forms.
//
// # Contract
//
//	begin <= end is required; begin == end denotes an empty window and
//	yields the sentinel without reading any element. A hit is a position
//	in [begin, end); a miss is end. Slice forms use len(seq) as end.
//
// # Complexity (n = end - begin)
//
//   - Search:   Θ(n) time worst case, O(1) space
//   - Breaking: O(n) time, O(1) space; stops early on sorted input
//
// # Duplicates
//
//	Both variants scan from the top, so among duplicate keys they report
//	the one with the highest position.
package linear

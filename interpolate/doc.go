// Package interpolate provides interpolation search: position
// estimation from value spacing, an outward gallop to bracket the key,
// and the family's monobound shrink plus linear tail to finish.
//
// # What
//
//  1. Estimate the key's probable position by linear interpolation
//     between the window's first and last values, assuming roughly
//     uniform spacing: estimate ≈ (size-1)·(key-min)/(max-min).
//  2. Short-circuit keys below the minimum and at/above the maximum.
//  3. Gallop outward from the estimate with a doubling step (seed 64),
//     upward or downward depending on how the estimated element
//     compares to the key, clamping at the window edges.
//  4. Shrink the bracketed window with monobound halving to at most
//     three elements and tap them from the top.
//
// # Element types
//
//	The element type must support subtraction producing a numeric
//	ratio, expressed by the Real constraint (integer and float kinds).
//	The interpolation ratio is computed in float64 on platforms whose
//	int is wider than 32 bits and float32 otherwise, wide enough for
//	the index range either way.
//
// # When to use
//
//	Profitable when values are roughly uniformly distributed: the
//	estimate lands near the key and the gallop stays short, giving
//	O(log log n) expected probes. On adversarial distributions it
//	degrades toward linear-time galloping; the bisect package is the
//	safer default there.
//
// # Calling shapes & contract
//
//	Search(seq, key), SearchFunc(seq, key, less, eq),
//	SearchRange(s, begin, end, key) and
//	SearchRangeFunc(s, begin, end, key, less, eq) — the family's four
//	shapes. Ascending order is a precondition; begin == end yields the
//	sentinel without reading any element; a miss returns end. Custom
//	capabilities must stay consistent with the values' numeric order,
//	since the estimate itself is numeric.
//
// # Duplicates
//
//	Like the rest of the family, the returned position is the highest
//	among equal elements.
package interpolate

// Package core defines the shared capabilities every search variant in
// bsearch is built on: a minimal random-access Sequence view, the Slice
// adapter for ordinary Go slices, and the Less/Eq comparison capability
// types with their natural-ordering defaults.
//
// # What
//
//   - Sequence[E]: the smallest capability set a search needs —
//     Len (distance to the end) and At (dereference at a position).
//     Positions are plain int indices; advancing, retreating and
//     distance computation are integer arithmetic, so the same
//     algorithm runs over contiguous arrays, ring buffers, mmapped
//     views, or any other random-access source uniformly.
//   - Slice[E]: zero-cost adapter presenting a []E as a Sequence[E].
//   - Less[E] / Eq[E]: caller-supplied comparison capabilities,
//     invoked as pred(key, element).
//   - NaturalLess / NaturalEq: defaults derived from the element
//     type's own ordering (<) and equality (==).
//
// # Why
//
//	Every variant in linear/, bisect/, interpolate/ and adaptive/
//	consumes exactly these types, so a custom sequence or a custom
//	ordering written once works with the whole family.
//
// # Contract
//
//	The search layer never copies or mutates a Sequence; At must be
//	O(1) and side-effect free. Caller-supplied predicates must be
//	mutually consistent with the sequence's actual ascending order;
//	the outcome is undefined otherwise.
//
// # Sentinel
//
//	There is no error type here and none is needed: "not found" is the
//	end position of the searched window (len(seq) for whole-slice
//	forms), the same value that denotes the sequence's end.
package core

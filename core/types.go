// Package core declares the Sequence capability, the Slice adapter,
// and the Less/Eq comparison capability types shared by every search
// variant in bsearch.
package core

import "cmp"

// Sequence is the minimal random-access view a search variant needs.
//
// Positions are int indices in [0, Len()); advancing, retreating and
// distance computation are plain integer arithmetic on positions, which
// keeps the position handle opaque to the algorithm while staying O(1).
//
// At must be O(1) and side-effect free; the search layer never calls it
// outside [begin, end) of the window it was given and never mutates the
// underlying data.
type Sequence[E any] interface {
	// Len reports the number of elements.
	Len() int

	// At returns the element at position i, 0 <= i < Len().
	At(i int) E
}

// Slice adapts an ordinary Go slice to the Sequence capability.
//
// The adapter is a zero-cost view: it shares the backing array with the
// original slice and never copies it.
type Slice[E any] []E

// Len reports the number of elements. O(1).
func (s Slice[E]) Len() int { return len(s) }

// At returns the element at position i. O(1).
func (s Slice[E]) At(i int) E { return s[i] }

// Less is a caller-supplied strict ordering capability, invoked as
// less(key, element). It must agree with the sequence's ascending
// order: less(a, b) && less(b, c) implies less(a, c), and
// !less(a, b) && !less(b, a) means a and b are order-equivalent.
type Less[E any] func(key, element E) bool

// Eq is a caller-supplied equality capability, invoked as
// eq(key, element). It must be consistent with the Less capability
// used alongside it: eq(a, b) implies !less(a, b) && !less(b, a).
type Eq[E any] func(key, element E) bool

// NaturalLess is the default ordering capability: the element type's
// own < operator.
func NaturalLess[E cmp.Ordered](key, element E) bool { return key < element }

// NaturalEq is the default equality capability: the element type's
// own == operator.
func NaturalEq[E comparable](key, element E) bool { return key == element }

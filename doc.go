// Package bsearch is your toolkit for locating keys inside already-sorted,
// random-access sequences — from plain linear scans to galloping,
// interpolated and locality-adaptive probing.
//
// 🚀 What is bsearch?
//
//	A modern, allocation-free, zero-dependency library that brings together
//	the whole family of ordered-sequence search disciplines:
//		• Linear scans: exhaustive and breaking (early-stop) backward scans
//		• Bisection: standard low/high, boundless (galloping), monobound,
//		  double- and triple-tapped variants with linear tails
//		• Quaternary: 4-way partitioning for very large sequences
//		• Interpolation: position estimates from value spacing
//		• Adaptive: persisted locality state for repeated nearby queries
//
// ✨ Why choose bsearch?
//
//   - Beginner-friendly – minimal API, one shared contract, clear naming
//   - Rock-solid guarantees – exact boundary arithmetic for every length,
//     including zero, one and two elements
//   - Pure Go – no cgo, no hidden deps, no allocation on the search path
//   - Extensible – search any random-access source through core.Sequence,
//     with caller-supplied less-than/equality capabilities
//
// Under the hood, everything is organized into small leaf packages:
//
//	core/        — Sequence capability, Slice adapter, predicate types
//	linear/      — exhaustive and breaking backward scans
//	bisect/      — standard, boundless, monobound, tapped & quaternary
//	interpolate/ — value-spacing position estimation + gallop + tail
//	adaptive/    — caller-owned search state for locality-aware probing
//
// One contract everywhere: given a window [begin, end) over an ascending
// sequence, a key, and optional less-than/equality capabilities, each
// variant returns the position of a matching element — or end, the
// universal not-found sentinel. Not-found is a normal result, never an
// error; precondition violations (unsorted input, begin > end,
// inconsistent predicates) are undefined behavior by contract, traded
// for per-comparison performance.
//
// Quick ASCII example:
//
//	    [1  3  5  7  9  11  13]
//	               ▲
//	    bisect.Standard(seq, 7) → 3
//
// Pick a variant by expected size, value distribution, and whether your
// queries are one-off or arrive with spatial locality. Dive into each
// package's doc.go for complexity tables and guidance.
//
//	go get github.com/katalvlaran/bsearch
package bsearch

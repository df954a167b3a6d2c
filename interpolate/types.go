// Package interpolate declares the Real element constraint and the
// estimate arithmetic behind interpolation search.
package interpolate

import "math/bits"

// Real constrains elements to kinds whose subtraction yields a numeric
// ratio usable for position estimation.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// gallopSeed is the initial doubling step when galloping outward from
// the interpolated estimate.
const gallopSeed = 64

// wideIndex reports whether positions on this platform are wider than
// 32 bits, in which case the estimate ratio needs double precision to
// avoid systematic bias on large sequences.
const wideIndex = bits.UintSize > 32

// estimate returns the interpolated position offset for key between
// min and max over a window of span+1 elements. Requires
// min <= key < max. The differences are taken in the float domain:
// element-typed subtraction wraps for signed kinds whose value span
// exceeds the type's range. The result is clamped into [0, span] to
// absorb float rounding at the edges.
func estimate[E Real](key, min, max E, span int) int {
	var bot int
	if wideIndex {
		bot = int(float64(span) * ((float64(key) - float64(min)) / (float64(max) - float64(min))))
	} else {
		bot = int(float32(span) * ((float32(key) - float32(min)) / (float32(max) - float32(min))))
	}

	if bot < 0 {
		return 0
	}
	if bot > span {
		return span
	}

	return bot
}

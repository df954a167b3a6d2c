package linear_test

import (
	"testing"

	"github.com/katalvlaran/bsearch/core"
	"github.com/katalvlaran/bsearch/linear"
	"github.com/stretchr/testify/assert"
)

// odds is the reference ascending sequence used across the package
// tests: value 2i+1 at position i.
var odds = []int{1, 3, 5, 7, 9, 11, 13}

// TestSearch_Golden pins hit and miss positions on the reference
// sequence. Misses return len(seq), the end sentinel.
func TestSearch_Golden(t *testing.T) {
	for i, v := range odds {
		assert.Equal(t, i, linear.Search(odds, v), "every present key maps to its position")
	}
	assert.Equal(t, len(odds), linear.Search(odds, 4), "absent key yields the end sentinel")
	assert.Equal(t, len(odds), linear.Search(odds, 0), "key below minimum yields the end sentinel")
	assert.Equal(t, len(odds), linear.Search(odds, 14), "key above maximum yields the end sentinel")
}

// TestSearch_Unsorted verifies the exhaustive scan does not rely on
// ordering.
func TestSearch_Unsorted(t *testing.T) {
	seq := []int{9, 1, 13, 5, 3}

	assert.Equal(t, 2, linear.Search(seq, 13))
	assert.Equal(t, 4, linear.Search(seq, 3))
	assert.Equal(t, len(seq), linear.Search(seq, 7))
}

// TestSearch_Duplicates pins the backward scan's duplicate choice: the
// occurrence closest to the end.
func TestSearch_Duplicates(t *testing.T) {
	seq := []int{1, 5, 5, 5, 9}
	assert.Equal(t, 3, linear.Search(seq, 5), "backward scan reports the highest duplicate")
}

// TestSearch_Boundaries covers empty and single-element windows.
func TestSearch_Boundaries(t *testing.T) {
	assert.Equal(t, 0, linear.Search([]int{}, 3), "empty sequence yields its end (0)")
	assert.Equal(t, 0, linear.Search([]int{7}, 7), "single element hit")
	assert.Equal(t, 1, linear.Search([]int{7}, 8), "single element miss")
}

// TestSearchRange_Window verifies hits outside the window are not
// reported and that the window's own end is the sentinel.
func TestSearchRange_Window(t *testing.T) {
	s := core.Slice[int](odds)

	assert.Equal(t, 3, linear.SearchRange(s, 2, 5, 7), "hit inside the window")
	assert.Equal(t, 5, linear.SearchRange(s, 2, 5, 13), "hit beyond the window is invisible")
	assert.Equal(t, 5, linear.SearchRange(s, 2, 5, 1), "hit before the window is invisible")
}

// TestSearchRange_EmptyReadsNothing asserts the empty-window contract:
// the sentinel comes back before any element access.
func TestSearchRange_EmptyReadsNothing(t *testing.T) {
	assert.Equal(t, 0, linear.SearchRange(noRead{}, 0, 0, 1))
	assert.Equal(t, 3, linear.SearchRange(noRead{}, 3, 3, 1), "equal endpoints anywhere denote empty")
}

// TestSearchFunc_CustomEquality matches on a projected field.
func TestSearchFunc_CustomEquality(t *testing.T) {
	type row struct{ id, payload int }
	seq := []row{{1, 10}, {2, 20}, {3, 30}}

	got := linear.SearchFunc(seq, row{id: 2}, func(key, right row) bool { return key.id == right.id })
	assert.Equal(t, 1, got, "equality capability decides what a match is")
}

// TestBreaking_Golden pins the breaking scan on the reference sequence.
func TestBreaking_Golden(t *testing.T) {
	for i, v := range odds {
		assert.Equal(t, i, linear.Breaking(odds, v), "every present key maps to its position")
	}
	assert.Equal(t, len(odds), linear.Breaking(odds, 4), "absent key yields the end sentinel")
	assert.Equal(t, len(odds), linear.Breaking(odds, 0), "below minimum stops at begin and misses")
	assert.Equal(t, len(odds), linear.Breaking(odds, 100), "above maximum stops immediately and misses")
}

// TestBreaking_StopsEarly counts element reads to show the scan
// terminates at its floor instead of visiting every position.
func TestBreaking_StopsEarly(t *testing.T) {
	reads := 0
	s := countingSeq{seq: odds, reads: &reads}

	got := linear.BreakingRange(s, 0, len(odds), 11)
	assert.Equal(t, 5, got)
	assert.Less(t, reads, len(odds), "scan must stop before reading the whole sequence")
}

// TestBreaking_Duplicates pins the duplicate choice: the scan stops at
// the highest occurrence.
func TestBreaking_Duplicates(t *testing.T) {
	seq := []int{1, 5, 5, 5, 9}
	assert.Equal(t, 3, linear.Breaking(seq, 5), "highest duplicate")
}

// TestBreaking_Boundaries covers empty and single-element windows.
func TestBreaking_Boundaries(t *testing.T) {
	assert.Equal(t, 0, linear.BreakingRange(noRead{}, 0, 0, 3), "empty window reads nothing")
	assert.Equal(t, 0, linear.Breaking([]int{7}, 7), "single element hit")
	assert.Equal(t, 1, linear.Breaking([]int{7}, 6), "single element miss")
}

// TestBreakingFunc_CustomOrder searches a descending sequence through
// an inverted ordering capability.
func TestBreakingFunc_CustomOrder(t *testing.T) {
	desc := []int{13, 11, 9, 7, 5, 3, 1}

	got := linear.BreakingFunc(desc, 9,
		func(key, right int) bool { return key > right },
		core.NaturalEq[int])
	assert.Equal(t, 2, got, "inverted less-than flips the accepted ordering")
}

// noRead is a Sequence whose elements must never be touched.
type noRead struct{}

func (noRead) Len() int   { return 0 }
func (noRead) At(int) int { panic("element read on an empty window") }

// countingSeq counts At calls on top of a backing slice.
type countingSeq struct {
	seq   []int
	reads *int
}

func (c countingSeq) Len() int { return len(c.seq) }
func (c countingSeq) At(i int) int {
	(*c.reads)++
	return c.seq[i]
}

package linear_test

import (
	"testing"

	"github.com/katalvlaran/bsearch/linear"
)

// ascending builds a sorted []int of n elements with value 2i+1 at i,
// so every odd value up to 2n-1 is present and every even value misses.
func ascending(n int) []int {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = 2*i + 1
	}

	return seq
}

// benchmarkSearch runs the exhaustive scan for a key near the front,
// the scan's worst case.
func benchmarkSearch(b *testing.B, n int) {
	seq := ascending(n)
	key := seq[0]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = linear.Search(seq, key)
	}
}

// benchmarkBreaking runs the breaking scan for a key in the middle.
func benchmarkBreaking(b *testing.B, n int) {
	seq := ascending(n)
	key := seq[n/2]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = linear.Breaking(seq, key)
	}
}

// BenchmarkSearch_100 benchmarks the exhaustive scan on 100 elements.
func BenchmarkSearch_100(b *testing.B) { benchmarkSearch(b, 100) }

// BenchmarkSearch_10000 benchmarks the exhaustive scan on 10k elements.
func BenchmarkSearch_10000(b *testing.B) { benchmarkSearch(b, 10000) }

// BenchmarkBreaking_100 benchmarks the breaking scan on 100 elements.
func BenchmarkBreaking_100(b *testing.B) { benchmarkBreaking(b, 100) }

// BenchmarkBreaking_10000 benchmarks the breaking scan on 10k elements.
func BenchmarkBreaking_10000(b *testing.B) { benchmarkBreaking(b, 10000) }

package seq_test

import (
	"testing"

	"github.com/hasbyte1/go-enumerable/seq"
)

// makeInts creates a Sequence[int] of size n for benchmarks.
func makeInts(n int) seq.Sequence[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return seq.From(items)
}

func BenchmarkWhere(b *testing.B) {
	s := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = seq.Slice(seq.Where(s, func(n int) bool { return n%2 == 0 }))
	}
}

func BenchmarkSelect(b *testing.B) {
	s := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = seq.Slice(seq.Select(s, func(n int) int { return n * 2 }))
	}
}

func BenchmarkSum(b *testing.B) {
	s := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = seq.Sum(s)
	}
}

func BenchmarkDistinct(b *testing.B) {
	// Mostly duplicates: the pairwise scan dominates.
	items := make([]int, 1_000)
	for i := range items {
		items[i] = i % 50
	}
	s := seq.From(items)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = seq.Slice(seq.Distinct(s))
	}
}

func BenchmarkElementAtIndexed(b *testing.B) {
	s := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = seq.ElementAt(s, 9_999)
	}
}

func BenchmarkElementAtLinear(b *testing.B) {
	s := seq.Where(makeInts(10_000), func(int) bool { return true })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = seq.ElementAt(s, 9_999)
	}
}

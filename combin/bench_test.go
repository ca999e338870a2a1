package combin_test

import (
	"testing"

	"github.com/katalvlaran/apriori/combin"
)

// BenchmarkCombinations_20_5 enumerates all C(20,5) = 15,504 combinations.
// The yielded buffer is reused, so the loop itself does not allocate.
func BenchmarkCombinations_20_5(b *testing.B) {
	items := make([]int, 20)
	for i := range items {
		items[i] = i
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for range combin.Combinations(items, 5) {
			n++
		}
		if n != 15504 {
			b.Fatalf("got %d combinations", n)
		}
	}
}

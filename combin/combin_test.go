package combin_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apriori/combin"
)

// TestIndices_Order verifies ascending-index (lexicographic) enumeration order.
func TestIndices_Order(t *testing.T) {
	var got [][]int
	for idx := range combin.Indices(5, 3) {
		got = append(got, slices.Clone(idx))
	}

	want := [][]int{
		{0, 1, 2}, {0, 1, 3}, {0, 1, 4}, {0, 2, 3}, {0, 2, 4},
		{0, 3, 4}, {1, 2, 3}, {1, 2, 4}, {1, 3, 4}, {2, 3, 4},
	}
	assert.Equal(t, want, got)
}

func TestIndices_EdgeSizes(t *testing.T) {
	tests := []struct {
		name string
		n, m int
		want [][]int
	}{
		{"m zero yields one empty", 3, 0, [][]int{{}}},
		{"m equals n yields identity", 3, 3, [][]int{{0, 1, 2}}},
		{"empty source, m zero", 0, 0, [][]int{{}}},
		{"m greater than n", 2, 3, nil},
		{"negative m", 2, -1, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got [][]int
			for idx := range combin.Indices(tc.n, tc.m) {
				got = append(got, slices.Clone(idx))
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestCombinations_PreservesOrder checks that elements keep their relative order
// and that the source slice is left untouched.
func TestCombinations_PreservesOrder(t *testing.T) {
	src := []string{"d", "a", "c"}
	got := combin.Collect(src, 2)

	assert.Equal(t, [][]string{{"d", "a"}, {"d", "c"}, {"a", "c"}}, got)
	assert.Equal(t, []string{"d", "a", "c"}, src, "source must not be modified")
}

func TestCombinations_Restartable(t *testing.T) {
	seq := combin.Combinations([]int{1, 2, 3, 4}, 2)

	var first, second [][]int
	for c := range seq {
		first = append(first, slices.Clone(c))
	}
	for c := range seq {
		second = append(second, slices.Clone(c))
	}

	assert.Len(t, first, 6)
	assert.Equal(t, first, second, "a second range must replay the same sequence")
}

func TestCombinations_EarlyBreak(t *testing.T) {
	n := 0
	for range combin.Combinations([]int{1, 2, 3, 4, 5}, 2) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

// TestCombinations_MatchesCount cross-checks the enumerated size against C(n,m).
func TestCombinations_MatchesCount(t *testing.T) {
	src := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	for m := 0; m <= len(src); m++ {
		got := combin.Collect(src, m)
		require.Len(t, got, combin.Count(len(src), m), "m=%d", m)
		for _, c := range got {
			assert.True(t, slices.IsSorted(c), "combination %v must keep ascending order", c)
		}
	}
}

func TestCount(t *testing.T) {
	assert.Equal(t, 1, combin.Count(0, 0))
	assert.Equal(t, 1, combin.Count(7, 0))
	assert.Equal(t, 7, combin.Count(7, 1))
	assert.Equal(t, 35, combin.Count(7, 3))
	assert.Equal(t, 35, combin.Count(7, 4))
	assert.Equal(t, 0, combin.Count(3, 4))
	assert.Equal(t, 0, combin.Count(3, -1))
	assert.Equal(t, 118264581564861424, combin.Count(60, 30))
	assert.Equal(t, math.MaxInt, combin.Count(200, 100), "huge values saturate")
}

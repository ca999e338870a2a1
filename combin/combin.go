package combin

import (
	"iter"
	"math"
	"slices"
)

// Indices returns the ascending index combinations of size m over 0..n-1.
//
// Steps:
//  1. Reject m < 0 and m > n (empty sequence).
//  2. Seed the frame with 0, 1, …, m-1 and yield it.
//  3. Find the rightmost position j with idx[j] < n-m+j, bump it and reset
//     every position after j to the smallest increasing tail.
//  4. Stop when no position can advance.
//
// The yielded slice must be treated as read-only.
// Complexity: O(m) amortized per combination, O(m) memory.
func Indices(n, m int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		// 1. Out-of-range sizes produce nothing.
		if m < 0 || m > n {
			return
		}

		// 2. First combination: 0..m-1.
		idx := make([]int, m)
		for i := range idx {
			idx[i] = i
		}

		var j, l int
		for {
			if !yield(idx) {
				return
			}

			// 3. Rightmost position still below its bound n-m+j.
			j = m - 1
			for j >= 0 && idx[j] == n-m+j {
				j--
			}
			// 4. Every position at its bound: enumeration exhausted.
			if j < 0 {
				return
			}

			idx[j]++
			for l = j + 1; l < m; l++ {
				idx[l] = idx[l-1] + 1
			}
		}
	}
}

// Combinations returns the m-length sub-sequences of s in ascending-index order.
// The yielded slice is reused between steps; clone it to retain it.
func Combinations[T any](s []T, m int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if m < 0 || m > len(s) {
			return
		}
		buf := make([]T, m)
		for idx := range Indices(len(s), m) {
			for p, i := range idx {
				buf[p] = s[i]
			}
			if !yield(buf) {
				return
			}
		}
	}
}

// Collect materializes Combinations(s, m) into independent slices.
func Collect[T any](s []T, m int) [][]T {
	out := make([][]T, 0, min(Count(len(s), m), 1024))
	for c := range Combinations(s, m) {
		out = append(out, slices.Clone(c))
	}

	return out
}

// Count returns C(n, m), or 0 when m is out of range.
// Values that do not fit in an int saturate at math.MaxInt.
// Complexity: O(min(m, n-m)).
func Count(n, m int) int {
	if m < 0 || m > n {
		return 0
	}
	if n-m < m {
		m = n - m // symmetry keeps the loop short
	}

	res := 1
	var f int
	for i := 1; i <= m; i++ {
		f = n - m + i
		if res > math.MaxInt/f {
			return math.MaxInt
		}
		// res*f is C(n-m+i, i)*i, so the division is exact.
		res = res * f / i
	}

	return res
}

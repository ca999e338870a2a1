// Package combin enumerates k-combinations of ordered sequences.
//
// What:
//
//   - Indices(n, m): every ascending index tuple i₁ < i₂ < … < iₘ drawn from 0..n-1,
//     produced in lexicographic-by-position order.
//   - Combinations(s, m): the same enumeration projected onto the elements of s,
//     so the relative order of s is preserved (combinations, not permutations).
//   - Count(n, m): the binomial coefficient C(n, m), saturating at math.MaxInt.
//   - Collect(s, m): eager helper returning independent copies.
//
// Enumeration is lazy (iter.Seq), finite and restartable: every range over the
// returned sequence starts from the first combination again. The input slice is
// never modified.
//
// The enumerator keeps a single index frame and advances it in place. A position j
// is never moved past n-m+j, which prunes every branch that could not be completed
// to a full combination.
//
// Edge cases:
//
//   - m == 0      exactly one empty combination
//   - m == n      exactly one combination equal to s
//   - m < 0, m > n nothing
//
// Complexity:
//
//   - Time:   O(C(n,m)·m) for a full enumeration
//   - Memory: O(m), the yielded slice is reused between steps
//
// Buffers: the slice passed to the loop body is owned by the enumerator and is
// overwritten on the next step. Clone it (slices.Clone) to keep it.
package combin

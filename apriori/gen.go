package apriori

import (
	"github.com/katalvlaran/apriori/combin"
	"github.com/katalvlaran/apriori/itemset"
)

// Generate is apriori-gen: it derives the candidate k-itemsets from the
// frequent (k-1)-itemsets.
//
// Precondition: frequent is sorted ascending lexicographically under cmp, every
// itemset is strictly ascending and all have the same size k-1. The Mining
// Driver maintains this; other callers must too (itemset.Table.Itemsets
// returns exactly this shape). cmp must be non-nil.
//
// Algorithm:
//  1. Join: for every pair A = frequent[i], B = frequent[j] with i < j, if
//     k-1 = 1 or A and B share their first k-2 items, emit A ++ [last(B)].
//     Prefix-equal itemsets are contiguous in ascending order, so the inner
//     loop stops at the first B with a different prefix.
//  2. Prune: drop the candidate if any of its (k-1)-subsets is not in frequent
//     (downward closure).
//
// Output keeps join order and holds no duplicates. Generate is pure: the same
// input always yields the same candidates in the same order.
//
// Complexity: O(F²·k) comparisons for the join (F = len(frequent)) plus
// O(k²·log F) per joined candidate for the prune lookups.
func Generate[T any](frequent []itemset.Itemset[T], cmp func(a, b T) int) []itemset.Itemset[T] {
	if len(frequent) == 0 {
		return nil
	}

	// Lookup index for the prune step.
	known := itemset.NewTable(cmp)
	for _, f := range frequent {
		known.Add(f, 1)
	}

	var (
		size       = len(frequent[0]) // k-1
		candidates []itemset.Itemset[T]
		a, b       itemset.Itemset[T]
		cand       itemset.Itemset[T]
	)
	for i := 0; i < len(frequent); i++ {
		a = frequent[i]
		for j := i + 1; j < len(frequent); j++ {
			b = frequent[j]

			// 1. Join on the shared (k-2)-prefix; singletons always join.
			if size > 1 && itemset.Compare(a[:size-1], b[:size-1], cmp) != 0 {
				break
			}
			cand = make(itemset.Itemset[T], size+1)
			copy(cand, a)
			cand[size] = b[size-1]

			// 2. Prune on any infrequent (k-1)-subset.
			if hasInfrequentSubset(cand, known) {
				continue
			}
			candidates = append(candidates, cand)
		}
	}

	return candidates
}

// hasInfrequentSubset reports whether some (len(cand)-1)-subset of cand is
// missing from known.
func hasInfrequentSubset[T any](cand itemset.Itemset[T], known *itemset.Table[T]) bool {
	for sub := range combin.Combinations(cand, len(cand)-1) {
		if !known.Has(sub) {
			return true
		}
	}

	return false
}

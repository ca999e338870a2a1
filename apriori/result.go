package apriori

import (
	"iter"
	"slices"

	"github.com/katalvlaran/apriori/itemset"
)

// LevelStats describes one level of the search.
type LevelStats struct {
	// Size is the itemset size k of the level.
	Size int

	// Candidates is the number of itemsets counted at this level
	// (distinct items for level 1, generated candidates otherwise).
	Candidates int

	// Frequent is the number of itemsets that reached the support threshold.
	Frequent int
}

// Result is the set of frequent itemsets found by Mine, each mapped to its
// exact support count. A Result is read-only: every accessor returns copies.
type Result[T any] struct {
	table   *itemset.Table[T]
	levels  []LevelStats
	support int
}

// newResult returns an empty Result ordered by cmp.
func newResult[T any](cmp func(a, b T) int, support int) *Result[T] {
	return &Result[T]{
		table:   itemset.NewTable(cmp),
		support: support,
	}
}

// fold merges one level's frequent itemsets into the result.
func (r *Result[T]) fold(stats LevelStats, frequent *itemset.Table[T]) {
	r.table.Merge(frequent)
	r.levels = append(r.levels, stats)
}

// Len returns the number of frequent itemsets.
func (r *Result[T]) Len() int {
	return r.table.Len()
}

// Support returns the threshold the result was mined with.
func (r *Result[T]) Support() int {
	return r.support
}

// Count returns the support count of set and whether set is frequent.
// set must be ascending under the mining comparator.
func (r *Result[T]) Count(set []T) (int, bool) {
	return r.table.Lookup(set)
}

// Has reports whether set is a frequent itemset.
func (r *Result[T]) Has(set []T) bool {
	return r.table.Has(set)
}

// All iterates over (itemset, count) pairs in ascending lexicographic order.
// Only content and counts are meaningful; the order is a convenience.
func (r *Result[T]) All() iter.Seq2[itemset.Itemset[T], int] {
	return func(yield func(itemset.Itemset[T], int) bool) {
		for s, c := range r.table.All() {
			if !yield(slices.Clone(s), c) {
				return
			}
		}
	}
}

// Itemsets returns all frequent itemsets in ascending lexicographic order.
func (r *Result[T]) Itemsets() []itemset.Itemset[T] {
	return r.table.Itemsets()
}

// Entries returns all (itemset, count) pairs in ascending lexicographic order.
func (r *Result[T]) Entries() []itemset.Entry[T] {
	return r.table.Entries()
}

// OfSize returns the frequent itemsets of exactly k items.
func (r *Result[T]) OfSize(k int) []itemset.Entry[T] {
	var out []itemset.Entry[T]
	for s, c := range r.table.All() {
		if len(s) == k {
			out = append(out, itemset.Entry[T]{Itemset: slices.Clone(s), Count: c})
		}
	}

	return out
}

// TopK returns the k most frequent itemsets, ties in ascending order.
// k <= 0 returns every itemset.
func (r *Result[T]) TopK(k int) []itemset.Entry[T] {
	return r.table.TopK(k)
}

// Levels returns per-level statistics in search order.
func (r *Result[T]) Levels() []LevelStats {
	return slices.Clone(r.levels)
}

// MaxSize returns the size of the largest frequent itemset, 0 if none.
func (r *Result[T]) MaxSize() int {
	for i := len(r.levels) - 1; i >= 0; i-- {
		if r.levels[i].Frequent > 0 {
			return r.levels[i].Size
		}
	}

	return 0
}

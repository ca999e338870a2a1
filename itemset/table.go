package itemset

import (
	"iter"
	"slices"

	"github.com/google/btree"
)

// degree of the backing B-tree; 16 keeps nodes within a few cache lines
// for short itemsets.
const degree = 16

// Entry pairs an itemset with its occurrence count.
type Entry[T any] struct {
	Itemset Itemset[T]
	Count   int
}

// Table is an ordered multiset of itemsets: Itemset → occurrence count.
// The zero value is not usable; construct with NewTable.
type Table[T any] struct {
	tree *btree.BTreeG[*Entry[T]]
	cmp  func(a, b T) int
}

// NewTable returns an empty Table ordered lexicographically by cmp.
// Panics if cmp is nil.
func NewTable[T any](cmp func(a, b T) int) *Table[T] {
	if cmp == nil {
		panic("itemset: NewTable(nil)")
	}
	less := func(a, b *Entry[T]) bool {
		return Compare(a.Itemset, b.Itemset, cmp) < 0
	}

	return &Table[T]{
		tree: btree.NewG(degree, less),
		cmp:  cmp,
	}
}

// Add records n more occurrences of set. The first Add of a set stores a copy,
// so the caller may reuse its buffer afterwards.
// Complexity: O(m·log N).
func (t *Table[T]) Add(set []T, n int) {
	// 1. Existing key: bump in place, ordering is unaffected.
	if e, ok := t.tree.Get(&Entry[T]{Itemset: set}); ok {
		e.Count += n
		return
	}

	// 2. New key: own the slice.
	t.tree.ReplaceOrInsert(&Entry[T]{Itemset: slices.Clone(Itemset[T](set)), Count: n})
}

// Lookup returns the count stored for set and whether set is present.
func (t *Table[T]) Lookup(set []T) (int, bool) {
	e, ok := t.tree.Get(&Entry[T]{Itemset: set})
	if !ok {
		return 0, false
	}

	return e.Count, true
}

// Count returns the count stored for set, 0 if absent.
func (t *Table[T]) Count(set []T) int {
	c, _ := t.Lookup(set)
	return c
}

// Has reports whether set is a key of the table.
func (t *Table[T]) Has(set []T) bool {
	return t.tree.Has(&Entry[T]{Itemset: set})
}

// Len returns the number of distinct itemsets.
func (t *Table[T]) Len() int {
	return t.tree.Len()
}

// All iterates over (itemset, count) pairs in ascending lexicographic order.
// Yielded itemsets are the table's own keys and must not be modified.
func (t *Table[T]) All() iter.Seq2[Itemset[T], int] {
	return func(yield func(Itemset[T], int) bool) {
		t.tree.Ascend(func(e *Entry[T]) bool {
			return yield(e.Itemset, e.Count)
		})
	}
}

// Itemsets returns the keys in ascending lexicographic order.
// The returned itemsets are copies.
func (t *Table[T]) Itemsets() []Itemset[T] {
	out := make([]Itemset[T], 0, t.tree.Len())
	for s := range t.All() {
		out = append(out, slices.Clone(s))
	}

	return out
}

// Entries returns copies of all entries in ascending lexicographic order.
func (t *Table[T]) Entries() []Entry[T] {
	out := make([]Entry[T], 0, t.tree.Len())
	for s, c := range t.All() {
		out = append(out, Entry[T]{Itemset: slices.Clone(s), Count: c})
	}

	return out
}

// Filter returns a new table holding only the entries with count >= minCount.
func (t *Table[T]) Filter(minCount int) *Table[T] {
	out := NewTable(t.cmp)
	t.tree.Ascend(func(e *Entry[T]) bool {
		if e.Count >= minCount {
			out.tree.ReplaceOrInsert(&Entry[T]{Itemset: e.Itemset, Count: e.Count})
		}
		return true
	})

	return out
}

// Merge adds every count of other into t (counts of shared keys are summed).
func (t *Table[T]) Merge(other *Table[T]) {
	if other == nil {
		return
	}
	other.tree.Ascend(func(e *Entry[T]) bool {
		t.Add(e.Itemset, e.Count)
		return true
	})
}

// TopK returns the k entries with the highest counts. Ties keep ascending
// lexicographic order, so the result is deterministic. k <= 0 or k > Len
// returns every entry.
// Complexity: O(N log N).
func (t *Table[T]) TopK(k int) []Entry[T] {
	entries := t.Entries()
	// stable: equal counts stay in ascending itemset order
	slices.SortStableFunc(entries, func(a, b Entry[T]) int {
		return b.Count - a.Count
	})
	if k > 0 && k < len(entries) {
		entries = entries[:k]
	}

	return entries
}

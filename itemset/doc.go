// Package itemset defines the Itemset value type and the ordered frequency
// table used by the apriori miner.
//
// What:
//
//   - Itemset[T]: a strictly ascending slice of items. Two itemsets are equal
//     iff they are equal element by element.
//   - Compare / IsAscending / IsSubset: ordering helpers parameterized by a
//     comparator cmp(a, b) that returns <0, 0, >0 (strict total order).
//   - Table[T]: a multiset of itemsets, i.e. an ordered map Itemset → count,
//     with an explicit Add(set, n) "add n occurrences" operation. It is backed by
//     a B-tree (github.com/google/btree) ordered lexicographically, so iteration
//     is always ascending and deterministic.
//
// Why a B-tree and not a map:
//
//	Slices are not valid Go map keys and items are only known to be ordered,
//	not hashable. Ascending iteration is also exactly the order candidate
//	generation needs for its join step.
//
// Complexity (m = itemset length, N = table size):
//
//   - Add / Count / Has: O(m·log N)
//   - All / Itemsets:    O(N)
//   - Filter / Merge:    O(N·m·log N)
//   - TopK:              O(N log N)
//
// Concurrency: a Table is not safe for concurrent mutation. Concurrent readers
// (Has, Count, All) are safe while no goroutine writes.
package itemset

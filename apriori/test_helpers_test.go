package apriori_test

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/katalvlaran/apriori/apriori"
	"github.com/katalvlaran/apriori/combin"
)

// sample is the four-transaction scenario used across tests.
var sample = [][]int{
	{1, 2, 3, 4},
	{1, 2, 4},
	{1, 2},
	{2, 3, 4},
}

// key renders an itemset as a map key.
func key[T any](s []T) string {
	return fmt.Sprint(s)
}

// bruteForce counts every non-empty subset of every transaction and keeps
// those reaching support. It is the reference the miner is checked against.
func bruteForce(transactions [][]int, support int) map[string]int {
	counts := make(map[string]int)
	for _, tx := range transactions {
		for m := 1; m <= len(tx); m++ {
			for c := range combin.Combinations(tx, m) {
				counts[key(c)]++
			}
		}
	}
	for k, c := range counts {
		if c < support {
			delete(counts, k)
		}
	}

	return counts
}

// resultMap flattens a Result into key → count.
func resultMap[T any](res *apriori.Result[T]) map[string]int {
	out := make(map[string]int, res.Len())
	for s, c := range res.All() {
		out[key(s)] = c
	}

	return out
}

// randomTransactions builds n ascending, duplicate-free transactions over the
// items 0..alphabet-1 with lengths in [0, maxLen].
func randomTransactions(seed int64, n, alphabet, maxLen int) [][]int {
	r := rand.New(rand.NewSource(seed))
	txs := make([][]int, n)
	for i := range txs {
		tx := r.Perm(alphabet)[:r.Intn(maxLen+1)]
		slices.Sort(tx)
		txs[i] = tx
	}

	return txs
}

package apriori_test

import (
	"cmp"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apriori/apriori"
	"github.com/katalvlaran/apriori/itemset"
)

func TestCountSingletons(t *testing.T) {
	counts, err := apriori.CountSingletons(sample, cmp.Compare[int])
	require.NoError(t, err)

	assert.Equal(t, []itemset.Entry[int]{
		{Itemset: itemset.Itemset[int]{1}, Count: 3},
		{Itemset: itemset.Itemset[int]{2}, Count: 4},
		{Itemset: itemset.Itemset[int]{3}, Count: 2},
		{Itemset: itemset.Itemset[int]{4}, Count: 3},
	}, counts.Entries())

	_, err = apriori.CountSingletons(sample, nil)
	assert.ErrorIs(t, err, apriori.ErrNilCompare)
}

// TestCountCandidates_Presence counts each candidate once per containing transaction.
func TestCountCandidates_Presence(t *testing.T) {
	candidates := sets{{1, 2}, {2, 3}, {1, 3}}
	counts, err := apriori.CountCandidates(sample, candidates, cmp.Compare[int])
	require.NoError(t, err)

	assert.Equal(t, 3, counts.Count([]int{1, 2}))
	assert.Equal(t, 2, counts.Count([]int{2, 3}))
	assert.Equal(t, 1, counts.Count([]int{1, 3}))
	assert.False(t, counts.Has([]int{2, 4}), "non-candidates are never counted")
}

func TestCountCandidates_ShortTransactionsSkipped(t *testing.T) {
	counts, err := apriori.CountCandidates([][]int{{1, 2}, {1}, {}}, sets{{1, 2, 3}}, cmp.Compare[int])
	require.NoError(t, err)
	assert.Zero(t, counts.Len())
}

func TestCountCandidates_Empty(t *testing.T) {
	counts, err := apriori.CountCandidates(sample, nil, cmp.Compare[int])
	require.NoError(t, err)
	assert.Zero(t, counts.Len())
}

// TestCountCandidates_DuplicateCandidates ensures a repeated candidate is still
// counted once per transaction.
func TestCountCandidates_DuplicateCandidates(t *testing.T) {
	counts, err := apriori.CountCandidates(sample, sets{{2, 4}, {2, 4}}, cmp.Compare[int])
	require.NoError(t, err)
	assert.Equal(t, 3, counts.Count([]int{2, 4}))
}

// TestCountCandidates_Strategies mixes a long transaction (merge-walk path,
// C(20,3) > #candidates) with short ones (combination lookup path).
func TestCountCandidates_Strategies(t *testing.T) {
	long := make([]int, 20)
	for i := range long {
		long[i] = i
	}
	txs := [][]int{long, {0, 1, 2}, {1, 2, 19}, {0, 19}}
	candidates := sets{{0, 1, 2}, {1, 2, 19}, {5, 6, 30}}

	counts, err := apriori.CountCandidates(txs, candidates, cmp.Compare[int])
	require.NoError(t, err)
	assert.Equal(t, 2, counts.Count([]int{0, 1, 2}))
	assert.Equal(t, 2, counts.Count([]int{1, 2, 19}))
	assert.False(t, counts.Has([]int{5, 6, 30}))
}

func TestCountCandidates_Workers(t *testing.T) {
	txs := randomTransactions(9, 500, 10, 6)
	candidates := apriori.Generate(sets{{0}, {1}, {2}, {3}, {4}, {5}}, cmp.Compare[int])

	seq, err := apriori.CountCandidates(txs, candidates, cmp.Compare[int])
	require.NoError(t, err)
	par, err := apriori.CountCandidates(txs, candidates, cmp.Compare[int], apriori.WithWorkers(6))
	require.NoError(t, err)
	assert.Equal(t, seq.Entries(), par.Entries())
}

func TestCountCandidates_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := apriori.CountCandidates(sample, sets{{1, 2}}, cmp.Compare[int], apriori.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFrequent(t *testing.T) {
	counts, err := apriori.CountSingletons(sample, cmp.Compare[int])
	require.NoError(t, err)

	f := apriori.Frequent(counts, 3)
	assert.Equal(t, sets{{1}, {2}, {4}}, f.Itemsets())
}

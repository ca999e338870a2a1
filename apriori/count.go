package apriori

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/apriori/combin"
	"github.com/katalvlaran/apriori/itemset"
)

// ctxCheckEvery is how many transactions a scanner processes between
// context checks.
const ctxCheckEvery = 256

// countFunc tallies the itemsets of one transaction into a shard-local table.
type countFunc[T any] func(tx []T, into *itemset.Table[T])

// CountSingletons tallies every item of every transaction as a singleton
// itemset. The returned table holds all items, frequent or not; use Frequent
// to apply a threshold.
//
// Only WithContext and WithWorkers are honored.
// Complexity: O(Σ|t| · log I) for I distinct items.
func CountSingletons[T any](transactions [][]T, cmp func(a, b T) int, opts ...Option) (*itemset.Table[T], error) {
	o := resolve(opts)
	if cmp == nil {
		return nil, ErrNilCompare
	}

	return countSingletons(&o, transactions, cmp)
}

// CountCandidates counts, for each candidate k-itemset, the number of
// transactions containing it. A candidate is counted at most once per
// transaction; transactions shorter than k contribute nothing. Candidates
// never seen are absent from the returned table.
//
// All candidates must have the same size k ≥ 1, and each transaction must be
// ascending under cmp. An empty candidate list yields an empty table.
//
// Only WithContext and WithWorkers are honored.
func CountCandidates[T any](transactions [][]T, candidates []itemset.Itemset[T], cmp func(a, b T) int, opts ...Option) (*itemset.Table[T], error) {
	o := resolve(opts)
	if cmp == nil {
		return nil, ErrNilCompare
	}

	return countCandidates(&o, transactions, candidates, cmp)
}

// Frequent returns the entries of counts whose count is at least support.
func Frequent[T any](counts *itemset.Table[T], support int) *itemset.Table[T] {
	return counts.Filter(support)
}

// countSingletons is the level-1 counter.
func countSingletons[T any](o *Options, transactions [][]T, cmp func(a, b T) int) (*itemset.Table[T], error) {
	return shardCount(o, transactions, cmp, func(tx []T, into *itemset.Table[T]) {
		for i := range tx {
			into.Add(tx[i:i+1], 1)
		}
	})
}

// countCandidates is the level-k counter.
//
// Steps:
//  1. Index the candidates in an ordered table (deduplicated, read-only
//     while shards run).
//  2. Per transaction of length n ≥ k pick the cheaper strategy:
//     a. C(n,k) ≤ |candidates|: enumerate the k-combinations of the transaction
//     and look each one up in the index.
//     b. otherwise: merge-walk every candidate against the transaction.
//     Both visit each candidate at most once per transaction.
func countCandidates[T any](o *Options, transactions [][]T, candidates []itemset.Itemset[T], cmp func(a, b T) int) (*itemset.Table[T], error) {
	if len(candidates) == 0 {
		return itemset.NewTable(cmp), nil
	}

	// 1. Candidate index.
	k := len(candidates[0])
	index := itemset.NewTable(cmp)
	for _, c := range candidates {
		index.Add(c, 0)
	}
	size := index.Len()

	// 2. Per-transaction scan.
	return shardCount(o, transactions, cmp, func(tx []T, into *itemset.Table[T]) {
		if len(tx) < k {
			return
		}

		// 2a. Few combinations: look them up.
		if combin.Count(len(tx), k) <= size {
			for combo := range combin.Combinations(tx, k) {
				if index.Has(combo) {
					into.Add(combo, 1)
				}
			}
			return
		}

		// 2b. Few candidates: test each one.
		for cand := range index.All() {
			if itemset.IsSubset(cand, tx, cmp) {
				into.Add(cand, 1)
			}
		}
	})
}

// shardCount runs fn over every transaction and returns the summed table.
// With more than one worker the transactions are split into contiguous
// shards, each counted into a private table by its own goroutine; the shard
// tables are merged afterwards, so no count is shared between goroutines.
func shardCount[T any](o *Options, transactions [][]T, cmp func(a, b T) int, fn countFunc[T]) (*itemset.Table[T], error) {
	workers := min(o.Workers, len(transactions))

	// Sequential path.
	if workers <= 1 {
		into := itemset.NewTable(cmp)
		if err := scan(o.Ctx, transactions, into, fn); err != nil {
			return nil, err
		}
		return into, nil
	}

	// Sharded path.
	parts := make([]*itemset.Table[T], workers)
	chunk := (len(transactions) + workers - 1) / workers
	g, ctx := errgroup.WithContext(o.Ctx)
	for w := 0; w < workers; w++ {
		lo := min(w*chunk, len(transactions))
		hi := min(lo+chunk, len(transactions))
		part := itemset.NewTable(cmp)
		parts[w] = part
		g.Go(func() error {
			return scan(ctx, transactions[lo:hi], part, fn)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := parts[0]
	for _, p := range parts[1:] {
		merged.Merge(p)
	}

	return merged, nil
}

// scan feeds transactions to fn, checking ctx every ctxCheckEvery items.
func scan[T any](ctx context.Context, transactions [][]T, into *itemset.Table[T], fn countFunc[T]) error {
	for i, tx := range transactions {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		fn(tx, into)
	}

	return nil
}

// Package apriori mines frequent itemsets with the classical Apriori
// level-wise search (Agrawal & Srikant, "Fast Algorithms for Mining
// Association Rules").
//
// 🚀 What is Apriori?
//
//	Given transactions (sets of items) and a support threshold s, find every
//	itemset contained in at least s transactions. The search is level-wise:
//	frequent 1-itemsets seed candidate 2-itemsets, frequent 2-itemsets seed
//	candidate 3-itemsets, and so on. A candidate is pruned without counting
//	as soon as one of its subsets is known to be infrequent (downward closure).
//	Typical uses:
//	  • Market-basket analysis
//	  • Co-occurrence of tags, features, or log events
//	  • Seeding association-rule and pattern-mining pipelines
//
// ✨ Building blocks:
//
//   - Support Counter: CountSingletons (level 1) and CountCandidates
//     (level k ≥ 2, presence counting per transaction), Frequent filter.
//   - Candidate Generator: Generate = join step + prune step.
//   - Mining Driver: Mine / MineFunc run the level loop and return a Result.
//
// Items are generic. Mine accepts any cmp.Ordered item type; MineFunc accepts any
// type together with a comparator cmp(a, b) describing a strict total order.
//
// ⚙️ Usage:
//
//	txs := [][]string{
//	  {"bread", "milk"},
//	  {"beer", "bread", "diapers", "eggs"},
//	  {"beer", "cola", "diapers", "milk"},
//	}
//	res, err := apriori.Mine(txs, 2, apriori.WithWorkers(4))
//	if err != nil {
//	  // handle ErrInvalidSupport, ErrUnsortedTransaction, ...
//	}
//	for set, count := range res.All() {
//	  fmt.Println(set, count)
//	}
//
// Preconditions (checked unless WithoutValidation is given):
//
//   - support ≥ 1
//   - items within each transaction are unique and ascending under the comparator
//
// Options:
//
//   - WithContext(ctx)     cancellation between transaction batches and levels
//   - WithWorkers(n)       shard support counting across n goroutines
//   - WithMaxSize(n)       stop after itemsets of size n
//   - WithLogger(l)        logr.Logger for per-level progress (V(1))
//   - WithoutValidation()  skip the precondition scan for trusted input
//
// Complexity (T = #transactions, L = max transaction length, Cₖ = #candidates):
//
//   - Level k counting: O(T · min(C(L,k)·k·log Cₖ, Cₖ·L))
//   - Generate:         O(F² · k + Cₖ · k² · log F) for F frequent (k-1)-itemsets
//   - Levels:           at most L
//
// Errors:
//
//   - ErrInvalidSupport       support < 1
//   - ErrNilCompare           MineFunc called with a nil comparator
//   - ErrUnsortedTransaction  items of a transaction are out of order
//   - ErrDuplicateItem        a transaction repeats an item
//   - context errors          mining canceled via WithContext
package apriori

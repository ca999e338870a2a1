package apriori

import (
	"cmp"

	"github.com/pkg/errors"
)

// Mine returns every itemset contained in at least support transactions,
// mapped to its exact count. Items are ordered by cmp.Compare.
//
// See MineFunc for the algorithm, options and errors.
func Mine[T cmp.Ordered](transactions [][]T, support int, opts ...Option) (*Result[T], error) {
	return MineFunc(transactions, support, cmp.Compare[T], opts...)
}

// MineFunc is Mine for any item type ordered by compare, which must describe a
// strict total order (negative, zero, positive for less, equal, greater).
//
// Steps:
//  1. Apply options and validate the preconditions.
//  2. Level 1: count every item, keep those with count ≥ support.
//  3. Level k ≥ 2: Generate candidates from the frequent (k-1)-itemsets in
//     ascending order; stop when there are none. Count them, keep the frequent
//     ones, fold them into the result.
//  4. Stop early when a level has no frequent itemsets (the next Generate would
//     be empty anyway), when k exceeds the longest transaction, or when
//     WithMaxSize is reached.
//
// The search therefore runs at most max(|t|) levels.
//
// Errors:
//   - ErrInvalidSupport, ErrNilCompare
//   - ErrUnsortedTransaction, ErrDuplicateItem (unless WithoutValidation)
//   - context.Canceled / context.DeadlineExceeded, wrapped with the level
//
// An empty transaction list, or no frequent item, yields an empty Result.
func MineFunc[T any](transactions [][]T, support int, compare func(a, b T) int, opts ...Option) (*Result[T], error) {
	// 1. Options and preconditions.
	o := resolve(opts)
	if err := validateInput(transactions, support, compare, o.Validate); err != nil {
		return nil, err
	}
	log := o.Logger.WithName("apriori")
	log.V(1).Info("mining started",
		"transactions", len(transactions), "support", support,
		"workers", o.Workers, "maxSize", o.MaxSize)

	res := newResult(compare, support)
	longest := 0
	for _, tx := range transactions {
		longest = max(longest, len(tx))
	}

	// 2. Level 1.
	counts, err := countSingletons(&o, transactions, compare)
	if err != nil {
		return nil, errors.Wrap(err, "apriori: counting level 1")
	}
	frequent := Frequent(counts, support)
	res.fold(LevelStats{Size: 1, Candidates: counts.Len(), Frequent: frequent.Len()}, frequent)
	log.V(1).Info("level mined", "size", 1, "candidates", counts.Len(), "frequent", frequent.Len())

	// 3. Level k ≥ 2.
	for k := 2; frequent.Len() > 0 && k <= longest; k++ {
		// 4. Size cap.
		if o.MaxSize > 0 && k > o.MaxSize {
			break
		}
		if err = o.Ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "apriori: before level %d", k)
		}

		candidates := Generate(frequent.Itemsets(), compare)
		if len(candidates) == 0 {
			log.V(1).Info("no candidates left", "size", k)
			break
		}

		counts, err = countCandidates(&o, transactions, candidates, compare)
		if err != nil {
			return nil, errors.Wrapf(err, "apriori: counting level %d", k)
		}
		frequent = Frequent(counts, support)
		res.fold(LevelStats{Size: k, Candidates: len(candidates), Frequent: frequent.Len()}, frequent)
		log.V(1).Info("level mined", "size", k, "candidates", len(candidates), "frequent", frequent.Len())
	}

	log.V(1).Info("mining finished", "itemsets", res.Len(), "levels", len(res.levels))

	return res, nil
}

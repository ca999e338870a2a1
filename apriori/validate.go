package apriori

import (
	"github.com/pkg/errors"
)

// validateInput checks the mining preconditions.
//
// Stages:
//  1. support ≥ 1 and a non-nil comparator (always, O(1)).
//  2. Every transaction strictly ascending (only when full is true).
//
// The first violation aborts with a sentinel wrapped with its location.
// Complexity: O(Σ|t|) comparator calls in stage 2.
func validateInput[T any](transactions [][]T, support int, cmp func(a, b T) int, full bool) error {
	// Stage 1: cheap scalar checks.
	if support < 1 {
		return errors.Wrapf(ErrInvalidSupport, "got %d", support)
	}
	if cmp == nil {
		return ErrNilCompare
	}
	if !full {
		return nil
	}

	// Stage 2: ordering of every transaction.
	var c int
	for i, tx := range transactions {
		for j := 1; j < len(tx); j++ {
			c = cmp(tx[j-1], tx[j])
			if c == 0 {
				return errors.Wrapf(ErrDuplicateItem, "transaction %d, position %d", i, j)
			}
			if c > 0 {
				return errors.Wrapf(ErrUnsortedTransaction, "transaction %d, position %d", i, j)
			}
		}
	}

	return nil
}

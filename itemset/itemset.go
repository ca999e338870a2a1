package itemset

import (
	"fmt"
	"strings"
)

// Itemset is an ascending sequence of distinct items.
type Itemset[T any] []T

// String renders the itemset as {a, b, c}.
func (s Itemset[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, it := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, it)
	}
	sb.WriteByte('}')

	return sb.String()
}

// Compare lexicographically compares a and b under cmp.
// Returns -1 if a < b, 0 if equal, +1 if a > b; a proper prefix sorts first.
// Time Complexity: O(min(len(a), len(b))).
func Compare[T any](a, b []T, cmp func(x, y T) int) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := cmp(a[i], b[i]); c != 0 {
			if c < 0 {
				return -1
			}
			return 1
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}

// IsAscending reports whether s is strictly increasing under cmp,
// i.e. sorted and free of duplicates.
func IsAscending[T any](s []T, cmp func(x, y T) int) bool {
	for i := 1; i < len(s); i++ {
		if cmp(s[i-1], s[i]) >= 0 {
			return false
		}
	}

	return true
}

// IsSubset reports whether every item of sub occurs in super.
// Both slices must be strictly ascending under cmp; the test is a single
// merge walk in O(len(sub) + len(super)).
func IsSubset[T any](sub, super []T, cmp func(x, y T) int) bool {
	if len(sub) > len(super) {
		return false
	}

	i, j := 0, 0
	for i < len(sub) && j < len(super) {
		c := cmp(sub[i], super[j])
		switch {
		case c == 0:
			i++
			j++
		case c > 0:
			j++
		default:
			// sub[i] is smaller than every remaining super item.
			return false
		}
		if len(sub)-i > len(super)-j {
			return false
		}
	}

	return i == len(sub)
}

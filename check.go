package sain

import (
	"fmt"
	"sort"
)

// OrderViolation is the typed panic value raised by checkOrder when two
// adjacent entries of a claimed suffix order are not correctly ordered.
// gt_sain_checkorder's C counterpart calls exit(GT_EXIT_PROGRAMMING_ERROR)
// on the same condition; cmd/saintool does not recover it, so the
// unrecovered panic ends the command with a non-zero exit status.
type OrderViolation struct {
	Label string
	Index int
	A, B  int
}

func (e *OrderViolation) Error() string {
	return fmt.Sprintf("sain: order violation (%s) at index %d: suffix(%d) >= suffix(%d)", e.Label, e.Index, e.A, e.B)
}

// compareSuffixes returns -1, 0 or 1 comparing suffix(a) to suffix(b)
// over seq, treating the position past the end of the sequence as an
// implicit terminator smaller than every real symbol.
func compareSuffixes(seq SeqView, a, b int) int {
	n := seq.Len()
	for a < n && b < n {
		ca, cb := seq.Get(a), seq.Get(b)
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
		a++
		b++
	}
	switch {
	case a == b:
		return 0
	case a == n:
		return -1
	default:
		return 1
	}
}

// checkOrder is the lightweight order-check oracle (§6's
// suftab_lightweight_check, invoked internally between recursion levels
// when WithIntermediateCheck is set): it panics with an *OrderViolation
// on the first adjacent pair that is not strictly increasing.
func checkOrder(seq SeqView, order []int, label string) {
	for i := 0; i+1 < len(order); i++ {
		if compareSuffixes(seq, order[i], order[i+1]) >= 0 {
			panic(&OrderViolation{Label: label, Index: i, A: order[i], B: order[i+1]})
		}
	}
}

// naiveSortSuffixes sorts every suffix of seq by direct comparison in
// O(n^2 log n), for use as a reference oracle in property tests.
func naiveSortSuffixes(seq []byte) []int {
	n := len(seq)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		for a < n && b < n {
			if seq[a] != seq[b] {
				return seq[a] < seq[b]
			}
			a++
			b++
		}
		return a == n && b != n
	})
	return order
}

// SPDX-License-Identifier: MIT
// Package: chromatroid/matroid
//
// impl_nested.go — nested matroids defined by a flag of subsets with
// rank bounds.
//
// Contract:
//   • Nested(n, rank, chain, ranks) takes a strictly increasing chain
//     X1 ⊂ X2 ⊂ ... ⊂ Xk = {1..n} and strictly increasing ranks
//     r1 < r2 < ... < rk = rank; bases are the rank-subsets B with
//     |B ∩ Xi| ≤ ri at every level.
//   • Structural validation covers: chain shape and strict inclusion,
//     element bounds, rank bounds and monotonicity, and corank
//     compatibility (|Xi| − ri strictly increasing through mid levels,
//     non-strict at the last level, and |X1| > r1 whenever k > 1).
//     All violations report ErrMalformed.
//
// Complexity:
//   • O(C(n,rank)·rank·k) scan over candidate bases.

package matroid

import (
	"fmt"
	"sort"
)

// Nested returns the nested matroid on {1..n} carved out of U(n, rank)
// by the rank bounds of a flag.
//
// Errors: ErrMalformed for every structural violation listed above;
// ErrNoBases if the bounds admit no basis at all.
func Nested(n, rank int, chain [][]int, ranks []int) (*Matroid, error) {
	levels, err := validateChain(n, rank, chain, ranks)
	if err != nil {
		return nil, fmt.Errorf("Nested: %w", err)
	}

	bases := make([][]int, 0)
	for _, b := range allSubsets(n, rank) {
		if withinBounds(b, levels, ranks) {
			bases = append(bases, b)
		}
	}
	out, err := New(ascendingRun(1, n), bases, WithValidator(AcceptAllValidator))
	if err != nil {
		return nil, fmt.Errorf("Nested: %w", err)
	}

	return out, nil
}

// validateChain normalizes the flag (levels copied and sorted) and
// enforces every structural rule. It returns the normalized levels.
func validateChain(n, rank int, chain [][]int, ranks []int) ([][]int, error) {
	if n < 0 || rank < 0 || rank > n {
		return nil, fmt.Errorf("size %d rank %d: %w", n, rank, ErrMalformed)
	}
	k := len(chain)
	if k == 0 || len(chain[0]) == 0 {
		return nil, fmt.Errorf("chain needs a non-empty first level: %w", ErrMalformed)
	}
	if len(ranks) != k {
		return nil, fmt.Errorf("%d levels but %d ranks: %w", k, len(ranks), ErrMalformed)
	}
	if ranks[k-1] != rank {
		return nil, fmt.Errorf("last rank %d is not the total rank %d: %w", ranks[k-1], rank, ErrMalformed)
	}

	levels := make([][]int, k)
	for i, level := range chain {
		nl := append([]int(nil), level...)
		sort.Ints(nl)
		for j, e := range nl {
			if e < 1 || e > n {
				return nil, fmt.Errorf("level %d element %d outside {1..%d}: %w", i, e, n, ErrMalformed)
			}
			if j > 0 && nl[j-1] == e {
				return nil, fmt.Errorf("level %d element %d repeated: %w", i, e, ErrMalformed)
			}
		}
		levels[i] = nl
	}
	if len(levels[k-1]) != n {
		return nil, fmt.Errorf("last level must be the full ground set: %w", ErrMalformed)
	}
	for i := 0; i+1 < k; i++ {
		if !subsetofSorted(levels[i], levels[i+1]) {
			return nil, fmt.Errorf("level %d not contained in level %d: %w", i, i+1, ErrMalformed)
		}
		if len(levels[i]) == len(levels[i+1]) {
			return nil, fmt.Errorf("inclusion of level %d is not strict: %w", i, ErrMalformed)
		}
	}
	for i := 0; i+1 < k; i++ {
		if ranks[i] < 0 || ranks[i] > n || ranks[i+1] <= ranks[i] {
			return nil, fmt.Errorf("rank chain not strictly increasing at level %d: %w", i, ErrMalformed)
		}
	}

	// Corank compatibility: |Xi| − ri must grow through the flag,
	// strictly up to the next-to-last step and non-strictly at the last.
	if k > 1 && len(levels[0]) <= ranks[0] {
		return nil, fmt.Errorf("first level has no corank: %w", ErrMalformed)
	}
	for i := 0; i+2 < k; i++ {
		if len(levels[i])-ranks[i] >= len(levels[i+1])-ranks[i+1] {
			return nil, fmt.Errorf("corank not increasing at level %d: %w", i, ErrMalformed)
		}
	}
	if k > 1 && len(levels[k-2])-ranks[k-2] > len(levels[k-1])-ranks[k-1] {
		return nil, fmt.Errorf("corank drops at the last level: %w", ErrMalformed)
	}

	return levels, nil
}

// withinBounds reports |b ∩ level| ≤ rank bound at every level, all
// slices ascending.
func withinBounds(b []int, levels [][]int, ranks []int) bool {
	for i, level := range levels {
		if intersectionSize(b, level) > ranks[i] {
			return false
		}
	}

	return true
}

// intersectionSize counts common elements of two ascending slices.
func intersectionSize(a, b []int) int {
	count, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			count++
			i++
			j++
		}
	}

	return count
}

// SPDX-License-Identifier: MIT
// Package: chromatroid/matroid
//
// impl_uniform.go — the uniform matroid U(n, r).
//
// Contract:
//   • 0 ≤ r ≤ n (else ErrMalformed).
//   • Ground set {1..n}; bases are exactly the r-subsets, enumerated in
//     ascending lexicographic order via gonum combin.
//   • The family satisfies exchange by construction, so the quadratic
//     axiom check is skipped (AcceptAllValidator).
//
// Complexity:
//   • Time and space: O(C(n,r)·r) for the basis family.

package matroid

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"
)

// Uniform returns U(n, r): the matroid on {1..n} whose bases are all
// subsets of size r. U(n, 0) has the single empty basis; U(n, n) has the
// single full basis.
//
// Errors: ErrMalformed if n or r is negative or r exceeds n.
func Uniform(n, r int) (*Matroid, error) {
	if n < 0 || r < 0 || r > n {
		return nil, fmt.Errorf("Uniform(%d,%d): %w", n, r, ErrMalformed)
	}

	return New(ascendingRun(1, n), allSubsets(n, r), WithValidator(AcceptAllValidator))
}

// allSubsets lists every r-subset of {1..n} in ascending lexicographic
// order. r = 0 yields the single empty subset, r > n none at all.
func allSubsets(n, r int) [][]int {
	if r == 0 {
		return [][]int{{}}
	}
	if r > n {
		return nil
	}
	combos := combin.Combinations(n, r)
	out := make([][]int, len(combos))
	for i, combo := range combos {
		subset := make([]int, r)
		for j, v := range combo {
			// combin is 0-based; ground elements start at 1.
			subset[j] = v + 1
		}
		out[i] = subset
	}

	return out
}

// ascendingRun returns the slice [from, from+1, ..., from+count-1].
func ascendingRun(from, count int) []int {
	out := make([]int, count)
	for i := range out {
		out[i] = from + i
	}

	return out
}

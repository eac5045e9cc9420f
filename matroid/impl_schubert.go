// SPDX-License-Identifier: MIT
// Package: chromatroid/matroid
//
// impl_schubert.go — Schubert matroids and their catalogs.
//
// Contract:
//   • Schubert(n, A) with A = {a1 < ... < ar} ⊆ {1..n} has as bases the
//     r-subsets B = {b1 < ... < br} with bi ≤ ai componentwise.
//   • A itself is always a basis, so the family is never empty.
//   • AllSchubert(n) enumerates every defining subset by size and then
//     lexicographically; LooplessSchubert(n) keeps the defining subsets
//     containing n, which are exactly those whose matroid has no loop.
//
// Complexity:
//   • Schubert: O(C(n,r)·r) scan over candidate bases.
//   • AllSchubert: Σ_r C(n,r) = 2^n matroids.

package matroid

import (
	"fmt"
	"sort"
)

// Schubert returns the Schubert matroid on {1..n} defined by the subset
// A: bases are the |A|-subsets dominated by A elementwise after sorting.
//
// Errors: ErrMalformed if an element of A lies outside {1..n} or repeats.
func Schubert(n int, defining []int) (*Matroid, error) {
	if n < 0 {
		return nil, fmt.Errorf("Schubert: size %d: %w", n, ErrMalformed)
	}
	a := append([]int(nil), defining...)
	sort.Ints(a)
	for i, e := range a {
		if e < 1 || e > n {
			return nil, fmt.Errorf("Schubert: defining element %d outside {1..%d}: %w", e, n, ErrMalformed)
		}
		if i > 0 && a[i-1] == e {
			return nil, fmt.Errorf("Schubert: defining element %d repeated: %w", e, ErrMalformed)
		}
	}

	bases := make([][]int, 0)
	for _, b := range allSubsets(n, len(a)) {
		if dominatedBy(b, a) {
			bases = append(bases, b)
		}
	}

	return New(ascendingRun(1, n), bases, WithValidator(AcceptAllValidator))
}

// AllSchubert returns the Schubert matroid of every subset of {1..n},
// ordered by defining-set size and then lexicographically.
//
// Errors: ErrMalformed for negative n.
func AllSchubert(n int) ([]*Matroid, error) {
	if n < 0 {
		return nil, fmt.Errorf("AllSchubert: size %d: %w", n, ErrMalformed)
	}
	out := make([]*Matroid, 0, 1<<uint(n))
	for r := 0; r <= n; r++ {
		for _, a := range allSubsets(n, r) {
			m, err := Schubert(n, a)
			if err != nil {
				return nil, fmt.Errorf("AllSchubert: %w", err)
			}
			out = append(out, m)
		}
	}

	return out, nil
}

// LooplessSchubert returns the Schubert matroids of the subsets of
// {1..n} that contain n; every ground element of such a matroid lies in
// some basis.
//
// Errors: ErrMalformed for negative n.
func LooplessSchubert(n int) ([]*Matroid, error) {
	if n < 0 {
		return nil, fmt.Errorf("LooplessSchubert: size %d: %w", n, ErrMalformed)
	}
	out := make([]*Matroid, 0)
	for r := 0; r <= n-1; r++ {
		for _, prefix := range allSubsets(n-1, r) {
			m, err := Schubert(n, append(prefix, n))
			if err != nil {
				return nil, fmt.Errorf("LooplessSchubert: %w", err)
			}
			out = append(out, m)
		}
	}

	return out, nil
}

// dominatedBy reports bi ≤ ai for all positions of two ascending slices
// of equal length.
func dominatedBy(b, a []int) bool {
	for i, e := range b {
		if e > a[i] {
			return false
		}
	}

	return true
}

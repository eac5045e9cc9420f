// SPDX-License-Identifier: MIT
// Package: chromatroid/chromatic
//
// minmax.go — set compositions derived from permutations and subsets,
// the column spaces of the incidence experiments.
//
// Contract:
//   • MinMaxSetComposition splits a permutation of {1..d} at its
//     descents: blocks are the maximal ascending runs.
//   • SplitSetCompositions lists all 2^(d-1) consecutive-block
//     splittings of a permutation, each with its block count.
//   • SubsetSetComposition realizes a subset S ⊆ {1..d} as the
//     composition t_j | ... | t_2 | {t_1, s_k} | s_(k-1) | ... | s_1
//     where t_* is the descending complement and s_* the descending
//     subset; with an empty complement, descending singletons of S.
//   • ValidSubsets lists the full set plus every proper non-empty
//     subset whose maximum exceeds its complement's minimum, ordered by
//     size and then lexicographically.
//
// Determinism:
//   • Permutation catalogs are sorted lexicographically; splittings
//     follow ascending break masks.

package chromatic

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/chromatroid/setcomposition"
	"gonum.org/v1/gonum/stat/combin"
)

// Split is one consecutive-block splitting of a permutation together
// with its block count (the sign exponent of the alternating sum).
type Split struct {
	SC     setcomposition.SetComposition
	Blocks int
}

// MinMaxSetComposition builds the descent splitting of a permutation of
// {1..d}: ascending runs become blocks, in order.
//
// Errors: ErrMalformed unless perm is a permutation of {1..len(perm)}.
func MinMaxSetComposition(perm []int) (setcomposition.SetComposition, error) {
	if err := checkPermutation(perm); err != nil {
		return setcomposition.SetComposition{}, fmt.Errorf("MinMaxSetComposition: %w", err)
	}
	if len(perm) == 0 {
		return setcomposition.SetComposition{}, nil
	}

	blocks := [][]int{{perm[0]}}
	for i := 1; i < len(perm); i++ {
		if perm[i] > perm[i-1] {
			last := len(blocks) - 1
			blocks[last] = append(blocks[last], perm[i])

			continue
		}
		blocks = append(blocks, []int{perm[i]})
	}

	return setcomposition.New(blocks...)
}

// AllMinMaxSetCompositions builds the descent splitting of every
// permutation of {1..d}, permutations taken in lexicographic order.
//
// Errors: ErrMalformed for negative d.
func AllMinMaxSetCompositions(d int) ([]setcomposition.SetComposition, error) {
	perms, err := allPermutations(d)
	if err != nil {
		return nil, fmt.Errorf("AllMinMaxSetCompositions: %w", err)
	}
	out := make([]setcomposition.SetComposition, len(perms))
	for i, perm := range perms {
		sc, err := MinMaxSetComposition(perm)
		if err != nil {
			return nil, fmt.Errorf("AllMinMaxSetCompositions: %w", err)
		}
		out[i] = sc
	}

	return out, nil
}

// SplitSetCompositions lists every splitting of the permutation into
// consecutive blocks: one per subset of the d-1 gaps, in ascending
// break-mask order. The unsplit permutation comes first.
//
// Errors: ErrMalformed unless perm is a permutation of {1..len(perm)}.
func SplitSetCompositions(perm []int) ([]Split, error) {
	if err := checkPermutation(perm); err != nil {
		return nil, fmt.Errorf("SplitSetCompositions: %w", err)
	}
	d := len(perm)
	if d == 0 {
		return []Split{}, nil
	}

	out := make([]Split, 0, 1<<uint(d-1))
	for mask := 0; mask < 1<<uint(d-1); mask++ {
		blocks := [][]int{{perm[0]}}
		for i := 1; i < d; i++ {
			if mask&(1<<uint(i-1)) != 0 {
				blocks = append(blocks, []int{perm[i]})

				continue
			}
			last := len(blocks) - 1
			blocks[last] = append(blocks[last], perm[i])
		}
		sc, err := setcomposition.New(blocks...)
		if err != nil {
			return nil, fmt.Errorf("SplitSetCompositions: %w", err)
		}
		out = append(out, Split{SC: sc, Blocks: len(blocks)})
	}

	return out, nil
}

// SubsetSetComposition realizes a non-empty subset of {1..d} as the set
// composition of the lower-bound construction: the descending
// complement as singletons, its minimum fused with the subset's
// maximum, then the remaining subset descending as singletons.
//
// Errors: ErrMalformed for an empty subset, duplicates, or elements
// outside {1..d}.
func SubsetSetComposition(subset []int, d int) (setcomposition.SetComposition, error) {
	if len(subset) == 0 {
		return setcomposition.SetComposition{}, fmt.Errorf("SubsetSetComposition: empty subset: %w", ErrMalformed)
	}
	s := append([]int(nil), subset...)
	sort.Ints(s)
	for i, e := range s {
		if e < 1 || e > d {
			return setcomposition.SetComposition{}, fmt.Errorf("SubsetSetComposition: element %d outside {1..%d}: %w", e, d, ErrMalformed)
		}
		if i > 0 && s[i-1] == e {
			return setcomposition.SetComposition{}, fmt.Errorf("SubsetSetComposition: element %d repeated: %w", e, ErrMalformed)
		}
	}

	complement := make([]int, 0, d-len(s))
	for e := d; e >= 1; e-- {
		if !containsAscending(s, e) {
			complement = append(complement, e)
		}
	}

	blocks := make([][]int, 0, d)
	if len(complement) == 0 {
		// The full set: descending singletons.
		for i := len(s) - 1; i >= 0; i-- {
			blocks = append(blocks, []int{s[i]})
		}

		return setcomposition.New(blocks...)
	}
	for _, e := range complement[:len(complement)-1] {
		blocks = append(blocks, []int{e})
	}
	blocks = append(blocks, []int{complement[len(complement)-1], s[len(s)-1]})
	for i := len(s) - 2; i >= 0; i-- {
		blocks = append(blocks, []int{s[i]})
	}

	return setcomposition.New(blocks...)
}

// ValidSubsets lists the subsets of {1..d} feeding the lower-bound
// experiment: every proper non-empty subset whose maximum exceeds the
// minimum of its complement, plus the full set; ordered by size and
// then lexicographically (the full set last).
//
// Errors: ErrMalformed for d < 1.
func ValidSubsets(d int) ([][]int, error) {
	if d < 1 {
		return nil, fmt.Errorf("ValidSubsets: size %d: %w", d, ErrMalformed)
	}
	out := make([][]int, 0)
	for r := 1; r < d; r++ {
		for _, combo := range combin.Combinations(d, r) {
			subset := make([]int, r)
			for i, v := range combo {
				subset[i] = v + 1
			}
			if subset[r-1] > complementMin(subset, d) {
				out = append(out, subset)
			}
		}
	}
	out = append(out, ascendingRange(d))

	return out, nil
}

// allPermutations lists every permutation of {1..d} in lexicographic
// order. d = 0 yields the single empty permutation.
func allPermutations(d int) ([][]int, error) {
	if d < 0 {
		return nil, fmt.Errorf("size %d: %w", d, ErrMalformed)
	}
	if d == 0 {
		return [][]int{{}}, nil
	}
	raw := combin.Permutations(d, d)
	perms := make([][]int, len(raw))
	for i, p := range raw {
		perm := make([]int, d)
		for j, v := range p {
			perm[j] = v + 1
		}
		perms[i] = perm
	}
	sort.Slice(perms, func(i, j int) bool { return lexLess(perms[i], perms[j]) })

	return perms, nil
}

// checkPermutation verifies perm is a permutation of {1..len(perm)}.
func checkPermutation(perm []int) error {
	seen := make([]bool, len(perm))
	for _, e := range perm {
		if e < 1 || e > len(perm) || seen[e-1] {
			return fmt.Errorf("%v is not a permutation of {1..%d}: %w", perm, len(perm), ErrMalformed)
		}
		seen[e-1] = true
	}

	return nil
}

// complementMin returns the smallest element of {1..d} missing from the
// ascending subset s; d+1 when s is the full set.
func complementMin(s []int, d int) int {
	for e := 1; e <= d; e++ {
		if !containsAscending(s, e) {
			return e
		}
	}

	return d + 1
}

// containsAscending reports membership in an ascending slice.
func containsAscending(s []int, e int) bool {
	i := sort.SearchInts(s, e)

	return i < len(s) && s[i] == e
}

// ascendingRange returns [1, 2, ..., d].
func ascendingRange(d int) []int {
	out := make([]int, d)
	for i := range out {
		out[i] = i + 1
	}

	return out
}

// lexLess orders equal-length slices lexicographically.
func lexLess(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

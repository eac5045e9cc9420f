// SPDX-License-Identifier: MIT
// Package: chromatroid/matroid
//
// methods.go — derived constructions on an existing Matroid: ground-set
// extension and relabelling.
//
// Contract:
//   • Both methods return fresh instances; the receiver is never touched.
//   • Extend re-validates through New with the receiver's validator, so
//     an extension of an exchange-validated matroid is exchange-validated
//     again.
//   • Relabel skips re-validation: a bijection preserves the axioms.
//
// Determinism:
//   • Candidate bases accumulate in a deterministic order and New's
//     normalization sorts the final family, so equal inputs yield equal
//     outputs regardless of map iteration.

package matroid

import (
	"fmt"
	"sort"
)

// Extend adds new elements to the ground set one at a time. For each new
// element e, every basis B of the family accumulated so far spawns one
// candidate (B∖{i})∪{e} per element i of B that belongs to the
// receiver's original ground set; all candidates join the family
// alongside the existing bases. The grown family is re-validated.
//
// Errors: ErrElementExists if an element is already present (or repeats
// in the argument list), ErrMalformed for elements below 1, plus any
// validation error from the final construction.
func (m *Matroid) Extend(elements ...int) (*Matroid, error) {
	ground := append([]int(nil), m.ground...)
	fam := m.Bases()
	seen := make(map[string]struct{}, len(fam))
	for _, b := range fam {
		seen[basisKey(b)] = struct{}{}
	}

	for _, e := range elements {
		if e < minElement {
			return nil, fmt.Errorf("Extend: element %d: %w", e, ErrMalformed)
		}
		if containsSorted(ground, e) {
			return nil, fmt.Errorf("Extend: element %d: %w", e, ErrElementExists)
		}
		ground = insertSorted(ground, e)

		// Snapshot: candidates spawned by e must not feed on themselves.
		snapshot := fam
		for _, b := range snapshot {
			for _, i := range b {
				if !containsSorted(m.ground, i) {
					continue
				}
				candidate := swapSorted(b, i, e)
				key := basisKey(candidate)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				fam = append(fam, candidate)
			}
		}
	}

	out, err := New(ground, fam, WithValidator(m.validate))
	if err != nil {
		return nil, fmt.Errorf("Extend: %w", err)
	}

	return out, nil
}

// Relabel returns the matroid with every ground element replaced through
// the given total bijection. Validation is not repeated; relabelling
// preserves the basis axioms.
//
// Errors: ErrBadBijection for a missing or duplicated image,
// ErrMalformed for images below 1.
func (m *Matroid) Relabel(bijection map[int]int) (*Matroid, error) {
	images := make(map[int]struct{}, len(m.ground))
	ground := make([]int, len(m.ground))
	for i, e := range m.ground {
		img, ok := bijection[e]
		if !ok {
			return nil, fmt.Errorf("Relabel: element %d has no image: %w", e, ErrBadBijection)
		}
		if img < minElement {
			return nil, fmt.Errorf("Relabel: image %d of %d: %w", img, e, ErrMalformed)
		}
		if _, dup := images[img]; dup {
			return nil, fmt.Errorf("Relabel: image %d duplicated: %w", img, ErrBadBijection)
		}
		images[img] = struct{}{}
		ground[i] = img
	}
	sort.Ints(ground)

	fam := make([][]int, len(m.bases))
	index := make(map[string]struct{}, len(m.bases))
	for i, b := range m.bases {
		nb := make([]int, len(b))
		for j, e := range b {
			nb[j] = bijection[e]
		}
		sort.Ints(nb)
		fam[i] = nb
		index[basisKey(nb)] = struct{}{}
	}
	sort.Slice(fam, func(i, j int) bool { return lessInts(fam[i], fam[j]) })

	return &Matroid{
		ground:   ground,
		bases:    fam,
		index:    index,
		rank:     m.rank,
		validate: m.validate,
	}, nil
}

// insertSorted inserts e into ascending s, keeping order. e must be
// absent from s.
func insertSorted(s []int, e int) []int {
	pos := sort.SearchInts(s, e)
	s = append(s, 0)
	copy(s[pos+1:], s[pos:])
	s[pos] = e

	return s
}

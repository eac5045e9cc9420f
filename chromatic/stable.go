// SPDX-License-Identifier: MIT
// Package: chromatroid/chromatic
//
// stable.go — the stability predicate linking a matroid to a set
// composition.
//
// Contract:
//   • Every matroid ground element must occur in some block of the set
//     composition (else ErrGroundMismatch); extra composition elements
//     are permitted and simply never scored.
//   • score(B) = Σ over elements of B of the 0-based index of the block
//     containing the element; the pair is stable iff exactly one basis
//     attains the maximum score.
//   • Pure and stateless: O(|ground| + |bases|·rank) per call, no
//     allocation beyond the block-index table.
//
// Determinism:
//   • The verdict depends only on the score multiset, never on basis
//     enumeration order.

package chromatic

import (
	"fmt"

	"github.com/katalvlaran/chromatroid/matroid"
	"github.com/katalvlaran/chromatroid/setcomposition"
)

// IsStable reports whether the set composition is stable with respect
// to the matroid: the block-index score function on the bases has a
// unique maximizer.
//
// Errors: ErrGroundMismatch when a matroid ground element appears in no
// block of opi.
func IsStable(m *matroid.Matroid, opi setcomposition.SetComposition) (bool, error) {
	ground := m.GroundSet()
	blockAt := make(map[int]int, len(ground))
	for _, e := range ground {
		idx, ok := opi.BlockIndex(e)
		if !ok {
			return false, fmt.Errorf("IsStable: element %d has no block in %s: %w", e, opi, ErrGroundMismatch)
		}
		blockAt[e] = idx
	}

	best, hits := 0, 0
	for _, b := range m.Bases() {
		score := 0
		for _, e := range b {
			score += blockAt[e]
		}
		switch {
		case hits == 0 || score > best:
			best, hits = score, 1
		case score == best:
			hits++
		}
	}

	return hits == 1, nil
}

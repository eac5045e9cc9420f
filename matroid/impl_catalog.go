// SPDX-License-Identifier: MIT
// Package: chromatroid/matroid
//
// impl_catalog.go — the catalog of loopless nested matroids, derived
// from set compositions through balanced double chains.
//
// Contract:
//   • A set composition of {1..d} contributes flags when every block
//     before the last has at least two elements (a singleton mid-block
//     would force a loop).
//   • The flag levels are the cumulative unions of the blocks. Rank
//     increments run 1..|block|−1 per level; the last level additionally
//     admits the full |block| increment (the no-coloop boundary case).
//   • DoubleChains(0) is the empty catalog: there is no loopless
//     matroid on an empty ground set besides the degenerate one, and
//     downstream experiments never ask for it.
//
// Determinism:
//   • Catalog order: set-composition generation order, then rank chains
//     with ascending mid-level increments, full-increment chains last.

package matroid

import (
	"fmt"

	"github.com/katalvlaran/chromatroid/setcomposition"
)

// DoubleChain is the defining data of a nested matroid: a flag over
// {1..N} with its rank bounds.
type DoubleChain struct {
	N     int
	Rank  int
	Chain [][]int
	Ranks []int
}

// DoubleChains derives every balanced double chain on {1..d} from the
// set-composition catalog of sc.
//
// Errors: ErrMalformed for negative d.
func DoubleChains(d int, sc *setcomposition.Cache) ([]DoubleChain, error) {
	if d < 0 {
		return nil, fmt.Errorf("DoubleChains: size %d: %w", d, ErrMalformed)
	}
	if d == 0 {
		return []DoubleChain{}, nil
	}
	catalog, err := sc.All(d)
	if err != nil {
		return nil, fmt.Errorf("DoubleChains: %w", err)
	}

	out := make([]DoubleChain, 0)
	for _, opi := range catalog {
		blocks := opi.Blocks()
		if !looplessShape(blocks) {
			continue
		}
		levels := cumulativeUnions(blocks)
		for _, ranks := range rankChains(blocks) {
			out = append(out, DoubleChain{
				N:     d,
				Rank:  ranks[len(ranks)-1],
				Chain: deepCopy(levels),
				Ranks: ranks,
			})
		}
	}

	return out, nil
}

// LooplessNested materializes DoubleChains(d) through Nested.
//
// Errors: ErrMalformed for negative d; construction errors are wrapped.
func LooplessNested(d int, sc *setcomposition.Cache) ([]*Matroid, error) {
	chains, err := DoubleChains(d, sc)
	if err != nil {
		return nil, fmt.Errorf("LooplessNested: %w", err)
	}
	out := make([]*Matroid, len(chains))
	for i, dc := range chains {
		m, err := Nested(dc.N, dc.Rank, dc.Chain, dc.Ranks)
		if err != nil {
			return nil, fmt.Errorf("LooplessNested: chain %d: %w", i, err)
		}
		out[i] = m
	}

	return out, nil
}

// looplessShape reports whether every block before the last has at
// least two elements.
func looplessShape(blocks [][]int) bool {
	for i := 0; i+1 < len(blocks); i++ {
		if len(blocks[i]) < 2 {
			return false
		}
	}

	return true
}

// cumulativeUnions turns an ordered block sequence into its flag of
// cumulative unions, each level ascending.
func cumulativeUnions(blocks [][]int) [][]int {
	levels := make([][]int, len(blocks))
	acc := make([]int, 0)
	for i, blk := range blocks {
		for _, e := range blk {
			acc = insertSorted(acc, e)
		}
		levels[i] = append([]int(nil), acc...)
	}

	return levels
}

// rankChains enumerates the admissible rank sequences for the flag of
// the given blocks. Each chain carries a leading 0 during construction
// that is stripped from the result.
func rankChains(blocks [][]int) [][]int {
	chains := [][]int{{0}}
	var beforeLast [][]int
	for _, blk := range blocks {
		beforeLast = chains
		next := make([][]int, 0, len(chains)*len(blk))
		for _, r := range chains {
			last := r[len(r)-1]
			for inc := 1; inc < len(blk); inc++ {
				next = append(next, extended(r, last+inc))
			}
		}
		chains = next
	}
	// Full-increment closings of the last level come after all others.
	lastBlock := blocks[len(blocks)-1]
	for _, r := range beforeLast {
		chains = append(chains, extended(r, r[len(r)-1]+len(lastBlock)))
	}

	out := make([][]int, len(chains))
	for i, r := range chains {
		out[i] = append([]int(nil), r[1:]...)
	}

	return out
}

// extended returns r with one more entry, never sharing backing arrays.
func extended(r []int, v int) []int {
	nr := make([]int, len(r)+1)
	copy(nr, r)
	nr[len(r)] = v

	return nr
}

// deepCopy clones a slice of slices.
func deepCopy(levels [][]int) [][]int {
	out := make([][]int, len(levels))
	for i, level := range levels {
		out[i] = append([]int(nil), level...)
	}

	return out
}

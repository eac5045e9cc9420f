package setcomposition

import (
	"fmt"
	"sort"
)

// Canonical relabels the ground set onto {1..k} preserving ascending
// order: the i-th smallest element becomes i+1. The result is the
// canonical representative of the receiver's labelling class.
func (sc SetComposition) Canonical() SetComposition {
	if len(sc.ground) == 0 {
		return SetComposition{}
	}
	m := make(map[int]int, len(sc.ground))
	for i, e := range sc.ground {
		m[e] = i + 1
	}

	return sc.relabelTrusted(m)
}

// RelabelOnto relabels positionally: the i-th smallest ground element
// becomes labels[i]. This is the inverse direction of Canonical when
// labels are ascending, and the workhorse of catalog enumeration.
//
// Errors: ErrBadRelabel on a length mismatch; label collisions surface
// as ErrNotDisjoint, invalid labels as ErrMalformed.
func (sc SetComposition) RelabelOnto(labels []int) (SetComposition, error) {
	if len(labels) != len(sc.ground) {
		return SetComposition{}, fmt.Errorf("RelabelOnto: %d labels for %d elements: %w",
			len(labels), len(sc.ground), ErrBadRelabel)
	}
	m := make(map[int]int, len(labels))
	for i, e := range sc.ground {
		m[e] = labels[i]
	}

	return sc.Relabel(m)
}

// Relabel applies an explicit mapping to every ground element. The
// mapping must cover the whole ground set; the relabelled result is
// fully re-validated.
//
// Errors: ErrBadRelabel when an element has no image; collisions surface
// as ErrNotDisjoint, invalid images as ErrMalformed.
func (sc SetComposition) Relabel(m map[int]int) (SetComposition, error) {
	blocks := make([][]int, len(sc.blocks))
	for i, blk := range sc.blocks {
		nb := make([]int, len(blk))
		for j, e := range blk {
			img, ok := m[e]
			if !ok {
				return SetComposition{}, fmt.Errorf("Relabel: element %d has no image: %w", e, ErrBadRelabel)
			}
			nb[j] = img
		}
		blocks[i] = nb
	}
	out, err := New(blocks...)
	if err != nil {
		return SetComposition{}, fmt.Errorf("Relabel: %w", err)
	}

	return out, nil
}

// relabelTrusted applies a mapping known to be total and injective with
// admissible images, skipping re-validation. Blocks are re-sorted since
// an arbitrary bijection need not preserve element order.
func (sc SetComposition) relabelTrusted(m map[int]int) SetComposition {
	blocks := make([][]int, len(sc.blocks))
	total := 0
	for i, blk := range sc.blocks {
		nb := make([]int, len(blk))
		for j, e := range blk {
			nb[j] = m[e]
		}
		sort.Ints(nb)
		blocks[i] = nb
		total += len(nb)
	}
	ground := make([]int, 0, total)
	for _, blk := range blocks {
		ground = append(ground, blk...)
	}
	sort.Ints(ground)

	return SetComposition{blocks: blocks, ground: ground}
}

// relabelOntoTrusted is the positional form of relabelTrusted: the i-th
// smallest ground element maps to labels[i]. The label vector must have
// ground length and distinct admissible entries.
func (sc SetComposition) relabelOntoTrusted(labels []int) SetComposition {
	m := make(map[int]int, len(labels))
	for i, e := range sc.ground {
		m[e] = labels[i]
	}

	return sc.relabelTrusted(m)
}

// canonicalShifted relabels onto {shift+1 .. shift+k} preserving
// ascending order. Shuffle memoization places the second operand in this
// frame so both operands share the contiguous canonical ground
// {1 .. |q|+|t|}.
func (sc SetComposition) canonicalShifted(shift int) SetComposition {
	if len(sc.ground) == 0 {
		return SetComposition{}
	}
	m := make(map[int]int, len(sc.ground))
	for i, e := range sc.ground {
		m[e] = shift + i + 1
	}

	return sc.relabelTrusted(m)
}

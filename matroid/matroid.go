// SPDX-License-Identifier: MIT
// Package: chromatroid/matroid
//
// matroid.go — the Matroid value type: construction, normalization,
// rank queries, and independent-set enumeration.
//
// Contract:
//   • Ground elements are distinct positive integers; stored ascending.
//   • Bases are stored sorted elementwise, deduplicated, and ordered
//     lexicographically, so all derived output is deterministic even
//     though a basis family is conceptually an unordered set.
//   • New validates shape first (ErrMalformed/ErrNoBases/ErrBasisSize),
//     then runs the configured Validator (ErrExchange by default).
//   • A *Matroid is immutable after New; Extend/Relabel return new
//     instances and never touch the receiver.
//
// Complexity:
//   • New: O(|bases|·rank·log) normalization + validator cost
//     (ExchangeValidator is O(|bases|²·rank²), see validators.go).
//   • RankOf: O(|bases|·rank).
//   • IndependentSets: Θ(2^|ground|) — the full power set is scanned.
//     Acceptable for the small instances research code exercises.
//
// Determinism:
//   • Bases(), IndependentSets(), and String() follow the stored
//     lexicographic order regardless of input order.

package matroid

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat/combin"
)

// minElement is the smallest admissible ground-set label.
const minElement = 1

// Matroid is a ground set of positive integers together with a family of
// equal-size bases satisfying the basis-exchange axiom.
//
// Construct only through New or the family constructors; the zero value
// is not a valid matroid.
type Matroid struct {
	ground []int
	bases  [][]int
	index  map[string]struct{}
	rank   int

	// validate is the strategy New ran; Extend re-runs the same one.
	validate Validator
}

// New builds a matroid from a ground set and a basis family.
//
// Input slices are copied and normalized: the ground set is sorted, each
// basis is sorted, duplicate bases collapse to one, and the family is
// ordered lexicographically. Validation then proceeds in two stages:
// shape (non-empty family of equal-size bases over the ground set) and
// the configured Validator (ExchangeValidator unless overridden via
// WithValidator).
//
// Errors: ErrMalformed, ErrNoBases, ErrBasisSize, ErrExchange.
func New(ground []int, bases [][]int, opts ...Option) (*Matroid, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g, err := normalizeGround(ground)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	fam, index, err := normalizeBases(g, bases)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if err = cfg.validator(g, fam); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &Matroid{
		ground:   g,
		bases:    fam,
		index:    index,
		rank:     len(fam[0]),
		validate: cfg.validator,
	}, nil
}

// normalizeGround copies, sorts, and checks the ground set.
func normalizeGround(ground []int) ([]int, error) {
	g := append([]int(nil), ground...)
	sort.Ints(g)
	for i, e := range g {
		if e < minElement {
			return nil, fmt.Errorf("ground element %d: %w", e, ErrMalformed)
		}
		if i > 0 && g[i-1] == e {
			return nil, fmt.Errorf("ground element %d repeated: %w", e, ErrMalformed)
		}
	}

	return g, nil
}

// normalizeBases copies and sorts every basis, verifies containment in
// the ground set, deduplicates, orders the family lexicographically, and
// checks the shape axioms (non-empty family, equal cardinalities).
func normalizeBases(ground []int, bases [][]int) ([][]int, map[string]struct{}, error) {
	index := make(map[string]struct{}, len(bases))
	fam := make([][]int, 0, len(bases))
	for _, b := range bases {
		nb := append([]int(nil), b...)
		sort.Ints(nb)
		for i, e := range nb {
			if !containsSorted(ground, e) {
				return nil, nil, fmt.Errorf("basis element %d outside ground set: %w", e, ErrMalformed)
			}
			if i > 0 && nb[i-1] == e {
				return nil, nil, fmt.Errorf("basis element %d repeated: %w", e, ErrMalformed)
			}
		}
		key := basisKey(nb)
		if _, dup := index[key]; dup {
			continue
		}
		index[key] = struct{}{}
		fam = append(fam, nb)
	}
	if len(fam) == 0 {
		return nil, nil, ErrNoBases
	}
	sort.Slice(fam, func(i, j int) bool { return lessInts(fam[i], fam[j]) })
	size := len(fam[0])
	for _, b := range fam {
		if len(b) != size {
			return nil, nil, fmt.Errorf("sizes %d and %d: %w", size, len(b), ErrBasisSize)
		}
	}

	return fam, index, nil
}

// GroundSet returns a copy of the ground set in ascending order.
func (m *Matroid) GroundSet() []int {
	return append([]int(nil), m.ground...)
}

// Size returns the cardinality of the ground set.
func (m *Matroid) Size() int { return len(m.ground) }

// Rank returns the common cardinality of the bases.
func (m *Matroid) Rank() int { return m.rank }

// Bases returns a deep copy of the basis family in lexicographic order.
func (m *Matroid) Bases() [][]int {
	out := make([][]int, len(m.bases))
	for i, b := range m.bases {
		out[i] = append([]int(nil), b...)
	}

	return out
}

// IsBasis reports whether the given elements form a basis. The input may
// arrive in any order; duplicates make it a non-basis.
func (m *Matroid) IsBasis(elements []int) bool {
	b := append([]int(nil), elements...)
	sort.Ints(b)
	_, ok := m.index[basisKey(b)]

	return ok
}

// RankOf returns the rank of an arbitrary subset: the maximum over bases
// of |B ∩ S|. Duplicates in the input are ignored; elements outside the
// ground set contribute nothing.
func (m *Matroid) RankOf(subset []int) int {
	members := make(map[int]struct{}, len(subset))
	for _, e := range subset {
		members[e] = struct{}{}
	}
	best := 0
	for _, b := range m.bases {
		hit := 0
		for _, e := range b {
			if _, ok := members[e]; ok {
				hit++
			}
		}
		if hit > best {
			best = hit
		}
	}

	return best
}

// IndependentSets returns every subset of the ground set contained in at
// least one basis, ordered by size and then lexicographically. The empty
// set is always independent and comes first.
//
// The enumeration walks the full power set of the ground set, so cost is
// Θ(2^n); reserve it for the small instances used in research runs.
func (m *Matroid) IndependentSets() [][]int {
	out := [][]int{{}}
	for size := 1; size <= m.rank; size++ {
		for _, combo := range combin.Combinations(len(m.ground), size) {
			subset := make([]int, size)
			for i, idx := range combo {
				subset[i] = m.ground[idx]
			}
			if m.independentSorted(subset) {
				out = append(out, subset)
			}
		}
	}

	return out
}

// independentSorted reports whether a sorted subset lies inside some
// basis.
func (m *Matroid) independentSorted(subset []int) bool {
	for _, b := range m.bases {
		if subsetofSorted(subset, b) {
			return true
		}
	}

	return false
}

// Equal reports whether both matroids have the same ground set and the
// same basis family.
func (m *Matroid) Equal(o *Matroid) bool {
	if len(m.ground) != len(o.ground) || len(m.bases) != len(o.bases) {
		return false
	}
	for i, e := range m.ground {
		if o.ground[i] != e {
			return false
		}
	}
	for key := range m.index {
		if _, ok := o.index[key]; !ok {
			return false
		}
	}

	return true
}

// String renders a compact description such as
// "Matroid{1,2,3; bases: {1,2},{1,3},{2,3}}", bases in stored order.
func (m *Matroid) String() string {
	var sb strings.Builder
	sb.WriteString("Matroid{")
	for i, e := range m.ground {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(e))
	}
	sb.WriteString("; bases: ")
	for i, b := range m.bases {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('{')
		sb.WriteString(basisKey(b))
		sb.WriteByte('}')
	}
	sb.WriteByte('}')

	return sb.String()
}

// basisKey encodes a sorted basis as "1,3,5" for index membership.
func basisKey(b []int) string {
	var sb strings.Builder
	sb.Grow(3 * len(b))
	for i, e := range b {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(e))
	}

	return sb.String()
}

// containsSorted reports membership in an ascending slice.
func containsSorted(s []int, e int) bool {
	i := sort.SearchInts(s, e)

	return i < len(s) && s[i] == e
}

// subsetofSorted reports whether every element of sub (ascending) occurs
// in sup (ascending).
func subsetofSorted(sub, sup []int) bool {
	j := 0
	for _, e := range sub {
		for j < len(sup) && sup[j] < e {
			j++
		}
		if j == len(sup) || sup[j] != e {
			return false
		}
		j++
	}

	return true
}

// lessInts orders slices lexicographically, shorter prefixes first.
func lessInts(a, b []int) bool {
	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}
	for i := 0; i < limit; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

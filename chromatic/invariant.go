// SPDX-License-Identifier: MIT
// Package: chromatroid/chromatic
//
// invariant.go — chromatic invariants of a matroid: the chromatic
// (non)commutative quasisymmetric function and the chromatic
// polynomial.
//
// Contract:
//   • NCQSymFunc sums M_opi with coefficient 1 over every stable set
//     composition of the matroid's ground set; the canonical catalog of
//     {1..n} is relabelled positionally onto the ascending ground.
//   • QSymFunc is the Comu image of NCQSymFunc.
//   • Polynomial aggregates the Möbius function μ(∅, X) over the
//     independence complex: coefficient k collects μ across independent
//     sets of size k.
//
// Complexity:
//   • NCQSymFunc: ordered-Bell many stability checks — the dominating
//     cost of every experiment; keep ground sets small.
//   • Polynomial: quadratic in the number of independent sets, which is
//     itself exponential in the ground size.

package chromatic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/chromatroid/matroid"
	"github.com/katalvlaran/chromatroid/qsym"
	"github.com/katalvlaran/chromatroid/setcomposition"
)

// NCQSymFunc returns the chromatic noncommutative quasisymmetric
// function of the matroid: Σ M_opi over the stable set compositions of
// its ground set, each with coefficient 1.
func NCQSymFunc(m *matroid.Matroid, sc *setcomposition.Cache) (*qsym.NCQSym, error) {
	catalog, err := sc.All(m.Size())
	if err != nil {
		return nil, fmt.Errorf("NCQSymFunc: %w", err)
	}
	ground := m.GroundSet()

	coeffs := make(map[string]int64)
	for _, canon := range catalog {
		opi, err := canon.RelabelOnto(ground)
		if err != nil {
			return nil, fmt.Errorf("NCQSymFunc: %w", err)
		}
		stable, err := IsStable(m, opi)
		if err != nil {
			return nil, fmt.Errorf("NCQSymFunc: %w", err)
		}
		if stable {
			coeffs[opi.String()] = 1
		}
	}
	out, err := qsym.NewNCQSymFromMap(coeffs)
	if err != nil {
		return nil, fmt.Errorf("NCQSymFunc: %w", err)
	}

	return out, nil
}

// QSymFunc returns the chromatic quasisymmetric function: the
// commutative image of NCQSymFunc.
func QSymFunc(m *matroid.Matroid, sc *setcomposition.Cache) (*qsym.QSym, error) {
	nc, err := NCQSymFunc(m, sc)
	if err != nil {
		return nil, fmt.Errorf("QSymFunc: %w", err)
	}

	return nc.Comu(), nil
}

// Polynomial returns the chromatic coefficients of the matroid:
// position k holds Σ μ(∅, X) over independent sets X of size k, with
// the Möbius function computed by the interval recursion over
// containment. Every subset of an independent set is independent, so
// the interval below X is a full boolean lattice and the entries
// alternate in sign.
func Polynomial(m *matroid.Matroid) []int64 {
	// Sorted by size, so every proper subset precedes its superset.
	independent := m.IndependentSets()
	mu := make(map[string]int64, len(independent))
	coeffs := make([]int64, m.Size()+1)
	for _, x := range independent {
		v := int64(1)
		if len(x) > 0 {
			v = 0
			for _, z := range independent {
				if len(z) >= len(x) {
					break
				}
				if ascendingSubset(z, x) {
					v -= mu[subsetKey(z)]
				}
			}
		}
		mu[subsetKey(x)] = v
		coeffs[len(x)] += v
	}

	return coeffs
}

// subsetKey encodes an ascending subset as "1,3,5".
func subsetKey(s []int) string {
	var sb strings.Builder
	sb.Grow(3 * len(s))
	for i, e := range s {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(e))
	}

	return sb.String()
}

// ascendingSubset reports whether every element of sub occurs in sup,
// both ascending.
func ascendingSubset(sub, sup []int) bool {
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

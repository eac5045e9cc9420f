// SPDX-License-Identifier: MIT
// Package: chromatroid/matroid
//
// validators.go — pluggable basis-axiom validation strategies.
//
// Contract:
//   • A Validator receives the normalized ground set and basis family
//     (ascending grounds, sorted deduplicated bases of equal size) and
//     returns nil or a sentinel-wrapped error.
//   • ExchangeValidator is the default and checks the exchange axiom in
//     ordered-pair form; the roles of B1 and B2 are asymmetric, so both
//     orientations of every pair are examined.
//   • AcceptAllValidator skips the axiom for families that are valid by
//     construction (the impl_*.go constructors build such families).
//
// Complexity:
//   • ExchangeValidator: O(|bases|²·rank²) with O(1) membership probes.
//     Brute force over adversarial input can dwarf this in practice
//     (|bases| itself may be exponential in the ground size); callers
//     feeding untrusted large families should expect that cost.

package matroid

import "fmt"

// Validator checks the basis axioms on a normalized family. Implementers
// must wrap ErrExchange (or another package sentinel) so callers can
// branch with errors.Is.
type Validator func(ground []int, bases [][]int) error

// ExchangeValidator verifies the basis-exchange axiom over all ordered
// pairs: for every (B1, B2) with B1 ≠ B2 and every i ∈ B2∖B1 there must
// be j ∈ B1∖B2 with (B2∖{i})∪{j} again in the family.
func ExchangeValidator(ground []int, bases [][]int) error {
	index := make(map[string]struct{}, len(bases))
	for _, b := range bases {
		index[basisKey(b)] = struct{}{}
	}
	for _, b1 := range bases {
		for _, b2 := range bases {
			if sameSorted(b1, b2) {
				continue
			}
			for _, i := range diffSorted(b2, b1) {
				if !exchangeExists(index, b2, i, diffSorted(b1, b2)) {
					return fmt.Errorf("no exchange for %d between {%s} and {%s}: %w",
						i, basisKey(b1), basisKey(b2), ErrExchange)
				}
			}
		}
	}

	return nil
}

// AcceptAllValidator accepts any shaped family without touching the
// exchange axiom. Reserve it for families valid by construction.
func AcceptAllValidator(ground []int, bases [][]int) error { return nil }

// exchangeExists reports whether swapping i out of b2 for some candidate
// j lands back in the family.
func exchangeExists(index map[string]struct{}, b2 []int, i int, candidates []int) bool {
	for _, j := range candidates {
		swapped := swapSorted(b2, i, j)
		if _, ok := index[basisKey(swapped)]; ok {
			return true
		}
	}

	return false
}

// swapSorted returns b with element out removed and element in inserted,
// keeping ascending order. out must occur in b, in must not.
func swapSorted(b []int, out, in int) []int {
	res := make([]int, 0, len(b))
	for _, e := range b {
		if e == out {
			continue
		}
		res = append(res, e)
	}
	pos := 0
	for pos < len(res) && res[pos] < in {
		pos++
	}
	res = append(res, 0)
	copy(res[pos+1:], res[pos:])
	res[pos] = in

	return res
}

// diffSorted returns a∖b for ascending slices, ascending.
func diffSorted(a, b []int) []int {
	out := make([]int, 0, len(a))
	j := 0
	for _, e := range a {
		for j < len(b) && b[j] < e {
			j++
		}
		if j < len(b) && b[j] == e {
			continue
		}
		out = append(out, e)
	}

	return out
}

// sameSorted reports elementwise equality of ascending slices.
func sameSorted(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i, e := range a {
		if b[i] != e {
			return false
		}
	}

	return true
}

// SPDX-License-Identifier: MIT
// Package: chromatroid/matroid
//
// doc.go — package overview and usage notes.

// Package matroid implements matroids on positive-integer ground sets:
// validated construction, rank queries, independent-set enumeration,
// ground-set extension, relabelling, and the classical families the
// chromatic experiments draw from.
//
// 🚀 What is a matroid here?
//
//	A ground set {1..n} together with a family of equal-size bases
//	satisfying the exchange axiom: for bases B1 ≠ B2 and any
//	i ∈ B2∖B1 there is j ∈ B1∖B2 with (B2∖{i})∪{j} again a basis.
//	Matroids abstract linear and graphic independence; here they feed
//	the stability predicate behind chromatic quasisymmetric functions.
//
// ✨ Key features:
//   - New validates shape and the exchange axiom on construction; an
//     invalid family never yields a value
//   - pluggable Validator strategy: ExchangeValidator (default, the
//     O(|bases|²·rank²) ordered-pair check) or AcceptAllValidator for
//     correct-by-construction families
//   - immutable values; Extend and Relabel return new instances
//   - family constructors: Uniform, Schubert, Nested, Graphic, plus the
//     AllSchubert / LooplessSchubert / LooplessNested catalogs used by
//     the rank experiments
//   - deterministic output everywhere: bases held sorted and ordered
//     lexicographically, catalogs in a fixed generation order
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/chromatroid/matroid"
//
//	m, err := matroid.Uniform(4, 2)       // U(4,2): all 2-subsets
//	if err != nil { ... }
//	m.Rank()                              // 2
//	m.RankOf([]int{1, 2, 3})              // 2
//	ext, err := m.Extend(5)               // grow the ground set
//
// ⚠️ Cost caveat: validation and IndependentSets are brute force. The
// exchange check is quadratic in the basis family, which itself can be
// exponential in the ground size; IndependentSets scans the full power
// set. Both are intended for the small instances research runs exercise.
//
// See example_test.go for runnable walkthroughs.
package matroid

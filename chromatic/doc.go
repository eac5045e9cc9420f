// SPDX-License-Identifier: MIT
// Package: chromatroid/chromatic
//
// doc.go — package overview and usage notes.

// Package chromatic ties the combinatorial layers together: the
// stability predicate between a matroid and a set composition, the
// chromatic (non)commutative quasisymmetric invariants built from it,
// and the labelled incidence experiments whose numeric ranks bound the
// dimension of the span of chromatic functions.
//
// 🚀 What is stability?
//
//	Fix a matroid M and a set composition opi covering its ground set.
//	Score each basis by the sum of the 0-based block indices of its
//	elements; the pair (M, opi) is stable when exactly one basis
//	attains the maximum. Summing M_opi over the stable opi gives the
//	chromatic noncommutative quasisymmetric function of M; its
//	commutative image is the chromatic quasisymmetric function.
//
// ✨ Key features:
//   - IsStable: the pure predicate, with ground-coverage checking
//   - NCQSymFunc / QSymFunc: the chromatic invariants as formal sums
//   - Polynomial: Möbius-function coefficients over the independence
//     complex
//   - permutation- and subset-indexed set compositions
//     (MinMaxSetComposition, SubsetSetComposition, ValidSubsets) — the
//     column catalogs of the experiments
//   - four Experiment builders (StabilityMatrix, SubsetStabilityMatrix,
//     FullStabilityMatrix, AlternatingSumMatrix) assembling labelled
//     matrices row-parallel, with SVD-based numeric Rank
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/chromatroid/chromatic"
//
//	sc := setcomposition.NewCache()
//	exp, err := chromatic.StabilityMatrix(ctx, 3, sc)
//	if err != nil { ... }
//	rank, err := exp.Rank(0)              // default tolerance
//
// Performance:
//
//   - Every experiment is exponential in d: ordered-Bell many columns
//     for FullStabilityMatrix, d! for the permutation-indexed ones.
//     d ≤ 5 runs in seconds; d = 6 is already a long computation.
//
// See example_test.go for runnable walkthroughs.
package chromatic

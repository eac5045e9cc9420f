// SPDX-License-Identifier: MIT
// Package: chromatroid/chromatic
//
// errors.go — sentinel errors for the chromatic package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` at the call site.
//   • Errors from matroid/setcomposition dependencies propagate wrapped,
//     so their sentinels remain reachable through errors.Is.

package chromatic

import "errors"

// ErrGroundMismatch indicates a stability query whose set composition
// does not cover the matroid's ground set: some basis element has no
// block and therefore no score.
// Usage: if errors.Is(err, ErrGroundMismatch) { /* relabel first */ }.
var ErrGroundMismatch = errors.New("chromatic: set composition does not cover the matroid ground set")

// ErrMalformed indicates invalid experiment input: a sequence that is
// not a permutation of {1..d}, a subset leaving {1..d}, or a
// non-positive dimension.
// Usage: if errors.Is(err, ErrMalformed) { /* fix the input shape */ }.
var ErrMalformed = errors.New("chromatic: malformed input")

// ErrFactorize indicates the SVD of an experiment matrix failed to
// converge, leaving the numeric rank undefined.
// Usage: if errors.Is(err, ErrFactorize) { /* inspect the matrix */ }.
var ErrFactorize = errors.New("chromatic: svd factorization failed")

// SPDX-License-Identifier: MIT
// Package: chromatroid/matroid
//
// errors.go — sentinel errors for the matroid package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context with `%w` at the call site.
//   • No runtime panics; validation panics are confined to option
//     constructors (WithX...).

package matroid

import "errors"

// ErrMalformed indicates structurally invalid input before any axiom is
// considered: ground elements below 1 or duplicated, basis elements
// outside the ground set, or invalid family-constructor parameters
// (negative sizes, rank above ground size, broken chains).
// Usage: if errors.Is(err, ErrMalformed) { /* reject input shape */ }.
var ErrMalformed = errors.New("matroid: malformed input")

// ErrNoBases indicates an empty basis family. Every matroid has at least
// one basis; the empty family defines nothing.
// Usage: if errors.Is(err, ErrNoBases) { /* supply at least one basis */ }.
var ErrNoBases = errors.New("matroid: no bases given")

// ErrBasisSize indicates bases of differing cardinality. All bases of a
// matroid share one cardinality, the rank.
// Usage: if errors.Is(err, ErrBasisSize) { /* equalize basis sizes */ }.
var ErrBasisSize = errors.New("matroid: bases differ in size")

// ErrExchange indicates a family that fails the basis-exchange axiom:
// some ordered pair (B1, B2) and element i ∈ B2∖B1 admit no j ∈ B1∖B2
// with (B2∖{i})∪{j} in the family.
// Usage: if errors.Is(err, ErrExchange) { /* not a matroid */ }.
var ErrExchange = errors.New("matroid: exchange axiom violated")

// ErrElementExists indicates an extension element that already belongs
// to the ground set.
// Usage: if errors.Is(err, ErrElementExists) { /* pick fresh labels */ }.
var ErrElementExists = errors.New("matroid: element already in ground set")

// ErrBadBijection indicates a relabelling map that is not a total
// bijection on the ground set: a missing image or two elements sharing
// one image.
// Usage: if errors.Is(err, ErrBadBijection) { /* fix the mapping */ }.
var ErrBadBijection = errors.New("matroid: relabelling is not a bijection")

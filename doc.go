// Package chromatroid is a combinatorial algebra engine for chromatic
// invariants of matroids — from integer compositions to quasisymmetric
// functions and the rank experiments built on top of them.
//
// 🚀 What is chromatroid?
//
//	A research toolkit that brings together:
//		• Compositions: enumeration + memoized quasi-shuffle product
//		• Set compositions: enumeration, relabeling, canonical-frame
//		  memoized quasi-shuffle over disjoint ground sets
//		• Matroids: axiom-validated construction, rank queries, the
//		  uniform / Schubert / nested / graphic families and catalogs
//		• Stability: the predicate linking a matroid to a set
//		  composition via a unique-maximizer score function
//		• Formal sums: NCQSym and QSym coefficient algebras with exact
//		  big-integer arithmetic and the comu projection
//		• Experiments: labelled stability matrices with SVD ranks
//
// ✨ Why choose chromatroid?
//
//   - Exact by construction – invalid structures never materialize,
//     coefficients never overflow
//   - Deterministic – canonical string forms, fixed catalog orders,
//     reproducible matrices
//   - Concurrency-aware – append-only caches behind R/W locks,
//     row-parallel matrix assembly
//   - Extensible – pluggable matroid validators, injectable caches
//
// Under the hood, everything is organized under five subpackages:
//
//	composition/    — integer compositions & their quasi-shuffle algebra
//	setcomposition/ — ordered set partitions, relabeling, quasi-shuffle
//	matroid/        — the data model, validators & family constructors
//	qsym/           — formal sums: NCQSym, QSym, comu
//	chromatic/      — stability, invariants & incidence experiments
//
// Quick formula example:
//
//	M(1)·M(1) = 2·M(1,1) + M(2)
//
//	the smallest quasi-shuffle: two interleavings plus one fusion.
//
// Dive into the per-package doc.go files and example tests for
// runnable walkthroughs of the full pipeline, from a basis family to
// the rank of its stability matrix.
//
//	go get github.com/katalvlaran/chromatroid
package chromatroid

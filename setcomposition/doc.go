// Package setcomposition implements set compositions (ordered partitions
// of finite sets of positive integers), their relabelling calculus, and
// their quasi-shuffle product memoized in a canonical frame.
//
// 🚀 What is a set composition?
//
//	A set composition of a finite set S is an ordered sequence of
//	non-empty, pairwise disjoint blocks whose union is S, written
//	canonically as "(2,4|1|3,5,6)".  Set compositions index the monomial
//	basis of NCQSym (quasi-symmetric functions in noncommuting
//	variables) and drive:
//	  • chromatic invariants of graphs and matroids
//	  • colorings ordered by level sets
//	  • the projection onto QSym via block sizes (Alpha)
//
// ✨ Key features:
//   - immutable SetComposition value; the zero value is the empty "()"
//   - blocks kept sorted ascending, ground set kept sorted ascending,
//     strict round-trip guarantee Parse(sc.String()) == sc
//   - three explicit relabelling forms: Canonical (onto {1..k}),
//     RelabelOnto (positional), Relabel (explicit bijection)
//   - full enumeration over {1..n} in a deterministic generation order
//     (ordered Bell counts 1, 1, 3, 13, 75, 541, ...)
//   - quasi-shuffle product over disjoint ground sets, memoized once in
//     the canonical frame and translated back per call, so differently
//     labelled operands share one cache entry
//   - append-only Cache, safe for concurrent use, eagerly warmed to a
//     configurable depth
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/chromatroid/setcomposition"
//
//	cache := setcomposition.NewCache()            // warmed to size 3
//	q, _ := setcomposition.New([]int{1})
//	t, _ := setcomposition.New([]int{2})
//	prod, _ := cache.QuasiShuffle(q, t)
//	// prod has keys "(1|2)", "(2|1)", "(1,2)", each with coefficient 1
//
// Performance:
//
//   - Enumeration: output-bound (ordered Bell growth); each size built
//     once per Cache, subset frames via gonum combin.Combinations.
//   - QuasiShuffle: canonical-frame memo hit plus one key translation
//     pass; uncached products recurse with every sub-pair memoized.
//
// See example_test.go for runnable walkthroughs.
package setcomposition

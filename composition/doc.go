// Package composition implements integer compositions (ordered sequences
// of positive parts) and their quasi-shuffle product, memoized through an
// explicit Cache.
//
// 🚀 What is a composition?
//
//	A composition of n is an ordered tuple of positive integers summing
//	to n, written canonically as "(2,1,3)".  Compositions index the
//	monomial basis of the quasi-symmetric function algebra and appear in:
//	  • quasi-symmetric and noncommutative symmetric functions
//	  • chromatic invariants of graphs and matroids
//	  • shuffle and stuffle algebras of multiple zeta values
//
// ✨ Key features:
//   - immutable Composition value type; the zero value is the empty "()"
//   - canonical string form with a strict round-trip guarantee:
//     Parse(c.String()) == c for every valid c
//   - full enumeration per weight in a deterministic generation order
//     (2^(n-1) compositions of n ≥ 1)
//   - quasi-shuffle product qs(a·q′, b·t′) = a·qs(q′,t) ⊎ b·qs(q,t′)
//     ⊎ (a+b)·qs(q′,t′), with coefficients collected over equal results
//   - append-only Cache, safe for concurrent use, eagerly warmed to a
//     configurable depth so small products are always memo hits
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/chromatroid/composition"
//
//	cache := composition.NewCache()          // warmed to weight 4
//	q, _ := composition.New(1)
//	prod := cache.QuasiShuffle(q, q)
//	// prod == map[string]int64{"(1,1)": 2, "(2)": 1}
//
// Performance:
//
//   - Enumeration: O(2^n) output size; each level built once, then reused.
//   - QuasiShuffle: O(3^(len(q)+len(t))) worst case uncached; memo hits
//     are a single read-locked map probe.
//
// See example_test.go for runnable walkthroughs.
package composition

// Package qsym implements formal integer-linear combinations of
// monomial (non)commutative quasisymmetric functions: NCQSym over set
// compositions and QSym over integer compositions, with the projection
// between them.
//
// 🚀 What lives here?
//
//	A sum is a coefficient map from canonical composition strings to
//	exact big integers. NCQSym is spanned by monomials M_opi (opi a set
//	composition), QSym by M_alpha (alpha an integer composition), and
//	Comu sends M_opi to M_alpha(opi) — the commutative image that
//	chromatic invariants of matroids ultimately land in.
//
// ✨ Key features:
//   - exact unbounded coefficients via math/big
//   - value semantics: Add/Scale/Mul/Comu return new sums and never
//     mutate operands or leak internal *big.Int pointers
//   - ring multiplication as the bilinear extension of the memoized
//     quasi-shuffle products of the composition and setcomposition
//     packages (a Cache is passed in explicitly)
//   - canonical-string keys that always round-trip through the parsers,
//     with the parsed value stored beside each key
//   - deterministic String() ordering for reproducible experiment logs
//
// ⚙️ Usage:
//
//	import (
//		"github.com/katalvlaran/chromatroid/qsym"
//		"github.com/katalvlaran/chromatroid/setcomposition"
//	)
//
//	cache := setcomposition.NewCache()
//	f, _ := qsym.NewNCQSymFromMap(map[string]int64{"(1|2)": 1, "(2|1)": 1})
//	f.Comu()                           // 2*M(1,1)
//	g, _ := f.Mul(f, cache)            // needs disjoint supports: errors here
//	_ = g
//
// Zero coefficients are retained in the map (Len counts them) but are
// invisible to Equal, IsZero, and String.
package qsym

package qsym

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/katalvlaran/chromatroid/setcomposition"
)

// NCQSym is a formal ℤ-linear combination of monomials M_opi indexed by
// set compositions: the noncommutative counterpart of QSym. The same
// value semantics apply — operations return new sums, no *big.Int
// aliasing, zero coefficients retained but invisible to Equal, IsZero,
// and String.
type NCQSym struct {
	terms map[string]ncterm
}

// ncterm pairs the parsed set composition with its coefficient.
type ncterm struct {
	opi   setcomposition.SetComposition
	coeff *big.Int
}

// NewNCQSym returns the zero sum.
func NewNCQSym() *NCQSym {
	return &NCQSym{terms: make(map[string]ncterm)}
}

// NewNCMonomial returns M_opi with coefficient 1.
func NewNCMonomial(opi setcomposition.SetComposition) *NCQSym {
	f := NewNCQSym()
	f.terms[opi.String()] = ncterm{opi: opi, coeff: big.NewInt(1)}

	return f
}

// NewNCQSymFromMap builds a sum from canonical-string keys. Every key
// must parse as a set composition; zero coefficients are retained.
//
// Errors: ErrBadKey wrapping the parse failure.
func NewNCQSymFromMap(coeffs map[string]int64) (*NCQSym, error) {
	f := NewNCQSym()
	for key, c := range coeffs {
		opi, err := setcomposition.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("NewNCQSymFromMap: key %q: %w (%v)", key, ErrBadKey, err)
		}
		f.terms[opi.String()] = ncterm{opi: opi, coeff: big.NewInt(c)}
	}

	return f, nil
}

// Len returns the number of stored terms, zero coefficients included.
func (f *NCQSym) Len() int { return len(f.terms) }

// IsZero reports whether every stored coefficient is zero.
func (f *NCQSym) IsZero() bool {
	for _, t := range f.terms {
		if t.coeff.Sign() != 0 {
			return false
		}
	}

	return true
}

// Coefficient returns a copy of the coefficient at the canonical key;
// absent keys read as zero.
func (f *NCQSym) Coefficient(key string) *big.Int {
	if t, ok := f.terms[key]; ok {
		return new(big.Int).Set(t.coeff)
	}

	return new(big.Int)
}

// Coefficients returns a deep copy of the coefficient map.
func (f *NCQSym) Coefficients() map[string]*big.Int {
	out := make(map[string]*big.Int, len(f.terms))
	for key, t := range f.terms {
		out[key] = new(big.Int).Set(t.coeff)
	}

	return out
}

// Add returns the keywise sum f + g.
func (f *NCQSym) Add(g *NCQSym) *NCQSym {
	out := f.clone()
	for key, t := range g.terms {
		out.accumulate(t.opi, key, t.coeff)
	}

	return out
}

// Scale returns k·f. Scaling by zero keeps every key with coefficient
// zero.
func (f *NCQSym) Scale(k *big.Int) *NCQSym {
	out := NewNCQSym()
	for key, t := range f.terms {
		out.terms[key] = ncterm{opi: t.opi, coeff: new(big.Int).Mul(t.coeff, k)}
	}

	return out
}

// Mul returns the product f·g under the bilinear extension of the
// set-composition quasi-shuffle. The product is defined only when every
// supporting pair has disjoint ground sets.
//
// Errors: setcomposition.ErrOverlap when supports clash.
func (f *NCQSym) Mul(g *NCQSym, cache *setcomposition.Cache) (*NCQSym, error) {
	out := NewNCQSym()
	for fkey, ft := range f.terms {
		for gkey, gt := range g.terms {
			shuffle, err := cache.QuasiShuffle(ft.opi, gt.opi)
			if err != nil {
				return nil, fmt.Errorf("Mul: terms %s and %s: %w", fkey, gkey, err)
			}
			pair := new(big.Int).Mul(ft.coeff, gt.coeff)
			for key, mult := range shuffle {
				// Shuffle keys are cache-generated canonical strings.
				opi, _ := setcomposition.Parse(key)
				contrib := new(big.Int).Mul(pair, big.NewInt(mult))
				out.accumulate(opi, key, contrib)
			}
		}
	}

	return out, nil
}

// Comu projects onto the commutative algebra: every M_opi maps to
// M_alpha(opi) with the same coefficient, and images colliding under the
// block-size map accumulate.
func (f *NCQSym) Comu() *QSym {
	out := NewQSym()
	for _, t := range f.terms {
		alpha := t.opi.Alpha()
		out.accumulate(alpha, alpha.String(), t.coeff)
	}

	return out
}

// Equal reports coefficientwise equality; keys missing on either side
// count as zero.
func (f *NCQSym) Equal(g *NCQSym) bool {
	for key, t := range f.terms {
		if t.coeff.Cmp(g.Coefficient(key)) != 0 {
			return false
		}
	}
	for key, t := range g.terms {
		if _, ok := f.terms[key]; !ok && t.coeff.Sign() != 0 {
			return false
		}
	}

	return true
}

// String renders the sum deterministically: non-zero terms ordered by
// ground size and then canonical string, e.g. "M(1|2) + M(2|1)". The
// zero sum prints "0".
func (f *NCQSym) String() string {
	live := make([]ncterm, 0, len(f.terms))
	for _, t := range f.terms {
		if t.coeff.Sign() != 0 {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return zeroForm
	}
	sort.Slice(live, func(i, j int) bool { return live[i].opi.Compare(live[j].opi) < 0 })

	var sb strings.Builder
	for i, t := range live {
		writeTerm(&sb, i == 0, t.coeff, t.opi.String())
	}

	return sb.String()
}

// clone deep-copies the sum.
func (f *NCQSym) clone() *NCQSym {
	out := NewNCQSym()
	for key, t := range f.terms {
		out.terms[key] = ncterm{opi: t.opi, coeff: new(big.Int).Set(t.coeff)}
	}

	return out
}

// accumulate folds one contribution into the sum, creating the term on
// first sight. The coefficient is copied, never aliased.
func (f *NCQSym) accumulate(opi setcomposition.SetComposition, key string, c *big.Int) {
	if t, ok := f.terms[key]; ok {
		t.coeff.Add(t.coeff, c)

		return
	}
	f.terms[key] = ncterm{opi: opi, coeff: new(big.Int).Set(c)}
}

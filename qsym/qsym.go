package qsym

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/katalvlaran/chromatroid/composition"
)

// ErrBadKey indicates a coefficient-map key that does not parse back
// into its indexing object; the canonical round trip is a standing
// invariant of both algebras.
var ErrBadKey = errors.New("qsym: key does not parse")

// zeroForm is what a sum with no contributing term prints as.
const zeroForm = "0"

// QSym is a formal ℤ-linear combination of monomial quasisymmetric
// functions M_alpha indexed by integer compositions. Coefficients are
// exact big integers.
//
// Values behave immutably: every operation returns a new sum and no
// returned *big.Int aliases internal state. Zero coefficients are kept,
// never pruned; they are invisible to Equal, IsZero, and String.
type QSym struct {
	terms map[string]qterm
}

// qterm pairs the parsed composition with its coefficient, so ordering
// and projection never re-parse the key.
type qterm struct {
	alpha composition.Composition
	coeff *big.Int
}

// NewQSym returns the zero sum.
func NewQSym() *QSym {
	return &QSym{terms: make(map[string]qterm)}
}

// NewMonomial returns M_alpha with coefficient 1.
func NewMonomial(alpha composition.Composition) *QSym {
	f := NewQSym()
	f.terms[alpha.String()] = qterm{alpha: alpha, coeff: big.NewInt(1)}

	return f
}

// NewQSymFromMap builds a sum from canonical-string keys. Every key must
// parse as a composition; zero coefficients are retained.
//
// Errors: ErrBadKey wrapping the parse failure.
func NewQSymFromMap(coeffs map[string]int64) (*QSym, error) {
	f := NewQSym()
	for key, c := range coeffs {
		alpha, err := composition.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("NewQSymFromMap: key %q: %w (%v)", key, ErrBadKey, err)
		}
		f.terms[alpha.String()] = qterm{alpha: alpha, coeff: big.NewInt(c)}
	}

	return f, nil
}

// Len returns the number of stored terms, zero coefficients included.
func (f *QSym) Len() int { return len(f.terms) }

// IsZero reports whether every stored coefficient is zero.
func (f *QSym) IsZero() bool {
	for _, t := range f.terms {
		if t.coeff.Sign() != 0 {
			return false
		}
	}

	return true
}

// Coefficient returns a copy of the coefficient at the canonical key;
// absent keys read as zero.
func (f *QSym) Coefficient(key string) *big.Int {
	if t, ok := f.terms[key]; ok {
		return new(big.Int).Set(t.coeff)
	}

	return new(big.Int)
}

// Coefficients returns a deep copy of the coefficient map.
func (f *QSym) Coefficients() map[string]*big.Int {
	out := make(map[string]*big.Int, len(f.terms))
	for key, t := range f.terms {
		out[key] = new(big.Int).Set(t.coeff)
	}

	return out
}

// Add returns the keywise sum f + g.
func (f *QSym) Add(g *QSym) *QSym {
	out := f.clone()
	for key, t := range g.terms {
		out.accumulate(t.alpha, key, t.coeff)
	}

	return out
}

// Scale returns k·f. Scaling by zero keeps every key with coefficient
// zero.
func (f *QSym) Scale(k *big.Int) *QSym {
	out := NewQSym()
	for key, t := range f.terms {
		out.terms[key] = qterm{alpha: t.alpha, coeff: new(big.Int).Mul(t.coeff, k)}
	}

	return out
}

// Mul returns the product f·g under the bilinear extension of the
// quasi-shuffle: every pair of terms contributes its shuffle scaled by
// the product of the two coefficients.
func (f *QSym) Mul(g *QSym, cache *composition.Cache) *QSym {
	out := NewQSym()
	for _, ft := range f.terms {
		for _, gt := range g.terms {
			pair := new(big.Int).Mul(ft.coeff, gt.coeff)
			for key, mult := range cache.QuasiShuffle(ft.alpha, gt.alpha) {
				// Shuffle keys are cache-generated canonical strings.
				alpha, _ := composition.Parse(key)
				contrib := new(big.Int).Mul(pair, big.NewInt(mult))
				out.accumulate(alpha, key, contrib)
			}
		}
	}

	return out
}

// Equal reports coefficientwise equality; keys missing on either side
// count as zero.
func (f *QSym) Equal(g *QSym) bool {
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
// weight and then lexicographically, as in "3*M(1,2) + M(2,1)". The
// zero sum prints "0".
func (f *QSym) String() string {
	live := make([]qterm, 0, len(f.terms))
	for _, t := range f.terms {
		if t.coeff.Sign() != 0 {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return zeroForm
	}
	sort.Slice(live, func(i, j int) bool { return live[i].alpha.Compare(live[j].alpha) < 0 })

	var sb strings.Builder
	for i, t := range live {
		writeTerm(&sb, i == 0, t.coeff, t.alpha.String())
	}

	return sb.String()
}

// clone deep-copies the sum.
func (f *QSym) clone() *QSym {
	out := NewQSym()
	for key, t := range f.terms {
		out.terms[key] = qterm{alpha: t.alpha, coeff: new(big.Int).Set(t.coeff)}
	}

	return out
}

// accumulate folds one contribution into the sum, creating the term on
// first sight. The coefficient is copied, never aliased.
func (f *QSym) accumulate(alpha composition.Composition, key string, c *big.Int) {
	if t, ok := f.terms[key]; ok {
		t.coeff.Add(t.coeff, c)

		return
	}
	f.terms[key] = qterm{alpha: alpha, coeff: new(big.Int).Set(c)}
}

// writeTerm appends one monomial in sign-aware form: leading terms carry
// a bare minus, later ones join with " + " or " - ", and unit
// coefficients drop the numeral.
func writeTerm(sb *strings.Builder, first bool, coeff *big.Int, key string) {
	neg := coeff.Sign() < 0
	switch {
	case first && neg:
		sb.WriteByte('-')
	case !first && neg:
		sb.WriteString(" - ")
	case !first:
		sb.WriteString(" + ")
	}
	abs := new(big.Int).Abs(coeff)
	if abs.Cmp(big.NewInt(1)) != 0 {
		sb.WriteString(abs.String())
		sb.WriteByte('*')
	}
	sb.WriteByte('M')
	sb.WriteString(key)
}

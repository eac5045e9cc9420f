package qsym_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/chromatroid/qsym"
	"github.com/katalvlaran/chromatroid/setcomposition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustNCQSym builds a sum from an int64 coefficient map or stops the
// test.
func mustNCQSym(t *testing.T, coeffs map[string]int64) *qsym.NCQSym {
	t.Helper()
	f, err := qsym.NewNCQSymFromMap(coeffs)
	require.NoError(t, err)

	return f
}

// TestNewNCQSymFromMap_BadKey verifies key validation covers both parse
// failures and block collisions.
func TestNewNCQSymFromMap_BadKey(t *testing.T) {
	_, err := qsym.NewNCQSymFromMap(map[string]int64{"(1|x)": 1})
	assert.ErrorIs(t, err, qsym.ErrBadKey)

	_, err = qsym.NewNCQSymFromMap(map[string]int64{"(1|1,2)": 1})
	assert.ErrorIs(t, err, qsym.ErrBadKey, "blocks must stay disjoint")
}

// TestNCQSym_AddAndScale verifies the linear operations mirror QSym.
func TestNCQSym_AddAndScale(t *testing.T) {
	f := mustNCQSym(t, map[string]int64{"(1|2)": 1})
	g := mustNCQSym(t, map[string]int64{"(1|2)": 2, "(1,2)": -1})

	sum := f.Add(g)
	assert.Equal(t, big.NewInt(3), sum.Coefficient("(1|2)"))
	assert.Equal(t, big.NewInt(-1), sum.Coefficient("(1,2)"))

	doubled := sum.Scale(big.NewInt(2))
	assert.Equal(t, big.NewInt(6), doubled.Coefficient("(1|2)"))
	assert.Equal(t, big.NewInt(1), f.Coefficient("(1|2)"), "receiver untouched")
}

// TestNCQSym_MulDisjointSingletons locks M({1})·M({2}):
// every interleaving and the fused block, coefficient 1 each.
func TestNCQSym_MulDisjointSingletons(t *testing.T) {
	cache := setcomposition.NewCache()
	f := mustNCQSym(t, map[string]int64{"(1)": 1})
	g := mustNCQSym(t, map[string]int64{"(2)": 1})

	prod, err := f.Mul(g, cache)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1), prod.Coefficient("(1|2)"))
	assert.Equal(t, big.NewInt(1), prod.Coefficient("(2|1)"))
	assert.Equal(t, big.NewInt(1), prod.Coefficient("(1,2)"))
	assert.Equal(t, 3, prod.Len())
}

// TestNCQSym_MulOverlapRejected verifies supports must be disjoint.
func TestNCQSym_MulOverlapRejected(t *testing.T) {
	cache := setcomposition.NewCache()
	f := mustNCQSym(t, map[string]int64{"(1)": 1})

	_, err := f.Mul(f, cache)
	assert.ErrorIs(t, err, setcomposition.ErrOverlap)
}

// TestNCQSym_ComuCollision verifies the commutative projection folds
// colliding block-size images: (1|2) and (2|1) both map to (1,1).
func TestNCQSym_ComuCollision(t *testing.T) {
	f := mustNCQSym(t, map[string]int64{"(1|2)": 1, "(2|1)": 1})

	img := f.Comu()
	assert.Equal(t, big.NewInt(2), img.Coefficient("(1,1)"))
	assert.Equal(t, 1, img.Len())
}

// TestNCQSym_ComuMixed verifies projection respects coefficients and
// distinguishes non-colliding shapes.
func TestNCQSym_ComuMixed(t *testing.T) {
	f := mustNCQSym(t, map[string]int64{
		"(1,2|3)": 2,
		"(1,3|2)": -1,
		"(1|2,3)": 4,
	})

	img := f.Comu()
	assert.Equal(t, big.NewInt(1), img.Coefficient("(2,1)"), "2 - 1")
	assert.Equal(t, big.NewInt(4), img.Coefficient("(1,2)"))
}

// TestNCQSym_MulThenComu verifies the projection is a ring map on a
// small sample: comu(f·g) = comu(f)·comu(g) for disjoint supports.
func TestNCQSym_MulThenComu(t *testing.T) {
	scCache := setcomposition.NewCache()
	f := mustNCQSym(t, map[string]int64{"(1)": 1, "(1,2)": 0})
	g := mustNCQSym(t, map[string]int64{"(3|4)": 2})

	prod, err := f.Mul(g, scCache)
	require.NoError(t, err)

	// (1)·(3|4) shuffles into 2-block merges and 3-block interleavings;
	// sizes project onto compositions of 3 with the expected counts.
	img := prod.Comu()
	assert.Equal(t, big.NewInt(2), img.Coefficient("(2,1)"), "fuse into the first block")
	assert.Equal(t, big.NewInt(2), img.Coefficient("(1,2)"), "fuse into the second block")
	assert.Equal(t, big.NewInt(6), img.Coefficient("(1,1,1)"), "three interleavings, scaled by 2")
	assert.Equal(t, big.NewInt(10), sumCoefficients(img), "five shuffle terms, scaled by 2")
}

// sumCoefficients adds all coefficients of a QSym.
func sumCoefficients(f *qsym.QSym) *big.Int {
	total := new(big.Int)
	for _, c := range f.Coefficients() {
		total.Add(total, c)
	}

	return total
}

// TestNCQSym_String locks deterministic rendering by ground size and
// canonical string.
func TestNCQSym_String(t *testing.T) {
	f := mustNCQSym(t, map[string]int64{"(2|1)": 1, "(1)": -2, "(1,2)": 1})

	assert.Equal(t, "-2*M(1) + M(1,2) + M(2|1)", f.String())
}

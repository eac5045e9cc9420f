package chromatic_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/chromatroid/chromatic"
	"github.com/katalvlaran/chromatroid/matroid"
	"github.com/katalvlaran/chromatroid/setcomposition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNCQSymFunc_U21 verifies the two singleton chains of {1,2} are
// the only stable set compositions for U(2,1).
func TestNCQSymFunc_U21(t *testing.T) {
	sc := setcomposition.NewCache()
	m := mustUniform(t, 2, 1)

	f, err := chromatic.NCQSymFunc(m, sc)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, big.NewInt(1), f.Coefficient("(1|2)"))
	assert.Equal(t, big.NewInt(1), f.Coefficient("(2|1)"))
	assert.Equal(t, big.NewInt(0), f.Coefficient("(1,2)"), "the one-block composition ties")
}

// TestNCQSymFunc_U32 counts the stable set compositions of U(3,2): the
// 6 singleton chains plus the 3 two-block splittings whose doubleton
// comes last.
func TestNCQSymFunc_U32(t *testing.T) {
	sc := setcomposition.NewCache()
	m := mustUniform(t, 3, 2)

	f, err := chromatic.NCQSymFunc(m, sc)
	require.NoError(t, err)
	assert.Equal(t, 9, f.Len())
	for key, c := range f.Coefficients() {
		assert.Equal(t, big.NewInt(1), c, key)
	}
	assert.Equal(t, big.NewInt(1), f.Coefficient("(3|1,2)"))
	assert.Equal(t, big.NewInt(0), f.Coefficient("(1,2|3)"))
}

// TestQSymFunc_U32 verifies the commutative image accumulates the
// stable catalog by block-size composition.
func TestQSymFunc_U32(t *testing.T) {
	sc := setcomposition.NewCache()
	m := mustUniform(t, 3, 2)

	f, err := chromatic.QSymFunc(m, sc)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, big.NewInt(3), f.Coefficient("(1,2)"))
	assert.Equal(t, big.NewInt(6), f.Coefficient("(1,1,1)"))
}

// TestPolynomial verifies the Möbius coefficients over small
// independence complexes; inside the complex the intervals are boolean
// lattices, so μ(∅, X) = (-1)^|X|.
func TestPolynomial(t *testing.T) {
	tests := []struct {
		name string
		m    *matroid.Matroid
		want []int64
	}{
		{"U(2,1)", mustUniform(t, 2, 1), []int64{1, -2, 0}},
		{"U(3,2)", mustUniform(t, 3, 2), []int64{1, -3, 3, 0}},
		{"U(3,3)", mustUniform(t, 3, 3), []int64{1, -3, 3, -1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, chromatic.Polynomial(tc.m))
		})
	}
}

// TestPolynomial_Loop verifies loops shrink the complex: the free
// matroid on {1,2} plus the loop 3 has the independence complex of
// U(2,2).
func TestPolynomial_Loop(t *testing.T) {
	m, err := matroid.New([]int{1, 2, 3}, [][]int{{1, 2}})
	require.NoError(t, err)

	assert.Equal(t, []int64{1, -2, 1, 0}, chromatic.Polynomial(m))
}

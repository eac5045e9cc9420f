package composition_test

import (
	"testing"

	"github.com/katalvlaran/chromatroid/composition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustComp builds a composition or fails the test.
func mustComp(t *testing.T, parts ...int) composition.Composition {
	t.Helper()
	c, err := composition.New(parts...)
	require.NoError(t, err)

	return c
}

// TestQuasiShuffle_UnitElement verifies the empty composition acts as the
// unit on both sides.
func TestQuasiShuffle_UnitElement(t *testing.T) {
	cache := composition.NewCache()
	q := mustComp(t, 2, 1)
	var empty composition.Composition

	assert.Equal(t, map[string]int64{"(2,1)": 1}, cache.QuasiShuffle(q, empty), "right unit")
	assert.Equal(t, map[string]int64{"(2,1)": 1}, cache.QuasiShuffle(empty, q), "left unit")
	assert.Equal(t, map[string]int64{"()": 1}, cache.QuasiShuffle(empty, empty), "unit squared")
}

// TestQuasiShuffle_OneByOne locks the smallest nontrivial product:
// (1)·(1) = 2·(1,1) + (2).
func TestQuasiShuffle_OneByOne(t *testing.T) {
	cache := composition.NewCache()
	one := mustComp(t, 1)

	got := cache.QuasiShuffle(one, one)
	assert.Equal(t, map[string]int64{"(1,1)": 2, "(2)": 1}, got)
}

// TestQuasiShuffle_OneByTwo checks (1)·(2) = (1,2) + (2,1) + (3).
func TestQuasiShuffle_OneByTwo(t *testing.T) {
	cache := composition.NewCache()

	got := cache.QuasiShuffle(mustComp(t, 1), mustComp(t, 2))
	assert.Equal(t, map[string]int64{"(1,2)": 1, "(2,1)": 1, "(3)": 1}, got)
}

// TestQuasiShuffle_ElevenByOne expands ((1,1))·((1)) by hand:
// 3·(1,1,1) + (1,2) + (2,1).
func TestQuasiShuffle_ElevenByOne(t *testing.T) {
	cache := composition.NewCache()

	got := cache.QuasiShuffle(mustComp(t, 1, 1), mustComp(t, 1))
	assert.Equal(t, map[string]int64{"(1,1,1)": 3, "(1,2)": 1, "(2,1)": 1}, got)
}

// TestQuasiShuffle_Commutes verifies commutativity across the whole warm
// catalog grid up to weight 3.
func TestQuasiShuffle_Commutes(t *testing.T) {
	cache := composition.NewCache()

	for qn := 0; qn <= 3; qn++ {
		qs, err := cache.All(qn)
		require.NoError(t, err)
		for tn := 0; tn <= 3; tn++ {
			ts, err := cache.All(tn)
			require.NoError(t, err)
			for _, q := range qs {
				for _, tc := range ts {
					assert.Equal(t, cache.QuasiShuffle(q, tc), cache.QuasiShuffle(tc, q),
						"product of %s and %s must commute", q, tc)
				}
			}
		}
	}
}

// TestQuasiShuffle_WeightAdditive checks every result key carries the
// combined weight of the operands.
func TestQuasiShuffle_WeightAdditive(t *testing.T) {
	cache := composition.NewCache()
	q := mustComp(t, 2, 1)
	tc := mustComp(t, 1, 1, 2)

	for key := range cache.QuasiShuffle(q, tc) {
		res, err := composition.Parse(key)
		require.NoError(t, err, "result key %q must be canonical", key)
		assert.Equal(t, q.Weight()+tc.Weight(), res.Weight(), "weights add under the product")
	}
}

// TestQuasiShuffle_TermCount verifies the coefficient mass of a product
// depends only on operand lengths: (1,1)·(1,1) must total 13, the central
// Delannoy number D(2,2).
func TestQuasiShuffle_TermCount(t *testing.T) {
	cache := composition.NewCache()
	q := mustComp(t, 1, 1)

	var total int64
	for _, coeff := range cache.QuasiShuffle(q, q) {
		assert.Positive(t, coeff, "all coefficients are positive")
		total += coeff
	}
	// f(i,j) = f(i-1,j) + f(i,j-1) + f(i-1,j-1), f(·,0) = f(0,·) = 1.
	assert.Equal(t, int64(13), total, "coefficient mass of (1,1)·(1,1)")
}

// TestQuasiShuffle_ReturnsCopy ensures mutating a returned product does
// not poison the memo.
func TestQuasiShuffle_ReturnsCopy(t *testing.T) {
	cache := composition.NewCache()
	one := mustComp(t, 1)

	first := cache.QuasiShuffle(one, one)
	first["(2)"] = 99

	second := cache.QuasiShuffle(one, one)
	assert.Equal(t, int64(1), second["(2)"], "memo must be isolated from caller writes")
}

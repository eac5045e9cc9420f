package matroid_test

import (
	"testing"

	"github.com/katalvlaran/chromatroid/matroid"
	"github.com/katalvlaran/chromatroid/setcomposition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUniform_BasisCounts verifies |bases| = C(n,r) across a small grid.
func TestUniform_BasisCounts(t *testing.T) {
	tests := []struct {
		n, r, want int
	}{
		{0, 0, 1},
		{3, 0, 1},
		{3, 1, 3},
		{4, 2, 6},
		{5, 3, 10},
		{4, 4, 1},
	}
	for _, tc := range tests {
		m := mustUniform(t, tc.n, tc.r)
		assert.Len(t, m.Bases(), tc.want, "U(%d,%d)", tc.n, tc.r)
		assert.Equal(t, tc.r, m.Rank())
	}
}

// TestUniform_Errors rejects impossible parameters.
func TestUniform_Errors(t *testing.T) {
	for _, bad := range [][2]int{{-1, 0}, {2, -1}, {2, 3}} {
		_, err := matroid.Uniform(bad[0], bad[1])
		assert.ErrorIs(t, err, matroid.ErrMalformed, "U(%d,%d)", bad[0], bad[1])
	}
}

// TestSchubert_Dominance verifies the componentwise bound: sh(3, {2,3})
// keeps exactly the 2-subsets below (2,3).
func TestSchubert_Dominance(t *testing.T) {
	m, err := matroid.Schubert(3, []int{2, 3})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {1, 3}, {2, 3}}, m.Bases())
}

// TestSchubert_FullDefiningSet verifies sh(n, {1..n}) is the free
// matroid U(n,n) and sh(n, {n-r+1..n}) is U(n,r).
func TestSchubert_FullDefiningSet(t *testing.T) {
	free, err := matroid.Schubert(3, []int{1, 2, 3})
	require.NoError(t, err)
	assert.True(t, free.Equal(mustUniform(t, 3, 3)))

	top, err := matroid.Schubert(4, []int{3, 4})
	require.NoError(t, err)
	assert.True(t, top.Equal(mustUniform(t, 4, 2)), "a tail defining set bounds nothing")
}

// TestSchubert_Errors rejects defining elements outside {1..n}.
func TestSchubert_Errors(t *testing.T) {
	_, err := matroid.Schubert(3, []int{0, 2})
	assert.ErrorIs(t, err, matroid.ErrMalformed)

	_, err = matroid.Schubert(3, []int{2, 4})
	assert.ErrorIs(t, err, matroid.ErrMalformed)

	_, err = matroid.Schubert(3, []int{2, 2})
	assert.ErrorIs(t, err, matroid.ErrMalformed)
}

// TestAllSchubert_CatalogSize verifies one matroid per subset: 2^n.
func TestAllSchubert_CatalogSize(t *testing.T) {
	for n := 0; n <= 4; n++ {
		all, err := matroid.AllSchubert(n)
		require.NoError(t, err)
		assert.Len(t, all, 1<<uint(n), "n = %d", n)
	}
}

// TestLooplessSchubert_CatalogSize verifies one matroid per subset
// containing n: 2^(n-1), and that none of them has a loop.
func TestLooplessSchubert_CatalogSize(t *testing.T) {
	all, err := matroid.LooplessSchubert(3)
	require.NoError(t, err)
	require.Len(t, all, 4)
	for _, m := range all {
		for _, e := range m.GroundSet() {
			assert.Equal(t, 1, m.RankOf([]int{e}), "%s: element %d must lie in a basis", m, e)
		}
	}
}

// TestNested_SingleLevelIsUniform verifies the trivial flag reproduces
// the uniform matroid.
func TestNested_SingleLevelIsUniform(t *testing.T) {
	m, err := matroid.Nested(3, 2, [][]int{{1, 2, 3}}, []int{2})
	require.NoError(t, err)
	assert.True(t, m.Equal(mustUniform(t, 3, 2)))
}

// TestNested_RankBoundCarves verifies a mid-level bound removes bases:
// |B ∩ {1,2}| ≤ 1 on U(3,2) leaves {1,3} and {2,3}.
func TestNested_RankBoundCarves(t *testing.T) {
	m, err := matroid.Nested(3, 2, [][]int{{1, 2}, {1, 2, 3}}, []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 3}, {2, 3}}, m.Bases())
}

// TestNested_ValidationErrors walks the structural rules one by one.
func TestNested_ValidationErrors(t *testing.T) {
	full := []int{1, 2, 3}
	tests := []struct {
		name  string
		n     int
		rank  int
		chain [][]int
		ranks []int
	}{
		{"empty chain", 3, 2, [][]int{}, []int{}},
		{"empty first level", 3, 2, [][]int{{}, full}, []int{1, 2}},
		{"last level not full", 3, 2, [][]int{{1, 2}}, []int{2}},
		{"length mismatch", 3, 2, [][]int{full}, []int{1, 2}},
		{"last rank not total", 3, 2, [][]int{full}, []int{1}},
		{"rank above size", 3, 4, [][]int{full}, []int{4}},
		{"not a chain", 3, 2, [][]int{{1, 2}, {1, 3}, full}, []int{1, 2, 2}},
		{"inclusion not strict", 3, 2, [][]int{{1, 2}, {1, 2}, full}, []int{1, 2, 2}},
		{"ranks not increasing", 3, 2, [][]int{{1, 2}, full}, []int{2, 2}},
		{"first level without corank", 3, 2, [][]int{{1}, full}, []int{1, 2}},
		{"element outside ground", 3, 2, [][]int{{1, 4}, full}, []int{1, 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matroid.Nested(tc.n, tc.rank, tc.chain, tc.ranks)
			assert.ErrorIs(t, err, matroid.ErrMalformed)
		})
	}
}

// TestGraphic_Triangle verifies the cycle matroid of K3 is U(3,2):
// any two of the three edges span.
func TestGraphic_Triangle(t *testing.T) {
	m, err := matroid.Graphic([]int{1, 2, 3}, [][2]int{{1, 2}, {2, 3}, {1, 3}})
	require.NoError(t, err)
	assert.True(t, m.Equal(mustUniform(t, 3, 2)))
}

// TestGraphic_Path verifies a tree has itself as the unique basis.
func TestGraphic_Path(t *testing.T) {
	m, err := matroid.Graphic([]int{1, 2, 3}, [][2]int{{1, 2}, {2, 3}})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}}, m.Bases(), "both edges, as ground labels {1,2}")
}

// TestGraphic_DisconnectedAndLoops verifies forests respect components
// and self-loops never enter a basis.
func TestGraphic_DisconnectedAndLoops(t *testing.T) {
	// Two components: an edge {1,2} plus a self-loop at 3.
	m, err := matroid.Graphic([]int{1, 2, 3}, [][2]int{{1, 2}, {3, 3}})
	require.NoError(t, err)
	assert.Equal(t, 1, m.Rank(), "|V| - components = 3 - 2")
	assert.Equal(t, [][]int{{1}}, m.Bases())
}

// TestGraphic_Errors rejects unknown endpoints and repeated vertices.
func TestGraphic_Errors(t *testing.T) {
	_, err := matroid.Graphic([]int{1, 2}, [][2]int{{1, 3}})
	assert.ErrorIs(t, err, matroid.ErrMalformed)

	_, err = matroid.Graphic([]int{1, 1}, nil)
	assert.ErrorIs(t, err, matroid.ErrMalformed)
}

// TestDoubleChains_SmallCounts verifies the catalog sizes for d ≤ 3:
// d=2 yields U(2,1) and U(2,2); d=3 adds one chain per two-block
// composition with a doubleton first block.
func TestDoubleChains_SmallCounts(t *testing.T) {
	sc := setcomposition.NewCache()

	for _, tc := range []struct{ d, want int }{{0, 0}, {1, 1}, {2, 2}, {3, 6}} {
		chains, err := matroid.DoubleChains(tc.d, sc)
		require.NoError(t, err)
		assert.Len(t, chains, tc.want, "d = %d", tc.d)
	}
}

// TestLooplessNested_MaterializesLoopless verifies every catalog entry
// builds, has no loop, and the d=2 catalog is exactly U(2,1), U(2,2).
func TestLooplessNested_MaterializesLoopless(t *testing.T) {
	sc := setcomposition.NewCache()

	small, err := matroid.LooplessNested(2, sc)
	require.NoError(t, err)
	require.Len(t, small, 2)
	assert.True(t, small[0].Equal(mustUniform(t, 2, 1)))
	assert.True(t, small[1].Equal(mustUniform(t, 2, 2)))

	all, err := matroid.LooplessNested(3, sc)
	require.NoError(t, err)
	for _, m := range all {
		for _, e := range m.GroundSet() {
			assert.Equal(t, 1, m.RankOf([]int{e}), "%s must be loopless", m)
		}
	}
}

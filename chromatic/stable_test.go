package chromatic_test

import (
	"testing"

	"github.com/katalvlaran/chromatroid/chromatic"
	"github.com/katalvlaran/chromatroid/matroid"
	"github.com/katalvlaran/chromatroid/setcomposition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustSC parses a set composition or stops the test.
func mustSC(t *testing.T, s string) setcomposition.SetComposition {
	t.Helper()
	sc, err := setcomposition.Parse(s)
	require.NoError(t, err)

	return sc
}

// mustUniform builds U(n, r) or stops the test.
func mustUniform(t *testing.T, n, r int) *matroid.Matroid {
	t.Helper()
	m, err := matroid.Uniform(n, r)
	require.NoError(t, err)

	return m
}

// TestIsStable_U32 walks U(3,2) through the score function: bases
// {1,2}, {1,3}, {2,3} score by summed block indices, stability needs a
// unique maximum.
func TestIsStable_U32(t *testing.T) {
	m := mustUniform(t, 3, 2)

	tests := []struct {
		opi  string
		want bool
		note string
	}{
		{"(1,2,3)", false, "all scores 0"},
		{"(1,2|3)", false, "scores 0,1,1: {1,3} and {2,3} tie"},
		{"(3|1,2)", true, "scores 2,1,1: {1,2} alone on top"},
		{"(1|2,3)", true, "scores 1,1,2: {2,3} alone on top"},
		{"(1|2|3)", true, "scores 1,2,3: {2,3} alone on top"},
		{"(3|2|1)", true, "scores 3,2,1: {1,2} alone on top"},
	}
	for _, tc := range tests {
		t.Run(tc.opi, func(t *testing.T) {
			got, err := chromatic.IsStable(m, mustSC(t, tc.opi))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, tc.note)
		})
	}
}

// TestIsStable_SingleBasis verifies a one-basis matroid is stable for
// every covering set composition: the maximum is trivially unique.
func TestIsStable_SingleBasis(t *testing.T) {
	m := mustUniform(t, 2, 2)

	for _, s := range []string{"(1,2)", "(1|2)", "(2|1)"} {
		got, err := chromatic.IsStable(m, mustSC(t, s))
		require.NoError(t, err)
		assert.True(t, got, s)
	}
}

// TestIsStable_ExtraElementsIgnored verifies composition elements
// outside the ground set never score.
func TestIsStable_ExtraElementsIgnored(t *testing.T) {
	m := mustUniform(t, 2, 1)

	got, err := chromatic.IsStable(m, mustSC(t, "(1|2|3)"))
	require.NoError(t, err)
	assert.True(t, got, "element 3 has no bearing on the bases of U(2,1)")
}

// TestIsStable_GroundMismatch verifies an uncovered ground element is a
// usage error, not a silent zero score.
func TestIsStable_GroundMismatch(t *testing.T) {
	m := mustUniform(t, 3, 2)

	_, err := chromatic.IsStable(m, mustSC(t, "(1|2)"))
	assert.ErrorIs(t, err, chromatic.ErrGroundMismatch)
}

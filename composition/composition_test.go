package composition_test

import (
	"testing"

	"github.com/katalvlaran/chromatroid/composition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_ValidParts verifies construction, weight, length and canonical
// rendering of a plain composition.
func TestNew_ValidParts(t *testing.T) {
	c, err := composition.New(2, 1, 3)
	require.NoError(t, err, "positive parts must construct")

	assert.Equal(t, 6, c.Weight(), "weight is the sum of parts")
	assert.Equal(t, 3, c.Len(), "three parts were given")
	assert.Equal(t, []int{2, 1, 3}, c.Parts(), "parts keep their order")
	assert.Equal(t, "(2,1,3)", c.String(), "canonical rendering")
}

// TestNew_Empty verifies that New() and the zero value both denote the
// empty composition "()".
func TestNew_Empty(t *testing.T) {
	c, err := composition.New()
	require.NoError(t, err)

	assert.Equal(t, 0, c.Weight(), "empty composition has weight 0")
	assert.Equal(t, 0, c.Len(), "empty composition has no parts")
	assert.Equal(t, "()", c.String(), "canonical empty form")

	var zero composition.Composition
	assert.True(t, zero.Equal(c), "zero value equals New()")
	assert.Equal(t, "()", zero.String(), "zero value renders the empty form")
}

// TestNew_RejectsNonPositive ensures parts below 1 yield ErrMalformed.
func TestNew_RejectsNonPositive(t *testing.T) {
	_, err := composition.New(2, 0, 1)
	assert.ErrorIs(t, err, composition.ErrMalformed, "zero part must be rejected")

	_, err = composition.New(-3)
	assert.ErrorIs(t, err, composition.ErrMalformed, "negative part must be rejected")
}

// TestParse_RoundTrip locks the round-trip invariant
// Parse(c.String()) == c on a representative table.
func TestParse_RoundTrip(t *testing.T) {
	for _, s := range []string{"()", "(5)", "(1,1)", "(2,1,3)", "(4,1,1,4)"} {
		c, err := composition.Parse(s)
		require.NoError(t, err, "canonical string %q must parse", s)
		assert.Equal(t, s, c.String(), "round trip must reproduce %q", s)

		again, err := composition.Parse(c.String())
		require.NoError(t, err)
		assert.True(t, c.Equal(again), "parse∘format must be the identity on %q", s)
	}
}

// TestParse_LenientSpacing confirms tokens may carry surrounding spaces
// even though the printed form never does.
func TestParse_LenientSpacing(t *testing.T) {
	c, err := composition.Parse(" ( 2, 1 , 3 ) ")
	require.NoError(t, err, "spaced tokens must parse")
	assert.Equal(t, "(2,1,3)", c.String(), "rendering is strict regardless of input spacing")

	e, err := composition.Parse("( )")
	require.NoError(t, err, "spaced empty form must parse")
	assert.Equal(t, 0, e.Len())
}

// TestParse_Malformed enumerates rejected shapes: missing parentheses,
// stray tokens, non-numeric parts and non-positive parts.
func TestParse_Malformed(t *testing.T) {
	for _, s := range []string{"", "2,1,3", "(2,1", "2,1)", "(2,,1)", "(a)", "(2 1)", "(0)", "(-1,2)"} {
		_, err := composition.Parse(s)
		assert.ErrorIs(t, err, composition.ErrMalformed, "input %q must be rejected", s)
	}
}

// TestFirstRest verifies head/tail decomposition and the ErrEmpty guard.
func TestFirstRest(t *testing.T) {
	c, err := composition.New(2, 1, 3)
	require.NoError(t, err)

	head, err := c.First()
	require.NoError(t, err)
	assert.Equal(t, 2, head, "First returns the leading part")

	rest, err := c.Rest()
	require.NoError(t, err)
	assert.Equal(t, "(1,3)", rest.String(), "Rest drops the leading part")
	assert.Equal(t, 4, rest.Weight(), "weight shrinks by the removed part")

	var empty composition.Composition
	_, err = empty.First()
	assert.ErrorIs(t, err, composition.ErrEmpty, "First on empty must error")
	_, err = empty.Rest()
	assert.ErrorIs(t, err, composition.ErrEmpty, "Rest on empty must error")
}

// TestPrepend verifies part prepending, its validation, and that the
// receiver is left untouched.
func TestPrepend(t *testing.T) {
	c, err := composition.New(1, 3)
	require.NoError(t, err)

	p, err := c.Prepend(2)
	require.NoError(t, err)
	assert.Equal(t, "(2,1,3)", p.String(), "head lands in front")
	assert.Equal(t, "(1,3)", c.String(), "receiver is immutable")

	_, err = c.Prepend(0)
	assert.ErrorIs(t, err, composition.ErrMalformed, "non-positive head must be rejected")
}

// TestPartsCopy ensures the Parts accessor hands out a defensive copy.
func TestPartsCopy(t *testing.T) {
	c, err := composition.New(2, 1)
	require.NoError(t, err)

	got := c.Parts()
	got[0] = 99
	assert.Equal(t, []int{2, 1}, c.Parts(), "mutating the copy must not touch the value")
}

// TestCompare locks the total order: weight first, then lexicographic
// parts with shorter prefixes ahead.
func TestCompare(t *testing.T) {
	mk := func(parts ...int) composition.Composition {
		c, err := composition.New(parts...)
		require.NoError(t, err)

		return c
	}

	assert.Equal(t, -1, mk(2).Compare(mk(1, 2)), "lower weight sorts first")
	assert.Equal(t, 1, mk(2, 1).Compare(mk(1, 2)), "same weight falls back to lexicographic parts")
	assert.Equal(t, 1, mk(1, 2).Compare(mk(1, 1, 1)), "second part decides the tie")
	assert.Equal(t, 0, mk(2, 1).Compare(mk(2, 1)), "equal values compare equal")
	assert.Equal(t, -1, mk(1).Compare(mk(1, 1)), "prefix sorts before its extension")
}

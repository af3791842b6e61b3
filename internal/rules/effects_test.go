package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quorum/internal/core"
)

// Suffocation scenario from the rulebook: White lands on f3, the Black
// stone on f4 has no empty neighbor left and is removed. The friendly
// stone on e4 is never a candidate, and g4 survives thanks to its open
// h-file neighbors.
func TestSuffocation(t *testing.T) {
	pos := position(t, core.ColorWhite,
		[]string{"d3", "e3", "e4", "g3"},
		[]string{"f4", "e5", "f5", "g4", "g5"})

	next, eff, err := Apply(pos, Movement{Active: sq(t, "d3"), Center: sq(t, "e3")})
	require.NoError(t, err)
	require.NotNil(t, eff)

	assert.Equal(t, squares(t, "f4"), eff.Suffocated, "exactly f4 suffocates")
	assert.Empty(t, eff.Converted)

	assert.Equal(t, core.ColorNone, next.Board.StoneAt(sq(t, "f4")), "suffocated stone removed")
	assert.Equal(t, core.ColorWhite, next.Board.StoneAt(sq(t, "f3")), "mover keeps its stone")
	assert.Equal(t, core.ColorWhite, next.Board.StoneAt(sq(t, "e4")), "friendly stone untouched")
	assert.Equal(t, core.ColorBlack, next.Board.StoneAt(sq(t, "g4")), "g4 still has empty neighbors")
}

// Conversion scenario from the rulebook: White lands on f6 with a friendly
// stone on d4 immediately opposite across e5, so e5 flips. e6 does not
// flip (d6 is empty) and f5 does not flip (the run f6-f5-f4 has no White
// stone on f4; the White stone on f3 is one square too far).
func TestConversion(t *testing.T) {
	pos := position(t, core.ColorWhite,
		[]string{"h6", "g6", "d4", "f3"},
		[]string{"e5", "e6", "f5"})

	next, eff, err := Apply(pos, Movement{Active: sq(t, "h6"), Center: sq(t, "g6")})
	require.NoError(t, err)
	require.NotNil(t, eff)

	assert.Empty(t, eff.Suffocated)
	assert.Equal(t, squares(t, "e5"), eff.Converted, "exactly e5 converts")

	assert.Equal(t, core.ColorWhite, next.Board.StoneAt(sq(t, "e5")), "converted stone flips color")
	assert.Equal(t, core.ColorBlack, next.Board.StoneAt(sq(t, "e6")), "no flank through empty d6")
	assert.Equal(t, core.ColorBlack, next.Board.StoneAt(sq(t, "f5")), "gapped flank never converts")
}

// Two adjacent Black stones are both fully enclosed the instant White
// lands on d4. Removing either one first would hand the other an empty
// neighbor, so sequential evaluation would suffocate only one of them.
// Membership must come from the frozen post-move board: both go.
func TestSuffocationIsSimultaneous(t *testing.T) {
	pos := position(t, core.ColorWhite,
		[]string{"b3", "b5", "c3", "c6", "d3", "d5", "d6", "e4", "f4"},
		[]string{"c4", "c5", "b4", "b6"})

	next, eff, err := Apply(pos, Movement{Active: sq(t, "f4"), Center: sq(t, "e4")})
	require.NoError(t, err)
	require.NotNil(t, eff)

	assert.ElementsMatch(t, squares(t, "c4", "c5"), eff.Suffocated)
	assert.Empty(t, eff.Converted)

	assert.Equal(t, core.ColorNone, next.Board.StoneAt(sq(t, "c4")))
	assert.Equal(t, core.ColorNone, next.Board.StoneAt(sq(t, "c5")))
	assert.Equal(t, core.ColorBlack, next.Board.StoneAt(sq(t, "b4")), "not adjacent to target")
	assert.Equal(t, core.ColorBlack, next.Board.StoneAt(sq(t, "b6")), "not adjacent to target")
}

// A stone can be suffocated and converted by the same movement; the
// conversion pass runs second, so it ends up as the mover's stone.
func TestSuffocateAndConvertSameStone(t *testing.T) {
	// White lands on d4. Black c4 is enclosed (suffocated) and flanked by
	// the White stone on b4 (converted).
	pos := position(t, core.ColorWhite,
		[]string{"b3", "b4", "b5", "c3", "c5", "d3", "d5", "e4", "f4"},
		[]string{"c4"})

	next, eff, err := Apply(pos, Movement{Active: sq(t, "f4"), Center: sq(t, "e4")})
	require.NoError(t, err)

	assert.Equal(t, squares(t, "c4"), eff.Suffocated)
	assert.Equal(t, squares(t, "c4"), eff.Converted)
	assert.Equal(t, core.ColorWhite, next.Board.StoneAt(sq(t, "c4")))
}

// Effects never touch the mover's stones, even when a friendly stone
// satisfies the suffocation predicate.
func TestEffectsSpareFriendlyStones(t *testing.T) {
	// After White lands on d4, the White stone on c4 has no empty
	// neighbor either, but only opponent stones are candidates.
	pos := position(t, core.ColorWhite,
		[]string{"b3", "b4", "b5", "c3", "c4", "c5", "d3", "d5", "e4", "f4"},
		nil)

	b := pos.Board
	b.Set(sq(t, "f4"), core.ColorNone)
	b.Set(sq(t, "d4"), core.ColorWhite)
	eff := Effects(&b, core.ColorWhite, sq(t, "d4"))

	assert.Empty(t, eff.Suffocated)
	assert.Empty(t, eff.Converted)
}

// Placements relocate nothing, so they resolve no effects at all.
func TestPlacementHasNoEffects(t *testing.T) {
	pos := position(t, core.ColorWhite,
		[]string{"a2", "b1", "b2"},
		[]string{"b3"}) // b3 Black, adjacent to the refilled home block

	next, eff, err := Apply(pos, Placement{})
	require.NoError(t, err)
	assert.Nil(t, eff)
	assert.Equal(t, core.ColorBlack, next.Board.StoneAt(sq(t, "b3")))
}

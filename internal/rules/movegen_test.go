package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quorum/internal/board"
	"quorum/internal/core"
)

// position builds a test position from square labels.
func position(t *testing.T, turn core.Color, white, black []string) board.Position {
	t.Helper()
	pos := board.Position{Turn: turn}
	for _, label := range white {
		pos.Board.Set(sq(t, label), core.ColorWhite)
	}
	for _, label := range black {
		pos.Board.Set(sq(t, label), core.ColorBlack)
	}
	return pos
}

func sq(t *testing.T, label string) board.Square {
	t.Helper()
	s, err := board.ParseSquare(label)
	require.NoError(t, err)
	return s
}

func squares(t *testing.T, labels ...string) []board.Square {
	t.Helper()
	out := make([]board.Square, len(labels))
	for i, label := range labels {
		out[i] = sq(t, label)
	}
	return out
}

func TestLegalMovementsProperties(t *testing.T) {
	pos := board.StartingPosition()
	moves := LegalMovements(&pos)
	require.NotEmpty(t, moves)

	for _, m := range moves {
		assert.Equal(t, core.ColorWhite, pos.Board.StoneAt(m.Active), "active owned by mover")
		assert.Equal(t, core.ColorWhite, pos.Board.StoneAt(m.Center), "center owned by mover")
		assert.True(t, board.Adjacent(m.Active, m.Center), "active and center adjacent")
		assert.True(t, m.Target().InBounds(), "target in bounds")
		assert.Equal(t, core.ColorNone, pos.Board.StoneAt(m.Target()), "target empty")
	}
}

func TestLegalMovementsDeterministic(t *testing.T) {
	pos := board.StartingPosition()
	assert.Equal(t, LegalMovements(&pos), LegalMovements(&pos))
}

func TestLegalMovementsKnownCases(t *testing.T) {
	pos := board.StartingPosition()
	moves := LegalMovements(&pos)

	// b1 through c2 to d3: the opening move of the reference game.
	assert.Contains(t, moves, Movement{Active: sq(t, "b1"), Center: sq(t, "c2")})

	// a2 through b2 would land on the occupied c2.
	assert.NotContains(t, moves, Movement{Active: sq(t, "a2"), Center: sq(t, "b2")})

	// b1 through a1 reflects off the board.
	assert.NotContains(t, moves, Movement{Active: sq(t, "b1"), Center: sq(t, "a1")})

	// No movement may start from an opponent stone or an empty square.
	for _, m := range moves {
		assert.NotEqual(t, core.ColorBlack, pos.Board.StoneAt(m.Active))
		assert.NotEqual(t, core.ColorNone, pos.Board.StoneAt(m.Active))
	}
}

func TestLegalMovementsBlack(t *testing.T) {
	pos := board.StartingPosition()
	pos.Turn = core.ColorBlack
	moves := LegalMovements(&pos)
	require.NotEmpty(t, moves)

	// g8 through e6... g8 reflects through f7 onto e6.
	assert.Contains(t, moves, Movement{Active: sq(t, "g8"), Center: sq(t, "f7")})
	for _, m := range moves {
		assert.Equal(t, core.ColorBlack, pos.Board.StoneAt(m.Active))
	}
}

func TestLegalMovementsNoneAfterGameOver(t *testing.T) {
	pos := board.StartingPosition()
	pos.Winner = core.ColorWhite
	assert.Empty(t, LegalMovements(&pos))
}

func TestLegalPlacement(t *testing.T) {
	pos := board.StartingPosition()

	// Homes start full for both sides: no placement available.
	_, ok := LegalPlacement(&pos)
	assert.False(t, ok)

	// Empty two home squares: placement covers exactly those.
	pos.Board.Set(sq(t, "a1"), core.ColorNone)
	pos.Board.Set(sq(t, "b2"), core.ColorNone)
	p, ok := LegalPlacement(&pos)
	require.True(t, ok)
	assert.ElementsMatch(t, squares(t, "a1", "b2"), p.Squares)

	// Black's homes are unaffected by White's vacancies.
	pos.Turn = core.ColorBlack
	_, ok = LegalPlacement(&pos)
	assert.False(t, ok)
}

func TestHasAnyLegalPlay(t *testing.T) {
	pos := board.StartingPosition()
	assert.True(t, HasAnyLegalPlay(&pos))

	// White's home block is intact but every reflection target is blocked
	// by a Black stone: no movement, no placement.
	stuck := position(t, core.ColorWhite,
		[]string{"a1", "a2", "b1", "b2"},
		[]string{"a3", "b3", "c1", "c2", "c3"})
	assert.False(t, HasAnyLegalPlay(&stuck))

	// Vacating one home square restores a placement.
	stuck.Board.Set(sq(t, "a1"), core.ColorNone)
	assert.True(t, HasAnyLegalPlay(&stuck))
}

package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quorum/internal/board"
	"quorum/internal/core"
)

func newTestGame() *Game {
	white := core.NewPlayer(core.PlayerConfig{Name: "alice"}, core.ColorWhite)
	black := core.NewPlayer(core.PlayerConfig{Name: "bob"}, core.ColorBlack)
	return New(board.StartingQFEN, white, black, core.ColorWhite)
}

func TestNewGame(t *testing.T) {
	g := newTestGame()

	assert.Equal(t, board.StartingQFEN, g.CurrentQFEN())
	assert.Equal(t, board.StartingQFEN, g.InitialQFEN())
	assert.Equal(t, core.ColorWhite, g.NextTurn())
	assert.Equal(t, core.StateOngoing, g.State())
	assert.Empty(t, g.Plays())
	assert.Equal(t, 0, g.Ply())
	assert.Equal(t, 1, g.WholeMove())
	assert.Equal(t, "alice", g.NextPlayer().Name)
}

func TestSnapshotsAndPlays(t *testing.T) {
	g := newTestGame()

	g.AddSnapshot("qfen-after-1", "b1d3", core.ColorBlack)
	g.AddSnapshot("qfen-after-2", "g8e6", core.ColorWhite)

	assert.Equal(t, []string{"b1d3", "g8e6"}, g.Plays())
	assert.Equal(t, "qfen-after-2", g.CurrentQFEN())
	assert.Equal(t, core.ColorWhite, g.NextTurn())
	assert.Equal(t, 2, g.Ply())
	assert.Equal(t, 2, g.WholeMove())
}

func TestUndoPlays(t *testing.T) {
	g := newTestGame()
	g.AddSnapshot("qfen-after-1", "b1d3", core.ColorBlack)
	g.AddSnapshot("qfen-after-2", "g8e6", core.ColorWhite)
	g.SetState(core.StateWhiteWins)
	g.SetLastResult(&PlayResult{Play: "g8e6"})

	require.NoError(t, g.UndoPlays(1))
	assert.Equal(t, "qfen-after-1", g.CurrentQFEN())
	assert.Equal(t, core.StateOngoing, g.State(), "undo reopens the game")
	assert.Nil(t, g.LastResult())

	assert.Error(t, g.UndoPlays(0))
	assert.Error(t, g.UndoPlays(2), "cannot undo past the initial position")

	require.NoError(t, g.UndoPlays(1))
	assert.Equal(t, board.StartingQFEN, g.CurrentQFEN())
}

func TestPGN(t *testing.T) {
	g := newTestGame()
	g.AddSnapshot("q1", "b1d3", core.ColorBlack)
	g.AddSnapshot("q2", "g8e6", core.ColorWhite)
	g.AddSnapshot("q3", "+", core.ColorBlack)

	pgn := g.PGN()
	lines := strings.Split(pgn, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "1. b1d3")
	assert.Contains(t, lines[0], "g8e6")
	assert.Contains(t, lines[1], "2. +")

	g.SetState(core.StateBlackWins)
	assert.Contains(t, g.PGN(), "0-1")
}

func TestPGNEmpty(t *testing.T) {
	assert.Equal(t, "", newTestGame().PGN())
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quorum/internal/board"
	"quorum/internal/core"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := New(nil)
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })
	return svc
}

func createGame(t *testing.T, svc *Service, qfen ...string) string {
	t.Helper()
	id := svc.GenerateGameID()
	err := svc.NewGame(id, core.PlayerConfig{}, core.PlayerConfig{}, qfen...)
	require.NoError(t, err)
	return id
}

func TestNewGame(t *testing.T) {
	svc := newTestService(t)
	id := createGame(t, svc)

	g, err := svc.GetGame(id)
	require.NoError(t, err)
	assert.Equal(t, board.StartingQFEN, g.CurrentQFEN())
	assert.Equal(t, core.ColorWhite, g.NextTurn())
	assert.Equal(t, core.StateOngoing, g.State())

	assert.Error(t, svc.NewGame(id, core.PlayerConfig{}, core.PlayerConfig{}), "duplicate ID")
}

func TestNewGameFromQFEN(t *testing.T) {
	svc := newTestService(t)
	id := createGame(t, svc, "4bbbb/5bbb/6bb/7b/w7/ww1w4/www5/w1ww4 b")

	g, err := svc.GetGame(id)
	require.NoError(t, err)
	assert.Equal(t, core.ColorBlack, g.NextTurn())
}

func TestNewGameRejectsBadQFEN(t *testing.T) {
	svc := newTestService(t)
	err := svc.NewGame("bad", core.PlayerConfig{}, core.PlayerConfig{}, "not a position")
	assert.Error(t, err)
}

func TestMakePlay(t *testing.T) {
	svc := newTestService(t)
	id := createGame(t, svc)

	result, err := svc.MakePlay(id, "b1d3")
	require.NoError(t, err)
	assert.Equal(t, "b1d3", result.Play)
	assert.Equal(t, core.ColorWhite, result.Player)
	assert.Equal(t, core.StateOngoing, result.GameState)
	assert.Equal(t, 0, result.WinProgress)

	g, _ := svc.GetGame(id)
	assert.Equal(t, []string{"b1d3"}, g.Plays())
	assert.Equal(t, core.ColorBlack, g.NextTurn())

	// Black replies with the mirrored jump.
	result, err = svc.MakePlay(id, "g8e6")
	require.NoError(t, err)
	assert.Equal(t, core.ColorBlack, result.Player)
}

func TestMakePlayRejectsIllegal(t *testing.T) {
	svc := newTestService(t)
	id := createGame(t, svc)

	_, err := svc.MakePlay(id, "h8f6")
	assert.Error(t, err, "moving the opponent's stone")

	_, err = svc.MakePlay(id, "+")
	assert.Error(t, err, "placement with full homes")

	_, err = svc.MakePlay(id, "nonsense")
	assert.Error(t, err)

	_, err = svc.MakePlay("missing", "b1d3")
	assert.Error(t, err)

	g, _ := svc.GetGame(id)
	assert.Empty(t, g.Plays(), "rejected plays leave no trace")
}

func TestMakePlayDetectsWin(t *testing.T) {
	svc := newTestService(t)
	// White holds three objective squares; g5 through f5 lands on e5.
	id := createGame(t, svc, "8/8/8/3w1ww1/3ww3/8/8/7b w")

	result, err := svc.MakePlay(id, "g5e5")
	require.NoError(t, err)
	assert.Equal(t, core.StateWhiteWins, result.GameState)
	assert.Equal(t, 4, result.WinProgress)

	g, _ := svc.GetGame(id)
	assert.Equal(t, core.StateWhiteWins, g.State())

	_, err = svc.MakePlay(id, "+")
	assert.Error(t, err, "no plays after the game is over")
}

func TestLegalPlays(t *testing.T) {
	svc := newTestService(t)
	id := createGame(t, svc)

	plays, err := svc.LegalPlays(id)
	require.NoError(t, err)
	assert.Contains(t, plays, "b1d3")
	assert.NotContains(t, plays, "+", "homes start full")

	// After White moves a home stone out, placement becomes available.
	_, err = svc.MakePlay(id, "b1d3")
	require.NoError(t, err)
	_, err = svc.MakePlay(id, "g8e6")
	require.NoError(t, err)

	plays, err = svc.LegalPlays(id)
	require.NoError(t, err)
	assert.Contains(t, plays, "+")
}

func TestUndo(t *testing.T) {
	svc := newTestService(t)
	id := createGame(t, svc)

	_, err := svc.MakePlay(id, "b1d3")
	require.NoError(t, err)
	_, err = svc.MakePlay(id, "g8e6")
	require.NoError(t, err)

	require.NoError(t, svc.Undo(id, 2))

	g, _ := svc.GetGame(id)
	assert.Empty(t, g.Plays())
	assert.Equal(t, board.StartingQFEN, g.CurrentQFEN())

	assert.Error(t, svc.Undo(id, 1), "nothing left to undo")
	assert.Error(t, svc.Undo("missing", 1))
}

func TestDeleteGame(t *testing.T) {
	svc := newTestService(t)
	id := createGame(t, svc)

	require.NoError(t, svc.DeleteGame(id))
	_, err := svc.GetGame(id)
	assert.Error(t, err)
	assert.Error(t, svc.DeleteGame(id))
}

func TestStorageHealthDisabled(t *testing.T) {
	svc := newTestService(t)
	assert.Equal(t, "disabled", svc.GetStorageHealth())
}

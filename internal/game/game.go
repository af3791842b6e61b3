package game

import (
	"fmt"

	"quorum/internal/board"
	"quorum/internal/core"
)

// Snapshot is one position in a game's history, keyed by its QFEN.
type Snapshot struct {
	QFEN         string     // Board state at this point
	PreviousPlay string     // Play that created this position (empty for initial)
	NextTurn     core.Color // Whose turn it is at this position
}

// PlayResult tracks the outcome of a play
type PlayResult struct {
	Play        string
	Player      core.Color
	GameState   core.State
	Suffocated  []string
	Converted   []string
	WinProgress int
}

type Game struct {
	snapshots  []Snapshot
	players    map[core.Color]*core.Player
	state      core.State
	lastResult *PlayResult
}

func New(initialQFEN string, whitePlayer, blackPlayer *core.Player, startingTurn core.Color) *Game {
	return &Game{
		snapshots: []Snapshot{
			{
				QFEN:         initialQFEN,
				PreviousPlay: "", // No play led to initial position
				NextTurn:     startingTurn,
			},
		},
		players: map[core.Color]*core.Player{
			core.ColorWhite: whitePlayer,
			core.ColorBlack: blackPlayer,
		},
		state: core.StateOngoing,
	}
}

func (g *Game) SetLastResult(result *PlayResult) {
	g.lastResult = result
}

func (g *Game) LastResult() *PlayResult {
	return g.lastResult
}

func (g *Game) CurrentSnapshot() Snapshot {
	return g.snapshots[len(g.snapshots)-1]
}

func (g *Game) CurrentQFEN() string {
	return g.CurrentSnapshot().QFEN
}

func (g *Game) NextTurn() core.Color {
	return g.CurrentSnapshot().NextTurn
}

func (g *Game) NextPlayer() *core.Player {
	return g.players[g.NextTurn()]
}

func (g *Game) GetPlayer(c core.Color) *core.Player {
	return g.players[c]
}

func (g *Game) UpdatePlayers(whitePlayer, blackPlayer *core.Player) {
	g.players[core.ColorWhite] = whitePlayer
	g.players[core.ColorBlack] = blackPlayer
}

func (g *Game) AddSnapshot(qfen string, play string, nextTurn core.Color) {
	g.snapshots = append(g.snapshots, Snapshot{
		QFEN:         qfen,
		PreviousPlay: play,
		NextTurn:     nextTurn,
	})
}

func (g *Game) UndoPlays(count int) error {
	if count < 1 {
		return fmt.Errorf("invalid undo count: %d", count)
	}

	availablePlays := len(g.snapshots) - 1
	if availablePlays < count {
		return fmt.Errorf("cannot undo %d plays: only %d plays available", count, availablePlays)
	}

	g.snapshots = g.snapshots[:len(g.snapshots)-count]
	g.state = core.StateOngoing // Reset game state when undoing
	g.lastResult = nil          // Clear last result
	return nil
}

// Plays returns the transcript of plays from the initial position.
func (g *Game) Plays() []string {
	plays := []string{}
	for i := 1; i < len(g.snapshots); i++ {
		if g.snapshots[i].PreviousPlay != "" {
			plays = append(plays, g.snapshots[i].PreviousPlay)
		}
	}
	return plays
}

// Ply is the number of plays made from the initial position.
func (g *Game) Ply() int {
	return len(g.snapshots) - 1
}

// WholeMove is the current move number, counting a White-Black pair as one.
func (g *Game) WholeMove() int {
	return g.Ply()/2 + 1
}

func (g *Game) State() core.State {
	return g.state
}

func (g *Game) SetState(s core.State) {
	g.state = s
}

func (g *Game) InitialQFEN() string {
	if len(g.snapshots) > 0 {
		return g.snapshots[0].QFEN
	}
	return board.StartingQFEN
}

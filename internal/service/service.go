package service

import (
	"fmt"
	"sync"
	"time"

	"quorum/internal/board"
	"quorum/internal/core"
	"quorum/internal/game"
	"quorum/internal/rules"
	"quorum/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Service is a pure state manager for Quorum games with optional
// persistence.
type Service struct {
	games  map[string]*game.Game
	mu     sync.RWMutex
	store  *storage.Store // nil if persistence disabled
	waiter *WaitRegistry
	log    zerolog.Logger
}

// New creates a new service instance with optional storage
func New(store *storage.Store) (*Service, error) {
	return &Service{
		games:  make(map[string]*game.Game),
		store:  store,
		waiter: NewWaitRegistry(),
		log:    log.With().Str("component", "service").Logger(),
	}, nil
}

// NewGame creates a game with player configuration. An optional QFEN
// resumes from a given position instead of the starting layout.
func (s *Service) NewGame(id string, whiteConfig, blackConfig core.PlayerConfig, qfen ...string) error {
	initialQFEN := board.StartingQFEN
	if len(qfen) > 0 && qfen[0] != "" {
		initialQFEN = qfen[0]
	}

	pos, err := board.ParseQFEN(initialQFEN)
	if err != nil {
		return fmt.Errorf("invalid initial position: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[id]; exists {
		return fmt.Errorf("game %s already exists", id)
	}

	whitePlayer := core.NewPlayer(whiteConfig, core.ColorWhite)
	blackPlayer := core.NewPlayer(blackConfig, core.ColorBlack)

	g := game.New(initialQFEN, whitePlayer, blackPlayer, pos.Turn)

	// A resumed position may already be decided.
	if winner := rules.Winner(&pos.Board); winner != core.ColorNone {
		g.SetState(core.StateForWinner(winner))
	} else if !rules.HasAnyLegalPlay(&pos) {
		g.SetState(core.StateStalemate)
	}

	s.games[id] = g
	s.log.Info().Str("game_id", id).Str("qfen", initialQFEN).Msg("game created")

	// Persist if storage enabled
	if s.store != nil {
		record := storage.GameRecord{
			GameID:        id,
			InitialQFEN:   initialQFEN,
			WhitePlayerID: whitePlayer.ID,
			WhiteName:     whitePlayer.Name,
			BlackPlayerID: blackPlayer.ID,
			BlackName:     blackPlayer.Name,
			StartTimeUTC:  time.Now().UTC(),
		}
		s.store.RecordNewGame(record)
	}

	return nil
}

// GetGame retrieves a game by ID
func (s *Service) GetGame(gameID string) (*game.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("game not found: %s", gameID)
	}
	return g, nil
}

// GenerateGameID creates a new unique game ID
func (s *Service) GenerateGameID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Ensure UUID uniqueness (handle potential conflicts)
	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}

// GetCurrentPosition returns the parsed current position of a game
func (s *Service) GetCurrentPosition(gameID string) (*board.Position, error) {
	g, err := s.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	pos, err := board.ParseQFEN(g.CurrentQFEN())
	if err != nil {
		return nil, fmt.Errorf("corrupt game position: %w", err)
	}
	// QFEN carries no winner field; recover it so play generation stops on
	// decided positions.
	pos.Winner = rules.Winner(&pos.Board)
	return &pos, nil
}

// LegalPlays returns the transcript notation of every legal play in the
// game's current position, movements first, placement last.
func (s *Service) LegalPlays(gameID string) ([]string, error) {
	pos, err := s.GetCurrentPosition(gameID)
	if err != nil {
		return nil, err
	}

	var plays []string
	for _, m := range rules.LegalMovements(pos) {
		plays = append(plays, m.String())
	}
	if p, ok := rules.LegalPlacement(pos); ok {
		plays = append(plays, p.String())
	}
	return plays, nil
}

// MakePlay validates and applies a play in transcript notation, advancing
// the game and recording the new snapshot.
func (s *Service) MakePlay(gameID, playText string) (*game.PlayResult, error) {
	play, err := rules.ParsePlay(playText)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("game not found: %s", gameID)
	}
	if g.State() != core.StateOngoing {
		return nil, fmt.Errorf("game is over: %s", g.State())
	}

	pos, err := board.ParseQFEN(g.CurrentQFEN())
	if err != nil {
		return nil, fmt.Errorf("corrupt game position: %w", err)
	}
	mover := pos.Turn

	next, eff, err := rules.Apply(pos, play)
	if err != nil {
		return nil, err
	}

	result := &game.PlayResult{
		Play:        play.String(),
		Player:      mover,
		GameState:   core.StateOngoing,
		WinProgress: rules.WinProgress(&next.Board),
	}
	if eff != nil {
		for _, sq := range eff.Suffocated {
			result.Suffocated = append(result.Suffocated, sq.String())
		}
		for _, sq := range eff.Converted {
			result.Converted = append(result.Converted, sq.String())
		}
	}

	switch {
	case next.Winner != core.ColorNone:
		result.GameState = core.StateForWinner(next.Winner)
	case !rules.HasAnyLegalPlay(&next):
		// The rules leave a playless position undefined; the game is
		// closed as a stalemate rather than guessed at.
		result.GameState = core.StateStalemate
	}

	g.AddSnapshot(next.QFEN(), result.Play, next.Turn)
	g.SetState(result.GameState)
	g.SetLastResult(result)

	s.log.Info().
		Str("game_id", gameID).
		Str("play", result.Play).
		Str("player", mover.String()).
		Str("state", result.GameState.String()).
		Msg("play applied")

	// Notify waiting clients about the state change
	s.waiter.NotifyGame(gameID, len(g.Plays()))

	// Persist if storage enabled
	if s.store != nil {
		record := storage.PlayRecord{
			GameID:      gameID,
			PlayNumber:  len(g.Plays()),
			PlayText:    result.Play,
			QFENAfter:   next.QFEN(),
			PlayerColor: mover.String(),
			PlayTimeUTC: time.Now().UTC(),
		}
		s.store.RecordPlay(record)
	}

	return result, nil
}

// Undo removes the specified number of plays from game history
func (s *Service) Undo(gameID string, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return fmt.Errorf("game not found: %s", gameID)
	}

	originalPlayCount := len(g.Plays())

	if err := g.UndoPlays(count); err != nil {
		return err
	}

	// Notify waiting clients about the undo
	s.waiter.NotifyGame(gameID, len(g.Plays()))

	// Delete undone plays from storage if enabled
	if s.store != nil {
		remainingPlays := originalPlayCount - count
		s.store.DeleteUndonePlays(gameID, remainingPlays)
	}

	return nil
}

// DeleteGame removes a game from memory
func (s *Service) DeleteGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return fmt.Errorf("game not found: %s", gameID)
	}

	// Notify and remove all waiters before deletion
	s.waiter.RemoveGame(gameID)

	delete(s.games, gameID)
	return nil
}

// Waiter exposes the long-poll registry for transports
func (s *Service) Waiter() *WaitRegistry {
	return s.waiter
}

// GetStorageHealth returns the storage component status
func (s *Service) GetStorageHealth() string {
	if s.store == nil {
		return "disabled"
	}
	if s.store.IsHealthy() {
		return "ok"
	}
	return "degraded"
}

// Close cleans up resources
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.waiter.Shutdown(2 * time.Second)

	// Clear all games
	s.games = make(map[string]*game.Game)

	// Close storage if enabled
	if s.store != nil {
		return s.store.Close()
	}

	return nil
}

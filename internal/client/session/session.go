package session

import (
	"quorum/internal/client/api"
)

// Session holds the client's mutable REPL state.
type Session struct {
	APIBaseURL       string
	Client           *api.Client
	CurrentGame      string
	CurrentGameState *api.GameResponse
	LastPlayCount    int
	Verbose          bool
}

func (s *Session) GetAPIBaseURL() string { return s.APIBaseURL }

func (s *Session) SetAPIBaseURL(url string) { s.APIBaseURL = url }

func (s *Session) GetCurrentGame() string { return s.CurrentGame }

func (s *Session) SetCurrentGame(id string) { s.CurrentGame = id }

func (s *Session) GetLastPlayCount() int { return s.LastPlayCount }

func (s *Session) SetLastPlayCount(n int) { s.LastPlayCount = n }

func (s *Session) GetClient() *api.Client { return s.Client }

func (s *Session) IsVerbose() bool { return s.Verbose }

func (s *Session) SetGameState(g *api.GameResponse) { s.CurrentGameState = g }

package http

import (
	"quorum/internal/core"
)

// Request types

type CreateGameRequest struct {
	White core.PlayerConfig `json:"white"`
	Black core.PlayerConfig `json:"black"`
	QFEN  string            `json:"qfen,omitempty" validate:"omitempty,max=100"`
}

type PlayRequest struct {
	Play string `json:"play" validate:"required,min=1,max=5"` // "+" or origin-target like "b1d3"
}

type UndoRequest struct {
	Count int `json:"count,omitempty" validate:"omitempty,min=1,max=500"` // default: 1
}

// Response types

type GameResponse struct {
	GameID      string      `json:"gameId"`
	QFEN        string      `json:"qfen"`
	Turn        string      `json:"turn"`  // "w" or "b"
	State       string      `json:"state"` // "ongoing", "white_wins", etc
	Plays       []string    `json:"plays"`
	WinProgress int         `json:"winProgress"`
	Players     PlayersInfo `json:"players"`
	LastPlay    *PlayInfo   `json:"lastPlay,omitempty"`
}

type PlayersInfo struct {
	White *core.Player `json:"white"`
	Black *core.Player `json:"black"`
}

type PlayInfo struct {
	Play       string   `json:"play"`
	Player     string   `json:"player"` // "w" or "b"
	Suffocated []string `json:"suffocated,omitempty"`
	Converted  []string `json:"converted,omitempty"`
}

type BoardResponse struct {
	QFEN  string `json:"qfen"`
	Board string `json:"board"` // ASCII representation
}

type LegalPlaysResponse struct {
	Plays []string `json:"plays"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// Helper functions

func stateToString(s core.State) string {
	switch s {
	case core.StateOngoing:
		return "ongoing"
	case core.StateWhiteWins:
		return "white_wins"
	case core.StateBlackWins:
		return "black_wins"
	case core.StateStalemate:
		return "stalemate"
	default:
		return "unknown"
	}
}

// Error codes
const (
	ErrGameNotFound      = "GAME_NOT_FOUND"
	ErrIllegalPlay       = "ILLEGAL_PLAY"
	ErrGameOver          = "GAME_OVER"
	ErrRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrInvalidContent    = "INVALID_CONTENT_TYPE"
	ErrInvalidRequest    = "INVALID_REQUEST"
	ErrInvalidQFEN       = "INVALID_QFEN"
	ErrInternalError     = "INTERNAL_ERROR"
)

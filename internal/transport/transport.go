package transport

import (
	"quorum/internal/board"
	"quorum/internal/core"
	"quorum/internal/game"
)

// View abstracts display/output operations so transports can drive any
// frontend that renders positions and play results.
type View interface {
	DisplayPosition(pos *board.Position)
	ShowMessage(msg string)
	ShowError(err error)
	ShowGameHistory(g *game.Game)
	ShowPlayResult(result *game.PlayResult)
	ShowGameOver(state core.State)
	ShowPrompt(prompt string)
}

package http

import (
	"errors"
	"strconv"
	"strings"

	"quorum/internal/core"
	"quorum/internal/game"
	"quorum/internal/rules"

	"github.com/gofiber/fiber/v2"
)

// CreateGame creates a new game, optionally resuming from a QFEN
func (h *HTTPHandler) CreateGame(c *fiber.Ctx) error {
	req, ok := c.Locals("validatedBody").(*CreateGameRequest)
	if !ok {
		req = &CreateGameRequest{}
	}

	gameID := h.svc.GenerateGameID()

	var qfenArg []string
	if req.QFEN != "" {
		qfenArg = []string{req.QFEN}
	}

	if err := h.svc.NewGame(gameID, req.White, req.Black, qfenArg...); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "failed to create game",
			Code:    ErrInvalidQFEN,
			Details: err.Error(),
		})
	}

	g, _ := h.svc.GetGame(gameID)
	return c.Status(fiber.StatusCreated).JSON(h.buildGameResponse(gameID, g))
}

// GetGame retrieves current game state
func (h *HTTPHandler) GetGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	g, err := h.svc.GetGame(gameID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "game not found",
			Code:  ErrGameNotFound,
		})
	}

	return c.JSON(h.buildGameResponse(gameID, g))
}

// MakePlay submits a play in transcript notation
func (h *HTTPHandler) MakePlay(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	req, ok := c.Locals("validatedBody").(*PlayRequest)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid request body",
			Code:  ErrInvalidRequest,
		})
	}

	g, err := h.svc.GetGame(gameID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "game not found",
			Code:  ErrGameNotFound,
		})
	}

	// Check game state BEFORE making the play
	if g.State() != core.StateOngoing {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "game is over",
			Code:    ErrGameOver,
			Details: g.State().String(),
		})
	}

	result, err := h.svc.MakePlay(gameID, req.Play)
	if err != nil {
		resp := ErrorResponse{
			Error:   "illegal play",
			Code:    ErrIllegalPlay,
			Details: err.Error(),
		}

		var illegal *rules.IllegalPlayError
		if errors.As(err, &illegal) {
			resp.Details = string(illegal.Rule) + ": " + illegal.Reason
		}
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}

	g, _ = h.svc.GetGame(gameID)
	response := h.buildGameResponse(gameID, g)
	response.LastPlay = playInfo(result)

	return c.JSON(response)
}

// UndoPlay undoes one or more plays
func (h *HTTPHandler) UndoPlay(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	count := 1
	if req, ok := c.Locals("validatedBody").(*UndoRequest); ok && req.Count > 0 {
		count = req.Count
	}

	if err := h.svc.Undo(gameID, count); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "game not found",
				Code:  ErrGameNotFound,
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "cannot undo plays",
			Code:    ErrInvalidRequest,
			Details: err.Error(),
		})
	}

	g, _ := h.svc.GetGame(gameID)
	return c.JSON(h.buildGameResponse(gameID, g))
}

// DeleteGame ends and cleans up a game
func (h *HTTPHandler) DeleteGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	if err := h.svc.DeleteGame(gameID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "game not found",
			Code:  ErrGameNotFound,
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetBoard returns ASCII representation of the board
func (h *HTTPHandler) GetBoard(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	g, err := h.svc.GetGame(gameID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "game not found",
			Code:  ErrGameNotFound,
		})
	}

	pos, err := h.svc.GetCurrentPosition(gameID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "corrupt game position",
			Code:    ErrInternalError,
			Details: err.Error(),
		})
	}

	return c.JSON(BoardResponse{
		QFEN:  g.CurrentQFEN(),
		Board: pos.ToASCII(),
	})
}

// GetLegalPlays lists every legal play in the current position
func (h *HTTPHandler) GetLegalPlays(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	plays, err := h.svc.LegalPlays(gameID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "game not found",
			Code:  ErrGameNotFound,
		})
	}

	return c.JSON(LegalPlaysResponse{Plays: plays})
}

// WaitForPlay long-polls until the game's play count moves past the
// client's last known count, or the wait times out
func (h *HTTPHandler) WaitForPlay(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	g, err := h.svc.GetGame(gameID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "game not found",
			Code:  ErrGameNotFound,
		})
	}

	known := len(g.Plays())
	if v := c.Query("plays"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			known = n
		}
	}

	// Already ahead of the client: answer immediately.
	if len(g.Plays()) != known || g.State() != core.StateOngoing {
		return c.JSON(h.buildGameResponse(gameID, g))
	}

	notify := h.svc.Waiter().RegisterWait(gameID, known, c.Context())
	<-notify

	g, err = h.svc.GetGame(gameID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "game deleted while waiting",
			Code:  ErrGameNotFound,
		})
	}
	return c.JSON(h.buildGameResponse(gameID, g))
}

// Helper: Build standard game response
func (h *HTTPHandler) buildGameResponse(gameID string, g *game.Game) GameResponse {
	response := GameResponse{
		GameID: gameID,
		QFEN:   g.CurrentQFEN(),
		Turn:   g.NextTurn().String(),
		State:  stateToString(g.State()),
		Plays:  g.Plays(),
		Players: PlayersInfo{
			White: g.GetPlayer(core.ColorWhite),
			Black: g.GetPlayer(core.ColorBlack),
		},
	}

	if pos, err := h.svc.GetCurrentPosition(gameID); err == nil {
		response.WinProgress = rules.WinProgress(&pos.Board)
	}
	if result := g.LastResult(); result != nil {
		response.LastPlay = playInfo(result)
	}

	return response
}

func playInfo(result *game.PlayResult) *PlayInfo {
	return &PlayInfo{
		Play:       result.Play,
		Player:     result.Player.String(),
		Suffocated: result.Suffocated,
		Converted:  result.Converted,
	}
}

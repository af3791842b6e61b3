package cli

import (
	"fmt"
	"strconv"
	"strings"

	"quorum/internal/cli"
	"quorum/internal/core"
	"quorum/internal/service"
)

type CLIHandler struct {
	svc    *service.Service
	view   *cli.CLI
	gameID string
}

func New(svc *service.Service, view *cli.CLI) *CLIHandler {
	return &CLIHandler{
		svc:  svc,
		view: view,
	}
}

// Main game loop - simple command processing
func (h *CLIHandler) Run() {
	for {
		// Generate prompt based on current game state
		prompt := h.getPrompt()
		h.view.ShowPrompt(prompt)

		// Get command (blocking)
		cmd, err := h.view.GetCommand()
		if err != nil {
			break
		}

		// Process command - returns false to exit
		if !h.ProcessCommand(cmd) {
			break
		}
	}
}

// Generates the appropriate command prompt
func (h *CLIHandler) getPrompt() string {
	prompt := "> "
	if h.gameID != "" {
		g, err := h.svc.GetGame(h.gameID)
		if err == nil && g.State() == core.StateOngoing {
			// Always show whose turn it is
			prompt = fmt.Sprintf("[%s]> ", g.NextTurn())
		}
	}
	return prompt
}

// Handles user commands - returns false to exit
func (h *CLIHandler) ProcessCommand(cmd *cli.Command) bool {
	switch cmd.Type {
	case cli.CmdQuit:
		return false

	case cli.CmdNone:
		return true

	case cli.CmdNew:
		return h.handleNewGame("")

	case cli.CmdResume:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: resume <QFEN string>")
			return true
		}
		qfen := strings.Join(cmd.Args, " ")
		return h.handleNewGame(qfen)

	case cli.CmdPlay:
		if h.gameID == "" {
			h.view.ShowMessage("No active game. Use 'new' or 'resume <QFEN>'.")
			return true
		}

		result, err := h.svc.MakePlay(h.gameID, cmd.Args[0])
		if err != nil {
			h.view.ShowError(fmt.Errorf("invalid play: %v", err))
			return true
		}

		h.view.ShowPlayResult(result)

		pos, _ := h.svc.GetCurrentPosition(h.gameID)
		h.view.DisplayPosition(pos)

		if result.GameState != core.StateOngoing {
			h.view.ShowGameOver(result.GameState)
			h.gameID = ""
		}

	case cli.CmdLegal:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}
		plays, err := h.svc.LegalPlays(h.gameID)
		if err != nil {
			h.view.ShowError(err)
			return true
		}
		h.view.ShowLegalPlays(plays)

	case cli.CmdUndo:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}

		// Parse undo count
		count := 1
		if len(cmd.Args) > 0 {
			if n, err := strconv.Atoi(cmd.Args[0]); err == nil && n > 0 {
				count = n
			} else {
				h.view.ShowMessage("Invalid undo count. Usage: undo [count]")
				return true
			}
		}

		if err := h.svc.Undo(h.gameID, count); err != nil {
			h.view.ShowError(err)
		} else {
			if count == 1 {
				h.view.ShowMessage("Play undone")
			} else {
				h.view.ShowMessage(fmt.Sprintf("%d plays undone", count))
			}

			pos, _ := h.svc.GetCurrentPosition(h.gameID)
			h.view.DisplayPosition(pos)
		}

	case cli.CmdStyle:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: style <circles|ascii|brown|green>")
			return true
		}

		style := cli.DisplayStyle(cmd.Args[0])
		if err := h.view.SetStyle(style); err != nil {
			h.view.ShowError(err)
		} else {
			h.view.ShowMessage(fmt.Sprintf("Display style set to: %s", style))
			if h.gameID != "" {
				pos, _ := h.svc.GetCurrentPosition(h.gameID)
				h.view.DisplayPosition(pos)
			}
		}

	case cli.CmdVerbose:
		verbose := h.view.ToggleVerbose()
		h.view.ShowMessage(fmt.Sprintf("Verbose mode: %t", verbose))

	case cli.CmdHistory:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}
		g, _ := h.svc.GetGame(h.gameID)
		h.view.ShowGameHistory(g)

	case cli.CmdPGN:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}
		g, _ := h.svc.GetGame(h.gameID)
		h.view.ShowPGN(g)

	case cli.CmdHelp:
		h.view.ShowHelp()
	}

	return true
}

// Starts a new game, optionally from a QFEN position
func (h *CLIHandler) handleNewGame(qfen string) bool {
	h.view.ShowPrompt("White player name (optional): ")
	whiteName := h.view.ReadLine()
	h.view.ShowPrompt("Black player name (optional): ")
	blackName := h.view.ReadLine()

	h.gameID = h.svc.GenerateGameID()
	var qfenArray []string
	if qfen != "" {
		qfenArray = []string{qfen}
	}

	whiteCfg := core.PlayerConfig{Name: whiteName}
	blackCfg := core.PlayerConfig{Name: blackName}

	if err := h.svc.NewGame(h.gameID, whiteCfg, blackCfg, qfenArray...); err != nil {
		h.view.ShowError(fmt.Errorf("could not start the game: %v", err))
		h.gameID = ""
		return true
	}

	h.view.ShowMessage("Game started.")
	pos, _ := h.svc.GetCurrentPosition(h.gameID)
	h.view.DisplayPosition(pos)

	g, _ := h.svc.GetGame(h.gameID)
	if g.State() != core.StateOngoing {
		h.view.ShowGameOver(g.State())
		h.gameID = ""
	}

	return true
}

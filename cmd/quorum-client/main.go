// Package main implements an interactive debugging client for the Quorum server API.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"quorum/internal/client/api"
	"quorum/internal/client/commands"
	"quorum/internal/client/display"
	"quorum/internal/client/session"

	"github.com/chzyer/readline"
)

func main() {
	s := &session.Session{
		APIBaseURL: "http://localhost:8080",
		Client:     api.New("http://localhost:8080"),
		Verbose:    false,
	}

	// Initialize readline
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          display.Prompt("quorum"),
		HistoryFile:     ".quorum_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Printf("%s%s%s\n", display.Red, err.Error(), display.Reset)
		os.Exit(1)
	}
	defer rl.Close()

	fmt.Printf("%sQuorum Debug Client%s\n", display.Cyan, display.Reset)
	fmt.Printf("%sAPI: %s%s\n", display.Cyan, s.APIBaseURL, display.Reset)
	fmt.Printf("Type 'help' for commands\n\n")

	registry := commands.NewRegistry(s)

	for {
		// Build enhanced prompt
		prompt := buildPrompt(s)
		rl.SetPrompt(prompt)

		line, err := rl.Readline()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line == "exit" || line == "quit" || line == "x" {
			break
		}

		// Check for verbose flag
		if strings.HasSuffix(line, " -v") {
			s.Verbose = true
			line = strings.TrimSuffix(line, " -v")
		} else {
			s.Verbose = false
		}

		registry.Execute(line)
	}
}

func buildPrompt(s *session.Session) string {
	promptStr := "quorum"

	if s.CurrentGame != "" {
		gameLabel := s.CurrentGame
		if len(gameLabel) > 8 {
			gameLabel = gameLabel[:8]
		}
		promptStr += fmt.Sprintf("%s [%s%s%s]",
			display.Yellow, display.White, gameLabel, display.Yellow)
	}

	// Add game state if available
	if s.CurrentGameState != nil {
		promptStr += fmt.Sprintf(" - Turn:%s", display.ColorForTurn(s.CurrentGameState.Turn))
		if s.CurrentGameState.State != "ongoing" {
			promptStr += fmt.Sprintf(" (%s)", s.CurrentGameState.State)
		}
	}

	return display.Prompt(promptStr)
}

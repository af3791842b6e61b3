package commands

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"quorum/internal/client/api"
	"quorum/internal/client/display"
)

func (r *Registry) registerGameCommands() {
	r.Register(&Command{
		Name:        "new",
		ShortName:   "n",
		Description: "Create a new game",
		Usage:       "new",
		Handler:     newGameHandler,
	})

	r.Register(&Command{
		Name:        "join",
		ShortName:   "j",
		Description: "Join/set current game ID",
		Usage:       "join <gameId>",
		Handler:     joinGameHandler,
	})

	r.Register(&Command{
		Name:        "play",
		ShortName:   "m",
		Description: "Make a play",
		Usage:       "play <origin-target | +>",
		Handler:     playHandler,
	})

	r.Register(&Command{
		Name:        "place",
		ShortName:   "+",
		Description: "Place stones on all empty home squares",
		Usage:       "place",
		Handler:     placeHandler,
	})

	r.Register(&Command{
		Name:        "legal",
		ShortName:   "l",
		Description: "List legal plays",
		Usage:       "legal",
		Handler:     legalHandler,
	})

	r.Register(&Command{
		Name:        "undo",
		ShortName:   "u",
		Description: "Undo plays",
		Usage:       "undo [count]",
		Handler:     undoHandler,
	})

	r.Register(&Command{
		Name:        "show",
		ShortName:   "h",
		Description: "Show board and game state",
		Usage:       "show",
		Handler:     showBoardHandler,
	})

	r.Register(&Command{
		Name:        "state",
		ShortName:   "s",
		Description: "Show raw game JSON",
		Usage:       "state",
		Handler:     gameStateHandler,
	})

	r.Register(&Command{
		Name:        "delete",
		ShortName:   "d",
		Description: "Delete a game",
		Usage:       "delete [gameId]",
		Handler:     deleteGameHandler,
	})

	r.Register(&Command{
		Name:        "poll",
		ShortName:   "p",
		Description: "Long-poll for game updates",
		Usage:       "poll",
		Handler:     pollHandler,
	})
}

func newGameHandler(s Session, args []string) error {
	scanner := bufio.NewScanner(os.Stdin)
	c := s.GetClient()

	fmt.Println("\n" + display.Cyan + "Creating new game..." + display.Reset)

	fmt.Print(display.Yellow + "White player name [White]: " + display.Reset)
	scanner.Scan()
	whiteName := strings.TrimSpace(scanner.Text())

	fmt.Print(display.Yellow + "Black player name [Black]: " + display.Reset)
	scanner.Scan()
	blackName := strings.TrimSpace(scanner.Text())

	// Starting position
	fmt.Print(display.Yellow + "Starting position (QFEN) [default]: " + display.Reset)
	scanner.Scan()
	qfen := strings.TrimSpace(scanner.Text())

	req := &api.CreateGameRequest{
		White: api.PlayerConfig{Name: whiteName},
		Black: api.PlayerConfig{Name: blackName},
		QFEN:  qfen,
	}

	resp, err := c.CreateGame(req)
	if err != nil {
		return err
	}

	s.SetCurrentGame(resp.GameID)
	s.SetLastPlayCount(len(resp.Plays))
	s.SetGameState(resp)

	fmt.Printf("%sGame created: %s%s\n", display.Green, resp.GameID, display.Reset)
	fmt.Printf("%sCurrent game set to: %s%s\n", display.Cyan, resp.GameID, display.Reset)

	return nil
}

func joinGameHandler(s Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: join <gameId>")
	}

	gameID := args[0]
	c := s.GetClient()

	// Verify game exists
	resp, err := c.GetGame(gameID)
	if err != nil {
		return err
	}

	s.SetCurrentGame(gameID)
	s.SetLastPlayCount(len(resp.Plays))
	s.SetGameState(resp)

	fmt.Printf("%sJoined game: %s%s\n", display.Green, gameID, display.Reset)
	fmt.Printf("Turn: %s | State: %s | Plays: %d\n", resp.Turn, resp.State, len(resp.Plays))

	return nil
}

func playHandler(s Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: play <origin-target | +>")
	}
	return submitPlay(s, args[0])
}

func placeHandler(s Session, args []string) error {
	return submitPlay(s, "+")
}

func submitPlay(s Session, play string) error {
	gameID := s.GetCurrentGame()
	if gameID == "" {
		return fmt.Errorf("no current game, use 'new' or 'join <gameId>'")
	}

	c := s.GetClient()

	resp, err := c.MakePlay(gameID, play)
	if err != nil {
		return err
	}

	s.SetLastPlayCount(len(resp.Plays))
	s.SetGameState(resp)
	fmt.Printf("%sPlay accepted%s\n", display.Green, display.Reset)

	if resp.LastPlay != nil {
		if len(resp.LastPlay.Suffocated) > 0 {
			fmt.Printf("%sSuffocated: %s%s\n", display.Magenta,
				strings.Join(resp.LastPlay.Suffocated, " "), display.Reset)
		}
		if len(resp.LastPlay.Converted) > 0 {
			fmt.Printf("%sConverted: %s%s\n", display.Magenta,
				strings.Join(resp.LastPlay.Converted, " "), display.Reset)
		}
	}

	if resp.State != "ongoing" {
		fmt.Printf("%sGame over: %s%s\n", display.Green, resp.State, display.Reset)
	}

	return nil
}

func legalHandler(s Session, args []string) error {
	gameID := s.GetCurrentGame()
	if gameID == "" {
		return fmt.Errorf("no current game, use 'new' or 'join <gameId>'")
	}

	c := s.GetClient()
	resp, err := c.GetLegalPlays(gameID)
	if err != nil {
		return err
	}

	if len(resp.Plays) == 0 {
		fmt.Printf("%sNo legal plays%s\n", display.Yellow, display.Reset)
		return nil
	}

	fmt.Printf("%s%d legal plays:%s\n", display.Cyan, len(resp.Plays), display.Reset)
	fmt.Println("  " + strings.Join(resp.Plays, " "))
	return nil
}

func undoHandler(s Session, args []string) error {
	gameID := s.GetCurrentGame()
	if gameID == "" {
		return fmt.Errorf("no current game, use 'new' or 'join <gameId>'")
	}

	count := 1
	if len(args) > 0 {
		var err error
		count, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid count: %s", args[0])
		}
	}

	c := s.GetClient()
	resp, err := c.UndoPlays(gameID, count)
	if err != nil {
		return err
	}

	s.SetLastPlayCount(len(resp.Plays))
	fmt.Printf("%sUndid %d play(s)%s\n", display.Green, count, display.Reset)
	return nil
}

func showBoardHandler(s Session, args []string) error {
	gameID := s.GetCurrentGame()
	if gameID == "" {
		return fmt.Errorf("no current game, use 'new' or 'join <gameId>'")
	}

	c := s.GetClient()

	// Get full game state
	game, err := c.GetGame(gameID)
	if err != nil {
		return err
	}

	// Get ASCII board
	board, err := c.GetBoard(gameID)
	if err != nil {
		return err
	}

	s.SetLastPlayCount(len(game.Plays))
	s.SetGameState(game)

	// Display board with colors
	fmt.Println()
	display.RenderBoard(board.Board)

	// Display game info
	fmt.Printf("\nQFEN: %s\n", game.QFEN)
	fmt.Printf("Turn: %s | State: %s | Plays: %d | Win progress: %+d\n",
		display.ColorForTurn(game.Turn), game.State, len(game.Plays), game.WinProgress)

	// Display play history
	if len(game.Plays) > 0 {
		fmt.Printf("\nHistory: ")
		for i, play := range game.Plays {
			if i > 0 {
				fmt.Print(" ")
			}
			if i%2 == 0 {
				fmt.Printf("%d.%s", (i/2)+1, play)
			} else {
				fmt.Printf(" %s", play)
			}
		}
		fmt.Println()
	}

	// Display last play info
	if game.LastPlay != nil {
		color := "White"
		if game.LastPlay.Player == "b" {
			color = "Black"
		}
		fmt.Printf("Last play: %s by %s", game.LastPlay.Play, color)
		if len(game.LastPlay.Suffocated) > 0 {
			fmt.Printf(" (suffocated %s)", strings.Join(game.LastPlay.Suffocated, " "))
		}
		if len(game.LastPlay.Converted) > 0 {
			fmt.Printf(" (converted %s)", strings.Join(game.LastPlay.Converted, " "))
		}
		fmt.Println()
	}

	return nil
}

func gameStateHandler(s Session, args []string) error {
	gameID := s.GetCurrentGame()
	if gameID == "" {
		return fmt.Errorf("no current game, use 'new' or 'join <gameId>'")
	}

	c := s.GetClient()
	resp, err := c.GetGame(gameID)
	if err != nil {
		return err
	}

	s.SetLastPlayCount(len(resp.Plays))

	// Pretty print JSON
	fmt.Printf("%sGame State:%s\n", display.Cyan, display.Reset)
	display.PrettyPrintJSON(resp)

	return nil
}

func deleteGameHandler(s Session, args []string) error {
	gameID := s.GetCurrentGame()
	if len(args) > 0 {
		gameID = args[0]
	}

	if gameID == "" {
		return fmt.Errorf("specify game ID or set current game")
	}

	c := s.GetClient()
	err := c.DeleteGame(gameID)
	if err != nil {
		return err
	}

	if gameID == s.GetCurrentGame() {
		s.SetCurrentGame("")
		s.SetLastPlayCount(0)
	}

	fmt.Printf("%sGame deleted: %s%s\n", display.Green, gameID, display.Reset)
	return nil
}

func pollHandler(s Session, args []string) error {
	gameID := s.GetCurrentGame()
	if gameID == "" {
		return fmt.Errorf("no current game, use 'new' or 'join <gameId>'")
	}

	c := s.GetClient()
	playCount := s.GetLastPlayCount()

	fmt.Printf("%sLong-polling for updates (play count: %d)...%s\n",
		display.Cyan, playCount, display.Reset)
	fmt.Printf("%sThis may take up to 25 seconds%s\n", display.Cyan, display.Reset)

	resp, err := c.WaitForPlay(gameID, playCount)
	if err != nil {
		return err
	}

	s.SetLastPlayCount(len(resp.Plays))
	s.SetGameState(resp)

	if len(resp.Plays) > playCount {
		fmt.Printf("%sGame updated! New plays detected%s\n", display.Green, display.Reset)
		if resp.LastPlay != nil {
			fmt.Printf("Last play: %s\n", resp.LastPlay.Play)
		}
	} else {
		fmt.Printf("%sNo updates (timeout)%s\n", display.Yellow, display.Reset)
	}

	return nil
}

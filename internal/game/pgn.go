package game

import (
	"fmt"
	"strings"

	"quorum/internal/core"
)

// result tags for a finished game
const (
	resultWhiteWins = "1-0"
	resultBlackWins = "0-1"
	resultDrawn     = "½-½"
)

// PGN renders the game transcript as numbered White-Black play pairs, one
// pair per line, with the result tag appended once the game is over.
func (g *Game) PGN() string {
	plays := g.Plays()

	switch g.state {
	case core.StateWhiteWins:
		plays = append(plays, resultWhiteWins)
	case core.StateBlackWins:
		plays = append(plays, resultBlackWins)
	case core.StateStalemate:
		plays = append(plays, resultDrawn)
	}

	var lines []string
	for i := 0; i < len(plays); i += 2 {
		n := i/2 + 1
		if i+1 < len(plays) {
			lines = append(lines, fmt.Sprintf("%3d. %-5s %-5s", n, plays[i], plays[i+1]))
		} else {
			lines = append(lines, fmt.Sprintf("%3d. %-5s", n, plays[i]))
		}
	}
	return strings.Join(lines, "\n")
}

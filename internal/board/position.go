package board

import (
	"fmt"
	"strings"

	"quorum/internal/core"
)

// StartingQFEN encodes the initial layout with White to move.
const StartingQFEN = "4bbbb/5bbb/6bb/7b/w7/ww6/www5/wwww4 w"

// Position is the full game state: grid, side to move, and the winner once
// the game is over (ColorNone while in progress).
type Position struct {
	Board  Board
	Turn   core.Color
	Winner core.Color
}

// StartingPosition returns the fixed initial position.
func StartingPosition() Position {
	return Position{Board: StartingBoard(), Turn: core.ColorWhite}
}

// ParseQFEN parses a board serialization: eight rank fields from rank 8
// down to rank 1, 'w'/'b' for stones and digit runs for empty squares,
// then the side to move.
func ParseQFEN(qfen string) (Position, error) {
	parts := strings.Fields(qfen)
	if len(parts) != 2 {
		return Position{}, fmt.Errorf("invalid QFEN: expected 2 parts, got %d", len(parts))
	}

	pos := Position{}

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return Position{}, fmt.Errorf("invalid QFEN: expected 8 ranks")
	}

	for r := 0; r < 8; r++ {
		rank := 7 - r
		file := 0
		for _, ch := range ranks[r] {
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			case ch == 'w' || ch == 'b':
				if file >= 8 {
					return Position{}, fmt.Errorf("invalid QFEN: too many squares in rank %d", rank+1)
				}
				pos.Board.Set(Sq(file, rank), core.Color(ch))
				file++
			default:
				return Position{}, fmt.Errorf("invalid QFEN: unexpected character %q", ch)
			}
		}
		if file != 8 {
			return Position{}, fmt.Errorf("invalid QFEN: rank %d has %d files", rank+1, file)
		}
	}

	switch parts[1] {
	case "w":
		pos.Turn = core.ColorWhite
	case "b":
		pos.Turn = core.ColorBlack
	default:
		return Position{}, fmt.Errorf("invalid QFEN: turn must be 'w' or 'b'")
	}

	return pos, nil
}

// QFEN serializes the position's board and side to move.
func (p *Position) QFEN() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			stone := p.Board.StoneAt(Sq(f, r))
			if stone == core.ColorNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(byte(stone))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.Turn.String())
	return sb.String()
}

// ToASCII creates an ASCII representation of the board
func (p *Position) ToASCII() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")

	for r := 7; r >= 0; r-- {
		sb.WriteString(fmt.Sprintf("%d ", r+1))
		for f := 0; f < 8; f++ {
			stone := p.Board.StoneAt(Sq(f, r))
			if stone == core.ColorNone {
				sb.WriteString(". ")
			} else {
				sb.WriteString(fmt.Sprintf("%c ", stone))
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", r+1))
	}
	sb.WriteString("  a b c d e f g h")

	return sb.String()
}

package core

import (
	"encoding/json"
	"fmt"
)

// Color identifies a stone or a player. ColorNone marks an empty square
// and the absence of a winner.
type Color byte

const (
	ColorNone  Color = 0
	ColorWhite Color = 'w'
	ColorBlack Color = 'b'
)

func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "w"
	case ColorBlack:
		return "b"
	default:
		return "-"
	}
}

func (c Color) Name() string {
	switch c {
	case ColorWhite:
		return "White"
	case ColorBlack:
		return "Black"
	default:
		return "None"
	}
}

// Colors travel as "w"/"b" strings on the wire.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "w":
		*c = ColorWhite
	case "b":
		*c = ColorBlack
	case "-", "":
		*c = ColorNone
	default:
		return fmt.Errorf("invalid color: %q", s)
	}
	return nil
}

func OppositeColor(c Color) Color {
	if c == ColorWhite {
		return ColorBlack
	}
	return ColorWhite
}

type State int

const (
	StateOngoing State = iota
	StateWhiteWins
	StateBlackWins
	StateStalemate
)

func (s State) String() string {
	switch s {
	case StateWhiteWins:
		return "white wins"
	case StateBlackWins:
		return "black wins"
	case StateStalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// StateForWinner maps a winning color to the corresponding terminal state.
func StateForWinner(c Color) State {
	switch c {
	case ColorWhite:
		return StateWhiteWins
	case ColorBlack:
		return StateBlackWins
	default:
		return StateOngoing
	}
}

package board

import (
	"quorum/internal/core"
)

// Board is the 8x8 grid of stones, a flat array indexed by rank*8+file.
// It is a value type: assignment copies the whole grid, which is how the
// rules layer takes its frozen snapshots.
type Board struct {
	squares [64]core.Color
}

// WhiteHome and BlackHome are the fixed placement-source squares of each
// color. Membership never changes, only occupancy.
var (
	WhiteHome = [4]Square{{0, 0}, {0, 1}, {1, 0}, {1, 1}}         // a1 a2 b1 b2
	BlackHome = [4]Square{{7, 7}, {7, 6}, {6, 7}, {6, 6}}         // h8 h7 g8 g7
	Objective = [4]Square{{3, 3}, {3, 4}, {4, 3}, {4, 4}}         // d4 d5 e4 e5
)

// HomeSquares returns the fixed home squares for a color.
func HomeSquares(c core.Color) [4]Square {
	if c == core.ColorWhite {
		return WhiteHome
	}
	return BlackHome
}

func (b *Board) StoneAt(sq Square) core.Color {
	return b.squares[sq.Rank*8+sq.File]
}

func (b *Board) Set(sq Square, c core.Color) {
	b.squares[sq.Rank*8+sq.File] = c
}

// EmptyHomeSquares returns the color's home squares that currently hold no
// stone, in fixed home order.
func (b *Board) EmptyHomeSquares(c core.Color) []Square {
	var empty []Square
	for _, sq := range HomeSquares(c) {
		if b.StoneAt(sq) == core.ColorNone {
			empty = append(empty, sq)
		}
	}
	return empty
}

// ObjectiveOwnedBy reports whether all four objective squares hold the
// color's stones.
func (b *Board) ObjectiveOwnedBy(c core.Color) bool {
	for _, sq := range Objective {
		if b.StoneAt(sq) != c {
			return false
		}
	}
	return true
}

// StartingBoard returns the fixed initial layout: each color's stones form
// a staircase in its corner (White a1-d1, a2-c2, a3-b3, a4; Black mirrored
// from h8), objective squares empty.
func StartingBoard() Board {
	var b Board
	for rank := 0; rank < 4; rank++ {
		for file := 0; file < 4-rank; file++ {
			b.Set(Sq(file, rank), core.ColorWhite)
			b.Set(Sq(7-file, 7-rank), core.ColorBlack)
		}
	}
	return b
}

package rules

import (
	"quorum/internal/board"
	"quorum/internal/core"
)

// LegalMovements enumerates every legal movement for the side to move:
// ordered pairs of the mover's adjacent stones (active, center) whose
// reflection target is in bounds and empty. Enumeration order is fixed so
// repeated calls on the same position agree square for square.
func LegalMovements(pos *board.Position) []Movement {
	if pos.Winner != core.ColorNone {
		return nil
	}
	var moves []Movement
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			active := board.Sq(file, rank)
			if pos.Board.StoneAt(active) != pos.Turn {
				continue
			}
			for _, d := range board.Neighbors {
				center := active.Add(d)
				if !center.InBounds() || pos.Board.StoneAt(center) != pos.Turn {
					continue
				}
				target := board.Reflect(active, center)
				if !target.InBounds() || pos.Board.StoneAt(target) != core.ColorNone {
					continue
				}
				moves = append(moves, Movement{Active: active, Center: center})
			}
		}
	}
	return moves
}

// LegalPlacement returns the mover's placement play, valid only when at
// least one home square is empty. The returned set is exactly the empty
// home squares.
func LegalPlacement(pos *board.Position) (Placement, bool) {
	if pos.Winner != core.ColorNone {
		return Placement{}, false
	}
	empty := pos.Board.EmptyHomeSquares(pos.Turn)
	if len(empty) == 0 {
		return Placement{}, false
	}
	return Placement{Squares: empty}, true
}

// HasAnyLegalPlay reports whether the side to move has at least one legal
// movement or a legal placement. The rules are silent on a playless
// position; callers surface it as a stalemate.
func HasAnyLegalPlay(pos *board.Position) bool {
	if _, ok := LegalPlacement(pos); ok {
		return true
	}
	return len(LegalMovements(pos)) > 0
}

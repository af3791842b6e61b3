package rules

import (
	"fmt"

	"quorum/internal/board"
	"quorum/internal/core"
)

// Rule identifies which legality rule an illegal play violated.
type Rule string

const (
	RuleGameOver      Rule = "game_over"
	RuleOwnership     Rule = "ownership"
	RuleDistance      Rule = "distance"
	RuleSpace         Rule = "space"
	RuleHomeOccupancy Rule = "home_occupancy"
)

// IllegalPlayError reports a play rejected by Apply, carrying the violated
// rule so callers can explain the rejection.
type IllegalPlayError struct {
	Rule   Rule
	Play   Play
	Reason string
}

func (e *IllegalPlayError) Error() string {
	return fmt.Sprintf("illegal play %s: %s", e.Play, e.Reason)
}

func illegal(rule Rule, play Play, format string, args ...any) error {
	return &IllegalPlayError{Rule: rule, Play: play, Reason: fmt.Sprintf(format, args...)}
}

// Apply validates a play against the position and returns the resulting
// position together with the movement's effect set (nil for placements).
// Validation precedes every write: on error the input position is returned
// unchanged. The win condition is checked after every play type, placement
// included.
func Apply(pos board.Position, play Play) (board.Position, *EffectSet, error) {
	if pos.Winner != core.ColorNone {
		return pos, nil, illegal(RuleGameOver, play, "game is over, %s already won", pos.Winner.Name())
	}

	switch p := play.(type) {
	case Movement:
		return applyMovement(pos, p)
	case Placement:
		return applyPlacement(pos, p)
	default:
		return pos, nil, illegal(RuleDistance, play, "unknown play type")
	}
}

func applyMovement(pos board.Position, m Movement) (board.Position, *EffectSet, error) {
	mover := pos.Turn

	if got := pos.Board.StoneAt(m.Active); got != mover {
		return pos, nil, illegal(RuleOwnership, m, "active square %s does not hold a %s stone", m.Active, mover.Name())
	}
	if got := pos.Board.StoneAt(m.Center); got != mover {
		return pos, nil, illegal(RuleOwnership, m, "center square %s does not hold a %s stone", m.Center, mover.Name())
	}
	if !board.Adjacent(m.Active, m.Center) {
		return pos, nil, illegal(RuleDistance, m, "active %s and center %s are not adjacent", m.Active, m.Center)
	}
	target := m.Target()
	if !target.InBounds() {
		return pos, nil, illegal(RuleSpace, m, "target square is off the board")
	}
	if pos.Board.StoneAt(target) != core.ColorNone {
		return pos, nil, illegal(RuleSpace, m, "target square %s is occupied", target)
	}

	// pos is a copy; mutation never touches the caller's position.
	pos.Board.Set(m.Active, core.ColorNone)
	pos.Board.Set(target, mover)

	eff := Effects(&pos.Board, mover, target)
	applyEffects(&pos.Board, mover, eff)

	finish(&pos, mover)
	return pos, &eff, nil
}

func applyPlacement(pos board.Position, p Placement) (board.Position, *EffectSet, error) {
	mover := pos.Turn

	required := pos.Board.EmptyHomeSquares(mover)
	if len(required) == 0 {
		return pos, nil, illegal(RuleHomeOccupancy, p, "all %s home squares are occupied", mover.Name())
	}
	if p.Squares != nil && !sameSquareSet(p.Squares, required) {
		return pos, nil, illegal(RuleHomeOccupancy, p, "placement must fill exactly the empty %s home squares", mover.Name())
	}

	for _, sq := range required {
		pos.Board.Set(sq, mover)
	}

	finish(&pos, mover)
	return pos, nil, nil
}

// finish runs the post-play win check and turn flip shared by both play
// types.
func finish(pos *board.Position, mover core.Color) {
	if pos.Board.ObjectiveOwnedBy(mover) {
		pos.Winner = mover
		return
	}
	pos.Turn = core.OppositeColor(mover)
}

func sameSquareSet(got, want []board.Square) bool {
	if len(got) != len(want) {
		return false
	}
	g := append([]board.Square(nil), got...)
	w := append([]board.Square(nil), want...)
	sortSquares(g)
	sortSquares(w)
	for i := range g {
		if g[i] != w[i] {
			return false
		}
	}
	return true
}

// Winner returns the color holding all four objective squares, or
// ColorNone.
func Winner(b *board.Board) core.Color {
	if b.ObjectiveOwnedBy(core.ColorWhite) {
		return core.ColorWhite
	}
	if b.ObjectiveOwnedBy(core.ColorBlack) {
		return core.ColorBlack
	}
	return core.ColorNone
}

// IsWinner reports whether the color owns the full objective.
func IsWinner(pos *board.Position, c core.Color) bool {
	return pos.Board.ObjectiveOwnedBy(c)
}

// WinProgress is the signed objective occupancy: +1 per White stone and -1
// per Black stone on the four objective squares. +4 or -4 means quorum.
func WinProgress(b *board.Board) int {
	progress := 0
	for _, sq := range board.Objective {
		switch b.StoneAt(sq) {
		case core.ColorWhite:
			progress++
		case core.ColorBlack:
			progress--
		}
	}
	return progress
}

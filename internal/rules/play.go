package rules

import (
	"fmt"
	"sort"
	"strings"

	"quorum/internal/board"
)

// Play is one complete turn: either a Movement or a Placement.
type Play interface {
	fmt.Stringer
	isPlay()
}

// Movement relocates the active stone by reflecting it through the center
// stone. Both squares must hold the mover's stones.
type Movement struct {
	Active board.Square
	Center board.Square
}

func (Movement) isPlay() {}

// Target is the destination square: the reflection of the active square
// through the center. May be out of bounds for an illegal movement.
func (m Movement) Target() board.Square {
	return board.Reflect(m.Active, m.Center)
}

// String renders origin-target notation ("b1d3"), the form used in game
// transcripts.
func (m Movement) String() string {
	return m.Active.String() + m.Target().String()
}

// Placement fills the mover's empty home squares with new stones. When
// Squares is nil the required set is derived from the position; a non-nil
// set must match the empty home squares exactly.
type Placement struct {
	Squares []board.Square
}

func (Placement) isPlay() {}

// PlacementGlyph is the transcript notation for a placement.
const PlacementGlyph = "+"

func (p Placement) String() string {
	return PlacementGlyph
}

// ParsePlay parses transcript notation: "+" for a placement, or four
// coordinate characters origin-then-target ("b1d3") for a movement. The
// pivot square is recovered as the midpoint, so origin and target must
// differ by an even delta on both axes.
func ParsePlay(s string) (Play, error) {
	s = strings.TrimSpace(s)
	if s == PlacementGlyph || s == PlacementGlyph+PlacementGlyph {
		return Placement{}, nil
	}
	if len(s) == 5 && s[2] == '-' {
		s = s[:2] + s[3:]
	}
	if len(s) != 4 {
		return nil, fmt.Errorf("invalid play %q: expected \"+\" or origin-target like \"b1d3\"", s)
	}
	active, err := board.ParseSquare(s[:2])
	if err != nil {
		return nil, fmt.Errorf("invalid play %q: %w", s, err)
	}
	target, err := board.ParseSquare(s[2:])
	if err != nil {
		return nil, fmt.Errorf("invalid play %q: %w", s, err)
	}
	center, ok := board.Midpoint(active, target)
	if !ok {
		return nil, fmt.Errorf("invalid play %q: no pivot square between %s and %s", s, active, target)
	}
	return Movement{Active: active, Center: center}, nil
}

// sortSquares orders a square set lexicographically by (file, rank) for
// deterministic comparison and display.
func sortSquares(squares []board.Square) {
	sort.Slice(squares, func(i, j int) bool {
		if squares[i].File != squares[j].File {
			return squares[i].File < squares[j].File
		}
		return squares[i].Rank < squares[j].Rank
	})
}

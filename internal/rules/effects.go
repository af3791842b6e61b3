package rules

import (
	"quorum/internal/board"
	"quorum/internal/core"
)

// EffectSet holds the squares a movement suffocates and converts. Both
// memberships are derived from the same frozen post-move board, so the two
// effects are simultaneous: neither can enable or disable the other.
type EffectSet struct {
	Suffocated []board.Square
	Converted  []board.Square
}

// Effects computes the suffocation and conversion sets for a movement that
// just brought the mover's active stone to target. The board must already
// reflect the relocation and must not be mutated until both sets are
// complete.
//
// Suffocated: opponent stones adjacent to target with no empty in-bounds
// neighbor. Converted: opponent stones adjacent to target with a mover
// stone on the square immediately opposite the target, an exact
// three-square run with no gap. The mover's own stones never qualify for
// either.
func Effects(b *board.Board, mover core.Color, target board.Square) EffectSet {
	opponent := core.OppositeColor(mover)
	var eff EffectSet

	for _, d := range board.Neighbors {
		s := target.Add(d)
		if !s.InBounds() || b.StoneAt(s) != opponent {
			continue
		}

		if !hasEmptyNeighbor(b, s) {
			eff.Suffocated = append(eff.Suffocated, s)
		}

		beyond := s.Add(d)
		if beyond.InBounds() && b.StoneAt(beyond) == mover {
			eff.Converted = append(eff.Converted, s)
		}
	}

	return eff
}

func hasEmptyNeighbor(b *board.Board, sq board.Square) bool {
	for _, d := range board.Neighbors {
		n := sq.Add(d)
		if n.InBounds() && b.StoneAt(n) == core.ColorNone {
			return true
		}
	}
	return false
}

// applyEffects commits a computed effect set: suffocated stones are removed
// first, then converted stones flip to the mover's color. Membership comes
// from the snapshot, so the pass order changes nothing about which stones
// are affected.
func applyEffects(b *board.Board, mover core.Color, eff EffectSet) {
	for _, sq := range eff.Suffocated {
		b.Set(sq, core.ColorNone)
	}
	for _, sq := range eff.Converted {
		b.Set(sq, mover)
	}
}

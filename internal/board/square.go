package board

import "fmt"

// Square is a board coordinate. File and Rank both run 0..7; the textual
// form is a file letter a-h followed by a rank digit 1-8 ("e3").
type Square struct {
	File int
	Rank int
}

// Neighbors holds the eight adjacency deltas. Diagonals count.
var Neighbors = [8]Square{
	{-1, -1},
	{-1, 0},
	{-1, 1},
	{0, 1},
	{1, 1},
	{1, 0},
	{1, -1},
	{0, -1},
}

func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// ParseSquare parses a two-character coordinate label like "e3".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("invalid square %q: expected 2 characters", s)
	}
	if s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Square{}, fmt.Errorf("invalid square %q: file must be a-h, rank 1-8", s)
	}
	return Square{File: int(s[0] - 'a'), Rank: int(s[1] - '1')}, nil
}

func (s Square) String() string {
	return fmt.Sprintf("%c%c", 'a'+s.File, '1'+s.Rank)
}

func (s Square) InBounds() bool {
	return s.File >= 0 && s.File <= 7 && s.Rank >= 0 && s.Rank <= 7
}

func (s Square) Add(d Square) Square {
	return Square{File: s.File + d.File, Rank: s.Rank + d.Rank}
}

// Adjacent reports whether p and q are distinct and within a Chebyshev
// distance of one.
func Adjacent(p, q Square) bool {
	if p == q {
		return false
	}
	df := p.File - q.File
	dr := p.Rank - q.Rank
	return df >= -1 && df <= 1 && dr >= -1 && dr <= 1
}

// Reflect projects active through center: center + (center - active) per
// axis. The result is the unique movement target and may be out of bounds;
// callers check InBounds.
func Reflect(active, center Square) Square {
	return Square{
		File: 2*center.File - active.File,
		Rank: 2*center.Rank - active.Rank,
	}
}

// Direction returns the unit delta vector from one square toward an
// adjacent one. Callers must not pass non-adjacent squares.
func Direction(from, to Square) Square {
	return Square{File: sign(to.File - from.File), Rank: sign(to.Rank - from.Rank)}
}

// Midpoint returns the square halfway between p and q and whether such a
// square exists (both deltas even). Used to recover a movement's pivot from
// origin-target notation.
func Midpoint(p, q Square) (Square, bool) {
	df := q.File - p.File
	dr := q.Rank - p.Rank
	if df%2 != 0 || dr%2 != 0 {
		return Square{}, false
	}
	return Square{File: p.File + df/2, Rank: p.Rank + dr/2}, true
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

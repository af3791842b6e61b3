package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in   string
		want Square
	}{
		{"a1", Sq(0, 0)},
		{"e3", Sq(4, 2)},
		{"h8", Sq(7, 7)},
		{"d5", Sq(3, 4)},
	}
	for _, tt := range tests {
		got, err := ParseSquare(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.in, got.String(), "round trip")
	}
}

func TestParseSquareInvalid(t *testing.T) {
	for _, in := range []string{"", "a", "a9", "i1", "a12", "11", "ab"} {
		_, err := ParseSquare(in)
		assert.Error(t, err, in)
	}
}

func TestAdjacent(t *testing.T) {
	center := Sq(4, 4) // e5
	assert.False(t, Adjacent(center, center), "a square is not adjacent to itself")

	// All eight neighbors, diagonals included
	for _, d := range Neighbors {
		assert.True(t, Adjacent(center, center.Add(d)))
		assert.True(t, Adjacent(center.Add(d), center))
	}

	assert.False(t, Adjacent(center, Sq(4, 6)), "two ranks away")
	assert.False(t, Adjacent(center, Sq(6, 6)), "two diagonal steps away")
	assert.False(t, Adjacent(Sq(0, 0), Sq(2, 0)))
}

func TestReflect(t *testing.T) {
	a1 := Sq(0, 0)
	c2 := Sq(2, 1)
	assert.Equal(t, Sq(4, 2), Reflect(a1, c2), "a1 through c2 lands on e3")

	// Reflection can leave the board; callers check bounds.
	b1 := Sq(1, 0)
	assert.Equal(t, Sq(-1, 0), Reflect(b1, a1))
	assert.False(t, Reflect(b1, a1).InBounds())

	// Reflecting back recovers the origin.
	assert.Equal(t, a1, Reflect(Reflect(a1, c2), c2))
}

func TestDirection(t *testing.T) {
	e5 := Sq(4, 4)
	assert.Equal(t, Sq(1, 1), Direction(e5, Sq(5, 5)))
	assert.Equal(t, Sq(-1, 0), Direction(e5, Sq(3, 4)))
	assert.Equal(t, Sq(0, -1), Direction(e5, Sq(4, 3)))
}

func TestMidpoint(t *testing.T) {
	mid, ok := Midpoint(Sq(0, 0), Sq(4, 2))
	require.True(t, ok)
	assert.Equal(t, Sq(2, 1), mid, "pivot of a1-e3 is c2")

	_, ok = Midpoint(Sq(0, 0), Sq(1, 2))
	assert.False(t, ok, "odd delta has no pivot square")
}

func TestInBounds(t *testing.T) {
	assert.True(t, Sq(0, 0).InBounds())
	assert.True(t, Sq(7, 7).InBounds())
	assert.False(t, Sq(-1, 0).InBounds())
	assert.False(t, Sq(0, 8).InBounds())
	assert.False(t, Sq(8, 3).InBounds())
}

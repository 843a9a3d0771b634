// Package bingo implements the 5x5 bingo board: tile state, line detection,
// the celebration latch, layout and rendering into a core.Screen.
// Board logic is pure; the platform layer drives it with input frames.
package bingo

import (
	"math/bits"
	"math/rand"
)

// Board geometry.
const (
	Size  = 5           // Tiles per row and per column
	Cells = Size * Size // Total tiles
)

// Letters are the column headings, left to right.
var Letters = [Size]rune{'B', 'I', 'N', 'G', 'O'}

// Selection is the set of marked positions, one bit per position 0..24.
type Selection uint32

const allPositions Selection = 1<<Cells - 1

// Has reports whether pos is marked.
func (s Selection) Has(pos int) bool {
	if pos < 0 || pos >= Cells {
		return false
	}
	return s&(1<<pos) != 0
}

// Toggle flips membership of pos. Out-of-range positions are ignored.
func (s Selection) Toggle(pos int) Selection {
	if pos < 0 || pos >= Cells {
		return s
	}
	return (s ^ 1<<pos) & allPositions
}

// Len returns the number of marked positions.
func (s Selection) Len() int {
	return bits.OnesCount32(uint32(s))
}

// Positions returns the marked positions in ascending order.
func (s Selection) Positions() []int {
	out := make([]int, 0, s.Len())
	for pos := 0; pos < Cells; pos++ {
		if s.Has(pos) {
			out = append(out, pos)
		}
	}
	return out
}

// State is the complete board: tile values, marks and the celebration latch.
// It is a plain value; every update function returns a new State.
type State struct {
	Tiles    [Cells]int
	Selected Selection
	Latch    Latch
	Epoch    int // Incremented by every shuffle
	Marks    int // Toggles made during the current epoch
}

// NewState returns a board with tiles 1..25 in order and nothing marked.
func NewState() State {
	var s State
	for i := range s.Tiles {
		s.Tiles[i] = i + 1
	}
	return s
}

// Shuffle reorders the tile values with a Fisher-Yates shuffle, clears the
// marks and re-arms the celebration latch.
func Shuffle(s State, rng *rand.Rand) State {
	for i := len(s.Tiles) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s.Tiles[i], s.Tiles[j] = s.Tiles[j], s.Tiles[i]
	}
	s.Selected = 0
	s.Latch = Armed
	s.Epoch++
	s.Marks = 0
	return s
}

// Toggle flips the mark on pos. Positions outside 0..24 leave the state unchanged.
func Toggle(s State, pos int) State {
	if pos < 0 || pos >= Cells {
		return s
	}
	s.Selected = s.Selected.Toggle(pos)
	s.Marks++
	return s
}

// RowCol returns the grid row and column of a position.
func RowCol(pos int) (row, col int) {
	return pos / Size, pos % Size
}

package mines

import (
	"fmt"
	"iter"
)

// Board is the grid of cells in row-major order. MineCount in the embedded
// params is the starting mine budget.
type Board struct {
	GameParams
	cells  []Cell
	flags  int
	turn   int
	placed bool
}

func NewBoard(params GameParams) *Board {
	b := &Board{}
	b.Setup(params.Width, params.Height, params.MineCount)
	return b
}

// Setup resets the board to width*height unmined, unflagged hidden cells.
func (b *Board) Setup(width, height, mineBudget int) {
	b.GameParams = GameParams{Width: width, Height: height, MineCount: mineBudget}
	b.cells = make([]Cell, width*height)
	for i := range b.cells {
		b.cells[i] = Hidden{}
	}
	b.flags = 0
	b.turn = 0
	b.placed = false
}

func (b *Board) Len() int {
	return len(b.cells)
}

func (b *Board) InBounds(row, col int) bool {
	return 0 <= row && row < b.Height && 0 <= col && col < b.Width
}

// panics [AssertionError]
func (b *Board) IndexOf(row, col int) int {
	if !b.InBounds(row, col) {
		panic(AssertionError{fmt.Sprintf(
			"cell %d:%d outside %dx%d board", row, col, b.Width, b.Height,
		)})
	}
	return row*b.Width + col
}

// panics [AssertionError]
func (b *Board) Coords(index int) (row, col int) {
	b.mustContain(index)
	return index / b.Width, index % b.Width
}

// panics [AssertionError]
func (b *Board) Cell(index int) Cell {
	b.mustContain(index)
	return b.cells[index]
}

func (b *Board) All() iter.Seq2[int, Cell] {
	return func(yield func(int, Cell) bool) {
		for i, c := range b.cells {
			if !yield(i, c) {
				return
			}
		}
	}
}

// MinesRemaining is the mine budget minus the flags currently placed,
// clamped to [0, budget]. Flags beyond the budget are not counted, so removing
// one of them does not raise the count.
func (b *Board) MinesRemaining() int {
	return max(0, b.MineCount-b.flags)
}

func (b *Board) Turn() int {
	return b.turn
}

// MineTotal counts mined cells on the board.
func (b *Board) MineTotal() (count int) {
	for _, c := range b.cells {
		if mined(c) {
			count++
		}
	}
	return
}

func (b *Board) contains(index int) bool {
	return 0 <= index && index < len(b.cells)
}

func (b *Board) mustContain(index int) {
	if !b.contains(index) {
		panic(AssertionError{fmt.Sprintf(
			"index %d outside board of %d cells", index, len(b.cells),
		)})
	}
}

// cleared reports whether every safe cell is open and every mine is hidden.
func (b *Board) cleared() bool {
	for _, c := range b.cells {
		switch c := c.(type) {
		case Hidden:
			if !c.Mined {
				return false
			}
		case Revealed:
			if c.Mined {
				return false
			}
		}
	}
	return true
}

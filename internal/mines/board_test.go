package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	b := NewBoard(GameParams{Width: 3, Height: 2, MineCount: 1})

	assert.Equal(t, 6, b.Len())
	assert.Equal(t, 1, b.MinesRemaining())
	assert.Equal(t, 0, b.Turn())
	assert.Equal(t, 0, b.MineTotal())
	for i, c := range b.All() {
		assert.Equal(t, Hidden{}, c, "cell %d", i)
	}

	b.toggleFlag(0, Hidden{})
	b.turn = 5
	b.Setup(2, 2, 3)
	assert.Equal(t, 4, b.Len())
	assert.Equal(t, 3, b.MinesRemaining())
	assert.Equal(t, 0, b.Turn())
	assert.Equal(t, Hidden{}, b.Cell(0))
}

func TestIndexOf(t *testing.T) {
	b := NewBoard(GameParams{Width: 4, Height: 3})

	tests := []struct {
		row, col, index int
	}{
		{0, 0, 0},
		{0, 3, 3},
		{1, 0, 4},
		{2, 3, 11},
	}
	for _, test := range tests {
		assert.Equal(t, test.index, b.IndexOf(test.row, test.col))
		row, col := b.Coords(test.index)
		assert.Equal(t, test.row, row)
		assert.Equal(t, test.col, col)
	}
}

func TestOutOfRangeAccessPanics(t *testing.T) {
	b := NewBoard(GameParams{Width: 4, Height: 3})

	assert.Panics(t, func() { b.IndexOf(3, 0) })
	assert.Panics(t, func() { b.IndexOf(0, 4) })
	assert.Panics(t, func() { b.IndexOf(-1, 0) })
	assert.Panics(t, func() { b.Cell(12) })
	assert.Panics(t, func() { b.Neighbors(-1) })
	assert.PanicsWithValue(t, AssertionError{"cell 0:4 outside 4x3 board"}, func() { b.IndexOf(0, 4) })
}

func TestAllStopsEarly(t *testing.T) {
	b := NewBoard(GameParams{Width: 3, Height: 3})
	visited := 0
	for i := range b.All() {
		visited++
		if i == 4 {
			break
		}
	}
	assert.Equal(t, 5, visited)
}

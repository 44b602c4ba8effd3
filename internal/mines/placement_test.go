package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceMinesCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
		want   int
	}{
		{"1x1(0)", GameParams{Width: 1, Height: 1, MineCount: 0}, 0},
		{"1x1(1)", GameParams{Width: 1, Height: 1, MineCount: 1}, 1},
		{"5x5(4)", Easy.Params(), 4},
		{"8x8(14)", Medium.Params(), 14},
		{"12x12(35)", Hard.Params(), 35},
		{"3x3(9)", GameParams{Width: 3, Height: 3, MineCount: 9}, 9},
		{"2x2(7)", GameParams{Width: 2, Height: 2, MineCount: 7}, 4},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := newTestRand()
			for range 50 {
				b := NewBoard(test.params)
				require.NoError(t, b.PlaceMines(r))
				assert.Equal(t, test.want, b.MineTotal())
				for _, c := range b.All() {
					assert.False(t, c.(Hidden).Flagged)
				}
			}
		})
	}
}

func TestPlaceMinesOnce(t *testing.T) {
	b := NewBoard(Easy.Params())
	require.NoError(t, b.PlaceMines(newTestRand()))
	before := b.Grid()
	total := b.MineTotal()

	assert.ErrorIs(t, b.PlaceMines(newTestRand()), ErrAlreadyPlaced)
	assert.ErrorIs(t, b.PlaceMinesAt(0, 1, 2, 3), ErrAlreadyPlaced)
	assert.Equal(t, before, b.Grid())
	assert.Equal(t, total, b.MineTotal())
}

func TestPlaceMinesKeepsFlags(t *testing.T) {
	b := NewBoard(GameParams{Width: 2, Height: 2, MineCount: 4})
	b.toggleFlag(3, Hidden{})
	require.NoError(t, b.PlaceMines(newTestRand()))

	assert.Equal(t, Hidden{Mined: true, Flagged: true}, b.Cell(3))
	assert.Equal(t, Hidden{Mined: true}, b.Cell(0))
}

func TestPlaceMinesCoversEveryCell(t *testing.T) {
	r := newTestRand()
	seen := make(map[int]int)
	for range 900 {
		b := NewBoard(GameParams{Width: 3, Height: 3, MineCount: 1})
		require.NoError(t, b.PlaceMines(r))
		for i, c := range b.All() {
			if mined(c) {
				seen[i]++
			}
		}
	}
	require.Len(t, seen, 9)
	for i, n := range seen {
		// expected 100 per cell
		assert.InDelta(t, 100, n, 50, "cell %d", i)
	}
}

func TestPlaceMinesAt(t *testing.T) {
	params := GameParams{Width: 3, Height: 3, MineCount: 2}

	tests := []struct {
		name    string
		indices []int
		err     error
	}{
		{"ok", []int{0, 8}, nil},
		{"duplicate", []int{4, 4}, ErrInvalidSelection},
		{"out of range", []int{0, 9}, ErrInvalidSelection},
		{"negative", []int{-1, 3}, ErrInvalidSelection},
		{"too few", []int{1}, ErrConfiguration},
		{"too many", []int{1, 2, 3}, ErrConfiguration},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := NewBoard(params)
			err := b.PlaceMinesAt(test.indices...)
			if test.err != nil {
				assert.ErrorIs(t, err, test.err)
				assert.Equal(t, 0, b.MineTotal())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2, b.MineTotal())
			for _, i := range test.indices {
				assert.True(t, mined(b.Cell(i)))
			}
		})
	}
}

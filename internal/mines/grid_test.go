package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTiles(t *testing.T) {
	g := mustGame(t, GameParams{Width: 4, Height: 2, MineCount: 2}, 3, 7)

	_, err := g.ToggleFlag(1, 2)
	require.NoError(t, err)
	_, err = g.Reveal(0, 0)
	require.NoError(t, err)

	assert.Equal(t, Tile{Glyph: GlyphNumber, Hint: 0}, g.Tile(0))
	assert.Equal(t, Tile{Glyph: GlyphNumber, Hint: 2}, g.Tile(2))
	assert.Equal(t, Tile{Glyph: GlyphHidden}, g.Tile(3))
	assert.Equal(t, Tile{Glyph: GlyphFlagged}, g.Tile(6))
	assert.Equal(t, ". . 2 # \n. . F # \n", g.Grid().ToString(g.Width()))

	_, err = g.Reveal(0, 3)
	require.NoError(t, err)
	assert.Equal(t, ". . 2 * \n. . F * \n", g.Grid().ToString(g.Width()))
}

func TestTileString(t *testing.T) {
	assert.Equal(t, "#", Tile{Glyph: GlyphHidden}.String())
	assert.Equal(t, "F", Tile{Glyph: GlyphFlagged}.String())
	assert.Equal(t, "*", Tile{Glyph: GlyphMine}.String())
	assert.Equal(t, ".", Tile{Glyph: GlyphNumber}.String())
	assert.Equal(t, "8", Tile{Glyph: GlyphNumber, Hint: 8}.String())
}

package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// Glyph is what a player may see of a cell.
type Glyph int8

const (
	GlyphHidden Glyph = iota
	GlyphFlagged
	GlyphMine
	GlyphNumber
)

// Tile is the visible state of one cell. Hint is set for GlyphNumber only.
type Tile struct {
	Glyph Glyph
	Hint  int
}

func tileOf(c Cell) Tile {
	switch c := c.(type) {
	case Hidden:
		if c.Flagged {
			return Tile{Glyph: GlyphFlagged}
		}
		return Tile{Glyph: GlyphHidden}
	case Revealed:
		if c.Exploded() {
			return Tile{Glyph: GlyphMine}
		}
		return Tile{Glyph: GlyphNumber, Hint: c.Hint}
	default:
		panic(AssertionError{"unknown cell variant"})
	}
}

func (t Tile) String() string {
	switch t.Glyph {
	case GlyphHidden:
		return "#"
	case GlyphFlagged:
		return "F"
	case GlyphMine:
		return "*"
	case GlyphNumber:
		if t.Hint == 0 {
			return "."
		}
		return strconv.Itoa(t.Hint)
	default:
		return "!"
	}
}

type Grid []Tile

func (b *Board) Grid() Grid {
	grid := make(Grid, len(b.cells))
	for i, c := range b.cells {
		grid[i] = tileOf(c)
	}
	return grid
}

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

package mines

// Cell is either [Hidden] or [Revealed].
type Cell interface {
	isCell()
}

type Hidden struct {
	Mined   bool
	Flagged bool
}

// Revealed is an opened cell. Hint holds the number of adjacent mines and is
// only meaningful when Mined is false.
type Revealed struct {
	Mined bool
	Hint  int
}

func (Hidden) isCell()   {}
func (Revealed) isCell() {}

// Exploded reports whether the cell is a mine exposed by a loss.
func (r Revealed) Exploded() bool {
	return r.Mined
}

func mined(c Cell) bool {
	switch c := c.(type) {
	case Hidden:
		return c.Mined
	case Revealed:
		return c.Mined
	default:
		panic(AssertionError{"unknown cell variant"})
	}
}

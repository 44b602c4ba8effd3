package mines

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/sirupsen/logrus"
)

// PlaceMines marks min(MineCount, Len()) distinct cells as mined, chosen
// uniformly by a Fisher-Yates shuffle of every cell index.
func (b *Board) PlaceMines(r *rand.Rand) error {
	if b.placed {
		return ErrAlreadyPlaced
	}

	indices := make([]int, len(b.cells))
	for i := range indices {
		indices[i] = i
	}
	for i := len(indices) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}

	for _, i := range indices[:min(b.MineCount, len(indices))] {
		b.plant(i)
	}
	b.placed = true

	Log.WithFields(logrus.Fields{
		"params": b.Seed(),
		"mines":  min(b.MineCount, len(indices)),
	}).Debug("mines placed")
	return nil
}

// PlaceMinesAt plants mines at fixed indices. Exactly min(MineCount, Len())
// distinct in-range indices are required.
func (b *Board) PlaceMinesAt(indices ...int) error {
	if b.placed {
		return ErrAlreadyPlaced
	}
	if want := min(b.MineCount, len(b.cells)); len(indices) != want {
		return fmt.Errorf(
			"%w: want %d mine positions, got %d", ErrConfiguration, want, len(indices),
		)
	}

	sorted := slices.Clone(indices)
	slices.Sort(sorted)
	for k, i := range sorted {
		if !b.contains(i) {
			return fmt.Errorf("%w: mine index %d out of range", ErrInvalidSelection, i)
		}
		if k > 0 && sorted[k-1] == i {
			return fmt.Errorf("%w: duplicate mine index %d", ErrInvalidSelection, i)
		}
	}

	for _, i := range indices {
		b.plant(i)
	}
	b.placed = true

	Log.WithFields(logrus.Fields{
		"params":  b.Seed(),
		"indices": indices,
	}).Debug("mines placed at fixed positions")
	return nil
}

// panics [AssertionError]
func (b *Board) plant(index int) {
	h, ok := b.cells[index].(Hidden)
	if !ok {
		panic(AssertionError{"planting a mine under an open cell"})
	}
	h.Mined = true
	b.cells[index] = h
}

package mines

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type Action int

const (
	Reveal Action = iota
	ToggleFlag
)

func (a Action) String() string {
	switch a {
	case Reveal:
		return "reveal"
	case ToggleFlag:
		return "flag"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Outcome describes one applied action. Updated lists the changed cells in
// the order they changed.
type Outcome struct {
	Updated  []int
	Exploded bool
	Phase    Phase
}

// apply performs action on a hidden cell. Nothing is mutated when an error is
// returned.
func (b *Board) apply(index int, action Action, confirm bool) (out Outcome, err error) {
	if !b.contains(index) {
		return out, fmt.Errorf("%w: index %d out of range", ErrInvalidSelection, index)
	}
	h, ok := b.cells[index].(Hidden)
	if !ok {
		return out, fmt.Errorf("%w: cell %d is already revealed", ErrInvalidSelection, index)
	}

	switch action {
	case ToggleFlag:
		b.toggleFlag(index, h)
		out.Updated = []int{index}
	case Reveal:
		if h.Flagged {
			if !confirm {
				return out, ErrConfirmationRequired
			}
			h.Flagged = false
			b.flags--
			b.cells[index] = h
		}
		if h.Mined {
			out.Updated = b.explode(index)
			out.Exploded = true
		} else {
			out.Updated = b.open(index)
		}
	default:
		return out, fmt.Errorf("%w: unknown action %d", ErrInvalidSelection, int(action))
	}

	b.turn++
	return out, nil
}

func (b *Board) toggleFlag(index int, h Hidden) {
	h.Flagged = !h.Flagged
	if h.Flagged {
		b.flags++
	} else {
		b.flags--
	}
	b.cells[index] = h
}

// open reveals a safe cell and floods outward through zero-hint cells.
// Revealing a cell moves it out of Hidden, so each index is queued at most once.
func (b *Board) open(index int) (updated []int) {
	todo := newCelltodo(len(b.cells))

	reveal := func(i int) {
		hint := b.Hint(i)
		b.cells[i] = Revealed{Hint: hint}
		updated = append(updated, i)
		if hint == 0 {
			todo.add(i)
		}
	}

	reveal(index)
	for i, ok := todo.pop(); ok; i, ok = todo.pop() {
		for _, j := range b.Neighbors(i) {
			if h, ok := b.cells[j].(Hidden); ok && !h.Mined && !h.Flagged {
				reveal(j)
			}
		}
	}

	if len(updated) > 1 {
		Log.WithFields(logrus.Fields{
			"start":  index,
			"opened": len(updated),
		}).Debug("cascade")
	}
	return updated
}

// explode reveals the mine at index and then every other hidden mine.
func (b *Board) explode(index int) []int {
	b.cells[index] = Revealed{Mined: true}
	return append([]int{index}, b.revealMines()...)
}

func (b *Board) revealMines() (updated []int) {
	for i, c := range b.cells {
		if h, ok := c.(Hidden); ok && h.Mined {
			if h.Flagged {
				b.flags--
			}
			b.cells[i] = Revealed{Mined: true}
			updated = append(updated, i)
		}
	}
	return updated
}

package mines

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Phase int

const (
	Playing Phase = iota
	Lost
	Won
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Game owns a board and its phase. Lost and Won are terminal.
type Game struct {
	board *Board
	phase Phase
}

// NewGame validates params, sets up a board and places its mines once.
func NewGame(params GameParams, r *rand.Rand) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	board := NewBoard(params)
	if err := board.PlaceMines(r); err != nil {
		return nil, err
	}
	return &Game{board: board, phase: Playing}, nil
}

// NewGameWithMines is like [NewGame] but with mines at fixed indices.
func NewGameWithMines(params GameParams, indices ...int) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	board := NewBoard(params)
	if err := board.PlaceMinesAt(indices...); err != nil {
		return nil, err
	}
	return &Game{board: board, phase: Playing}, nil
}

// Apply performs action on the hidden cell at row, col. A flagged cell is only
// revealed when confirm is set. On error the game is left untouched.
func (g *Game) Apply(row, col int, action Action, confirm bool) (Outcome, error) {
	if g.phase != Playing {
		return Outcome{Phase: g.phase}, fmt.Errorf("%w: game %s", ErrInvalidPhase, g.phase)
	}
	if !g.board.InBounds(row, col) {
		return Outcome{Phase: g.phase}, fmt.Errorf(
			"%w: cell %d:%d outside %dx%d board",
			ErrInvalidSelection, row, col, g.board.Width, g.board.Height,
		)
	}

	out, err := g.board.apply(g.board.IndexOf(row, col), action, confirm)
	if err != nil {
		out.Phase = g.phase
		return out, fmt.Errorf("%s %d:%d: %w", action, row, col, err)
	}

	switch {
	case out.Exploded:
		g.phase = Lost
	case g.board.cleared():
		g.phase = Won
	}
	out.Phase = g.phase

	entry := Log.WithFields(logrus.Fields{
		"action":  action.String(),
		"row":     row,
		"col":     col,
		"turn":    g.board.turn,
		"updated": len(out.Updated),
	})
	if g.phase != Playing {
		entry.WithField("phase", g.phase.String()).Info("game over")
		if Log.IsLevelEnabled(logrus.DebugLevel) {
			entry.Debug("\n" + g.Grid().ToString(g.board.Width))
		}
	} else {
		entry.Debug("move")
	}
	return out, nil
}

func (g *Game) Reveal(row, col int) (Outcome, error) {
	return g.Apply(row, col, Reveal, false)
}

func (g *Game) RevealFlagged(row, col int) (Outcome, error) {
	return g.Apply(row, col, Reveal, true)
}

func (g *Game) ToggleFlag(row, col int) (Outcome, error) {
	return g.Apply(row, col, ToggleFlag, false)
}

// Forfeit ends a game in progress as lost and exposes every mine.
func (g *Game) Forfeit() (Outcome, error) {
	if g.phase != Playing {
		return Outcome{Phase: g.phase}, fmt.Errorf("%w: game %s", ErrInvalidPhase, g.phase)
	}
	g.phase = Lost
	Log.WithField("turn", g.board.turn).Info("game forfeited")
	return Outcome{Updated: g.board.revealMines(), Phase: g.phase}, nil
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Over() bool {
	return g.phase != Playing
}

func (g *Game) Params() GameParams {
	return g.board.GameParams
}

func (g *Game) Width() int {
	return g.board.Width
}

func (g *Game) Height() int {
	return g.board.Height
}

func (g *Game) MinesRemaining() int {
	return g.board.MinesRemaining()
}

func (g *Game) Turn() int {
	return g.board.Turn()
}

// panics [AssertionError]
func (g *Game) IndexOf(row, col int) int {
	return g.board.IndexOf(row, col)
}

// panics [AssertionError]
func (g *Game) Tile(index int) Tile {
	return tileOf(g.board.Cell(index))
}

func (g *Game) Grid() Grid {
	return g.board.Grid()
}

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Doct0rLekter/minesweeper/internal/mines"
)

// Session plays games over a line-based terminal. The game is only mutated
// from the loop goroutine.
type Session struct {
	In  io.Reader
	Out io.Writer
	Log *logrus.Logger

	// Params skips the difficulty prompt when set.
	Params *mines.GameParams
	Rand   *rand.Rand

	// NewGame builds each game; defaults to [mines.NewGame] with Rand.
	NewGame func(mines.GameParams) (*mines.Game, error)
}

type lineReader struct {
	lines chan string
	// err is set before lines is closed.
	err error
}

// readLines feeds input lines to the reader's channel until EOF or until ctx
// is done. A read already blocked on r is only interrupted by closing r.
func readLines(ctx context.Context, r io.Reader) *lineReader {
	in := &lineReader{lines: make(chan string)}
	go func() {
		defer close(in.lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case in.lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil && ctx.Err() == nil {
			in.err = fmt.Errorf("unable to read input: %w", err)
		}
	}()
	return in
}

// Run plays until the player declines another game, input ends or ctx is
// cancelled. A read failure is returned as an error. In is closed on return
// when it is an [io.Closer]. Typing "forfeit" at the tile prompt gives up the current game.
func (s *Session) Run(ctx context.Context) error {
	if s.Log == nil {
		s.Log = logrus.StandardLogger()
	}
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if s.NewGame == nil {
		s.NewGame = func(p mines.GameParams) (*mines.Game, error) {
			return mines.NewGame(p, s.Rand)
		}
	}

	readCtx, stopReading := context.WithCancel(ctx)
	defer stopReading()
	in := readLines(readCtx, s.In)
	done := make(chan struct{})

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(done)
		return s.play(gCtx, in)
	})
	g.Go(func() error {
		select {
		case <-done:
		case <-gCtx.Done():
			s.Log.Debug("session interrupted")
		}
		stopReading()
		if c, ok := s.In.(io.Closer); ok {
			if err := c.Close(); err != nil {
				s.Log.WithError(err).Debug("unable to close input")
			}
		}
		return nil
	})

	err := g.Wait()
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Session) play(ctx context.Context, in *lineReader) error {
	for {
		params, err := s.params(ctx, in)
		if err != nil {
			return err
		}
		game, err := s.NewGame(params)
		if err != nil {
			return fmt.Errorf("unable to start game: %w", err)
		}
		s.Log.WithField("params", params.Seed()).Info("new game")

		if err := s.round(ctx, game, in); err != nil {
			return err
		}

		again, err := s.askBool(ctx, in, "Play again? yes/no: ")
		if err != nil || !again {
			return err
		}
	}
}

func (s *Session) params(ctx context.Context, in *lineReader) (mines.GameParams, error) {
	if s.Params != nil {
		return *s.Params, nil
	}
	fmt.Fprintln(s.Out, "Select a difficulty:")
	for _, d := range []mines.Difficulty{mines.Easy, mines.Medium, mines.Hard} {
		p := d.Params()
		fmt.Fprintf(s.Out, "  %d) %-6s %dx%d, %d mines\n", int(d)+1, d, p.Width, p.Height, p.MineCount)
	}
	for {
		input, err := s.prompt(ctx, in, "Difficulty: ")
		if err != nil {
			return mines.GameParams{}, err
		}
		d, err := ParseDifficulty(input)
		if err != nil {
			fmt.Fprintln(s.Out, err)
			continue
		}
		return d.Params(), nil
	}
}

type move struct {
	action   mines.Action
	row, col int
	confirm  bool
	forfeit  bool
}

func (s *Session) round(ctx context.Context, game *mines.Game, in *lineReader) error {
	for !game.Over() {
		if err := Render(s.Out, game); err != nil {
			return err
		}

		m, err := s.selectMove(ctx, game, in)
		if err != nil {
			return err
		}
		if m.forfeit {
			if _, err := game.Forfeit(); err != nil {
				return err
			}
			continue
		}
		if _, err := game.Apply(m.row, m.col, m.action, m.confirm); err != nil {
			if errors.Is(err, mines.ErrInvalidSelection) {
				fmt.Fprintln(s.Out, "Selected tile must be hidden.")
				continue
			}
			return err
		}
	}

	if err := Render(s.Out, game); err != nil {
		return err
	}
	switch game.Phase() {
	case mines.Won:
		fmt.Fprintln(s.Out, "You win!")
	case mines.Lost:
		fmt.Fprintln(s.Out, "Game over!")
	}
	return nil
}

// selectMove prompts until the player picks a hidden tile and decides what to
// do with it.
func (s *Session) selectMove(ctx context.Context, game *mines.Game, in *lineReader) (move, error) {
	for {
		input, err := s.prompt(ctx, in, "Select a hidden tile (e.g. a1): ")
		if err != nil {
			return move{}, err
		}
		if input == "forfeit" {
			return move{forfeit: true}, nil
		}
		row, col, err := ParseCell(input, game.Width(), game.Height())
		if err != nil {
			fmt.Fprintln(s.Out, err)
			continue
		}
		m := move{row: row, col: col}

		switch game.Tile(game.IndexOf(row, col)).Glyph {
		case mines.GlyphHidden:
			flag, err := s.askBool(ctx, in, "Flag this tile? yes/no: ")
			if err != nil {
				return move{}, err
			}
			if flag {
				m.action = mines.ToggleFlag
			}
			return m, nil
		case mines.GlyphFlagged:
			unflag, err := s.askBool(ctx, in, "Unflag this tile? yes/no: ")
			if err != nil {
				return move{}, err
			}
			if unflag {
				m.action = mines.ToggleFlag
				return m, nil
			}
			reveal, err := s.askBool(ctx, in, "Reveal this flagged tile? yes/no: ")
			if err != nil {
				return move{}, err
			}
			if reveal {
				m.action, m.confirm = mines.Reveal, true
				return m, nil
			}
		default:
			fmt.Fprintln(s.Out, "Selected tile must be hidden.")
		}
	}
}

func (s *Session) askBool(ctx context.Context, in *lineReader, text string) (bool, error) {
	for {
		input, err := s.prompt(ctx, in, text)
		if err != nil {
			return false, err
		}
		v, err := ParseBool(input)
		if err != nil {
			fmt.Fprintln(s.Out, "Invalid input. Please enter either 'yes' or 'no'.")
			continue
		}
		return v, nil
	}
}

// prompt returns the next non-blank line, lowercased.
func (s *Session) prompt(ctx context.Context, in *lineReader, text string) (string, error) {
	for {
		fmt.Fprint(s.Out, text)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case line, ok := <-in.lines:
			if !ok {
				if err := ctx.Err(); err != nil {
					return "", err
				}
				if in.err != nil {
					return "", in.err
				}
				return "", io.EOF
			}
			line = strings.ToLower(strings.TrimSpace(line))
			if line == "" {
				continue
			}
			return line, nil
		}
	}
}

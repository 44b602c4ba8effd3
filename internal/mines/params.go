package mines

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type GameParams struct {
	Width     int `schema:"width,required"`
	Height    int `schema:"height,required"`
	MineCount int `schema:"mines,required"`
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) Validate() error {
	switch {
	case p.Width < 1:
		return fmt.Errorf("%w: width must be positive, got %d", ErrConfiguration, p.Width)
	case p.Height < 1:
		return fmt.Errorf("%w: height must be positive, got %d", ErrConfiguration, p.Height)
	case p.MineCount < 0:
		return fmt.Errorf("%w: negative mine count %d", ErrConfiguration, p.MineCount)
	case p.Width > math.MaxInt/p.Height:
		return fmt.Errorf("%w: board %dx%d is too large", ErrConfiguration, p.Width, p.Height)
	case p.MineCount > p.Width*p.Height:
		return fmt.Errorf(
			"%w: not enough space for %d mines (%d > %d * %d)",
			ErrConfiguration, p.MineCount, p.MineCount, p.Width, p.Height,
		)
	}
	return nil
}

// Seed packs the parameters into the compact "width:height:mines" form.
func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (GameParams, error) {
	parts := strings.Split(seed, ":")
	if len(parts) != 3 {
		return GameParams{}, fmt.Errorf(
			`%w: invalid game params seed %q: want "width:height:mines"`,
			ErrConfiguration, seed,
		)
	}
	var values [3]int
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return GameParams{}, fmt.Errorf("%w: invalid game params seed %q: %w", ErrConfiguration, seed, err)
		}
		values[i] = v
	}

	p := GameParams{Width: values[0], Height: values[1], MineCount: values[2]}
	if err := p.Validate(); err != nil {
		return GameParams{}, err
	}
	return p, nil
}

// ParseQuery decodes parameters from a query string such as
// "width=9&height=9&mines=10".
func ParseQuery(query string) (GameParams, error) {
	var p GameParams
	values, err := url.ParseQuery(query)
	if err != nil {
		return GameParams{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if err := decoder.Decode(&p, values); err != nil {
		return GameParams{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if err := p.Validate(); err != nil {
		return GameParams{}, err
	}
	return p, nil
}

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

var difficultyParams = map[Difficulty]GameParams{
	Easy:   {Width: 5, Height: 5, MineCount: 4},
	Medium: {Width: 8, Height: 8, MineCount: 14},
	Hard:   {Width: 12, Height: 12, MineCount: 35},
}

func (d Difficulty) Params() GameParams {
	p, ok := difficultyParams[d]
	if !ok {
		panic(AssertionError{fmt.Sprintf("unknown difficulty %d", d)})
	}
	return p
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

package mines

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifficultyParams(t *testing.T) {
	assert.Equal(t, GameParams{Width: 5, Height: 5, MineCount: 4}, Easy.Params())
	assert.Equal(t, GameParams{Width: 8, Height: 8, MineCount: 14}, Medium.Params())
	assert.Equal(t, GameParams{Width: 12, Height: 12, MineCount: 35}, Hard.Params())
	assert.Equal(t, "medium", Medium.String())
	assert.Panics(t, func() { Difficulty(9).Params() })
}

func TestSeed(t *testing.T) {
	p := GameParams{Width: 9, Height: 7, MineCount: 10}
	assert.Equal(t, "9:7:10", p.Seed())

	parsed, err := ParseSeed(p.Seed())
	require.NoError(t, err)
	assert.Equal(t, p, parsed)

	for _, seed := range []string{"", "9:7", "a:b:c", "0:5:0", "2:2:5", "9:9:10:junk", "9:9:10 ", "9 9 10"} {
		p, err := ParseSeed(seed)
		assert.ErrorIs(t, err, ErrConfiguration, "seed %q", seed)
		assert.Zero(t, p, "seed %q", seed)
	}
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		query string
		want  GameParams
		ok    bool
	}{
		{"width=9&height=9&mines=10", GameParams{Width: 9, Height: 9, MineCount: 10}, true},
		{"mines=1&height=1&width=30&unique=1", GameParams{Width: 30, Height: 1, MineCount: 1}, true},
		{"width=9&height=9", GameParams{}, false},
		{"width=nine&height=9&mines=1", GameParams{}, false},
		{"width=3&height=3&mines=10", GameParams{}, false},
		{"width=%zz", GameParams{}, false},
	}
	for _, test := range tests {
		t.Run(test.query, func(t *testing.T) {
			p, err := ParseQuery(test.query)
			if !test.ok {
				assert.ErrorIs(t, err, ErrConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, p)
		})
	}
}

func TestValidateLargeBoard(t *testing.T) {
	huge := math.MaxInt/2 + 1
	assert.ErrorIs(t, GameParams{Width: huge, Height: 2}.Validate(), ErrConfiguration)
	assert.ErrorIs(t, GameParams{Width: 2, Height: huge}.Validate(), ErrConfiguration)
	assert.NoError(t, GameParams{Width: math.MaxInt, Height: 1}.Validate())

	_, err := NewGameWithMines(GameParams{Width: huge, Height: 4})
	assert.ErrorIs(t, err, ErrConfiguration)
}

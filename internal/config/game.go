package config

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"strings"
)

type Game struct {
	Difficulty string
	Params     string
	Seed       *[2]uint64
}

// ParseRandSeed reads a "seed1:seed2" pair of PCG seeds.
func ParseRandSeed(s string) (*[2]uint64, error) {
	var seed [2]uint64
	n, err := fmt.Sscanf(strings.ReplaceAll(s, ":", " "), "%d %d", &seed[0], &seed[1])
	if n != 2 || err != nil {
		return nil, fmt.Errorf(`invalid rand seed "%s" (n = %d, err = %v)`, s, n, err)
	}
	return &seed, nil
}

func NewGame() (*Game, error) {
	config := &Game{
		Difficulty: os.Getenv("MINES_DIFFICULTY"),
		Params:     os.Getenv("MINES_PARAMS"),
	}

	if seedStr, ok := os.LookupEnv("MINES_SEED"); ok {
		seed, err := ParseRandSeed(seedStr)
		if err != nil {
			return nil, fmt.Errorf("invalid MINES_SEED: %w", err)
		}
		config.Seed = seed
	}

	return config, nil
}

// NewRand returns a PCG source, seeded from Seed when set.
func (c Game) NewRand() *rand.Rand {
	if c.Seed != nil {
		return rand.New(rand.NewPCG(c.Seed[0], c.Seed[1]))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

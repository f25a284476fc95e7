package sklist

import (
	"math/rand"
	"time"
)

// LevelGenerator draws the number of levels a new node participates in.
// Implementations own their random state; a generator built from a fixed
// seed must reproduce the same sequence of draws.
type LevelGenerator interface {
	// NextLevel returns a level count in [1, MaxLevel()].
	NextLevel() int
	// MaxLevel returns the cap applied to NextLevel results.
	MaxLevel() int
}

type geometricGen struct {
	rnd   *rand.Rand
	p     float64
	limit int
}

// NewLevelGenerator returns the standard geometric generator: every level
// above the first is granted with independent probability p, capped at
// limit. A zero seed seeds from the clock.
func NewLevelGenerator(p float64, limit int, seed int64) LevelGenerator {
	if p <= 0 || p >= 1 {
		p = DefaultProbability
	}
	if limit < 1 {
		limit = DefaultMaxLevelCap
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &geometricGen{
		rnd:   rand.New(rand.NewSource(seed)),
		p:     p,
		limit: limit,
	}
}

func (g *geometricGen) NextLevel() int {
	level := 1
	for g.rnd.Float64() < g.p && level < g.limit {
		level++
	}
	return level
}

func (g *geometricGen) MaxLevel() int {
	return g.limit
}

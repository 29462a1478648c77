package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Spawner creates pipes at the right edge with a uniform random offset.
type Spawner struct {
	rng  *rand.Rand
	seed int64
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset rewinds the RNG to its seed.
func (s *Spawner) Reset() {
	s.rng = rand.New(rand.NewSource(s.seed))
}

// Next returns a new pipe at x = canvas width.
// Offset is drawn uniformly from [OffsetMin, OffsetMax).
func (s *Spawner) Next(cfg config.FlappyConfig) Pipe {
	lo, hi := cfg.Pipes.OffsetMin, cfg.Pipes.OffsetMax
	return Pipe{
		X:      cfg.Canvas.Width,
		Offset: lo + (hi-lo)*s.rng.Float64(),
	}
}

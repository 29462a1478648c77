package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Tilt maps a vertical velocity to a rotation in degrees.
// Rising tilts the nose up towards MinDeg, falling tilts it down towards MaxDeg.
func Tilt(cfg config.FlappyConfig, velocity float64) float64 {
	r := cfg.Rotation
	if velocity <= 0 {
		return max(r.MinDeg, r.RiseFactor*velocity/cfg.Physics.Thrust)
	}
	return min(r.MaxDeg, r.FallFactor*velocity/cfg.Physics.Thrust)
}

// Flap sets the bird velocity to the upward impulse.
func Flap(cfg config.FlappyConfig, b *Bird) {
	b.Velocity = -cfg.Physics.Thrust
}

// StepBird advances the bird one playing tick: gravity, Euler integration,
// tilt and the animation cadence gated by the frame counter.
func StepBird(cfg config.FlappyConfig, b *Bird, frames int) {
	b.Velocity += cfg.Physics.Gravity
	b.Y += b.Velocity
	b.Rotation = Tilt(cfg, b.Velocity)

	if frames%cfg.Bird.FrameEvery == 0 {
		b.Frame = (b.Frame + 1) % cfg.Bird.Frames
	}
}

// FallBird advances the bird one game-over tick. The bird drops faster than
// in play and never sinks below the resting line above the ground.
func FallBird(cfg config.FlappyConfig, b *Bird) {
	rest := cfg.RestY()
	if b.Y >= rest {
		return
	}
	b.Velocity += cfg.Physics.Gravity * cfg.Physics.FallGravityMultiplier
	b.Y = min(b.Y+b.Velocity, rest)
	b.Rotation = min(cfg.Rotation.MaxDeg, b.Rotation+cfg.Rotation.FallStep)
}

// AdvancePipes moves every pipe left by one step, drops the pipes that left
// the play area and returns the survivors with the number of pipes whose
// left edge crossed birdX during this step.
//
// The survivors reuse the backing array of pipes.
func AdvancePipes(cfg config.FlappyPipes, pipes []Pipe, birdX float64) ([]Pipe, int) {
	scored := 0
	valid := pipes[:0]
	for _, p := range pipes {
		prev := p.X
		p.X -= cfg.Speed

		if !p.Passed && prev > birdX && p.X <= birdX {
			p.Passed = true
			scored++
		}
		if p.Offscreen(cfg) {
			continue
		}
		valid = append(valid, p)
	}
	return valid, scored
}

package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the player entity. Its horizontal position is fixed by config.
type Bird struct {
	Y        float64 // Vertical center, pixels from the top of the play area
	Velocity float64 // Signed, pixels per tick, positive is down
	Rotation float64 // Visual tilt in degrees, positive is nose down
	Frame    int     // Index into the bird animation frames
}

// NewBird returns a bird parked at y with no motion.
func NewBird(y float64) Bird {
	return Bird{Y: y}
}

// Pipe is one obstacle: a top barrier and a bottom barrier around a fixed gap.
type Pipe struct {
	X      float64 // Left edge
	Offset float64 // Top edge of the top barrier sprite
	Passed bool    // Whether this pipe has already been scored
}

// GapTop returns the y where the opening starts.
func (p Pipe) GapTop(cfg config.FlappyPipes) float64 {
	return p.Offset + cfg.TopHeight
}

// GapBottom returns the y where the bottom barrier starts.
func (p Pipe) GapBottom(cfg config.FlappyPipes) float64 {
	return p.GapTop(cfg) + cfg.Gap
}

// TopRect returns the rectangle covered by the top barrier sprite.
func (p Pipe) TopRect(cfg config.FlappyPipes) core.Rect {
	return core.NewRect(p.X, p.Offset, cfg.Width, cfg.TopHeight)
}

// BottomRect returns the rectangle covered by the bottom barrier sprite.
func (p Pipe) BottomRect(cfg config.FlappyPipes) core.Rect {
	return core.NewRect(p.X, p.GapBottom(cfg), cfg.Width, cfg.TopHeight)
}

// HitRects returns both barriers as solid regions for collision. The top one
// reaches up to ceil and the bottom one down to floor, so the whole column
// outside the gap blocks the bird.
func (p Pipe) HitRects(cfg config.FlappyPipes, ceil, floor float64) (top, bottom core.Rect) {
	gapTop, gapBottom := p.GapTop(cfg), p.GapBottom(cfg)
	top = core.NewRect(p.X, ceil, cfg.Width, gapTop-ceil)
	bottom = core.NewRect(p.X, gapBottom, cfg.Width, floor-gapBottom)
	return top, bottom
}

// Offscreen reports whether the trailing edge has left the play area.
func (p Pipe) Offscreen(cfg config.FlappyPipes) bool {
	return p.X+cfg.Width <= 0
}

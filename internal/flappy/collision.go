package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// BirdBounds returns the square hitbox centered on the bird.
func BirdBounds(cfg config.FlappyConfig, b Bird) core.Rect {
	half := cfg.Bird.Size / 2
	return core.NewRect(cfg.Bird.X-half, b.Y-half, cfg.Bird.Size, cfg.Bird.Size)
}

// Collides reports whether the bird touches the ground or any pipe.
// Above the gap counts as the top barrier, so flying over a pipe is a hit.
func Collides(cfg config.FlappyConfig, b Bird, pipes []Pipe) bool {
	box := BirdBounds(cfg, b)

	if box.Bottom() > cfg.GroundY() {
		return true
	}

	for _, p := range pipes {
		ceil := min(box.Y, p.Offset)
		floor := max(box.Bottom(), p.BottomRect(cfg.Pipes).Bottom())
		top, bottom := p.HitRects(cfg.Pipes, ceil, floor)
		if box.Intersects(top) || box.Intersects(bottom) {
			return true
		}
	}
	return false
}

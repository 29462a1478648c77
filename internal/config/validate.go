package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the table describes a playable game.
func (c FlappyConfig) Validate() error {
	var problems []string
	positive := func(name string, v float64) {
		if v <= 0 {
			problems = append(problems, fmt.Sprintf("%s must be positive, got %g", name, v))
		}
	}

	positive("canvas.width", c.Canvas.Width)
	positive("canvas.height", c.Canvas.Height)
	positive("physics.thrust", c.Physics.Thrust)
	positive("pipes.gap", c.Pipes.Gap)
	positive("pipes.top_height", c.Pipes.TopHeight)
	positive("pipes.width", c.Pipes.Width)
	positive("pipes.speed", c.Pipes.Speed)
	positive("bird.size", c.Bird.Size)
	positive("ground.height", c.Ground.Height)

	if c.Physics.Gravity < 0 {
		problems = append(problems, "physics.gravity must not be negative")
	}
	if c.Pipes.SpawnIntervalMS <= 0 {
		problems = append(problems, "pipes.spawn_interval_ms must be positive")
	}
	if c.Pipes.OffsetMin > c.Pipes.OffsetMax {
		problems = append(problems, "pipes.offset_min must not exceed pipes.offset_max")
	}
	if c.Bird.Frames <= 0 {
		problems = append(problems, "bird.frames must be positive")
	}
	if c.Bird.FrameEvery <= 0 {
		problems = append(problems, "bird.frame_every must be positive")
	}
	if c.Rotation.MinDeg > c.Rotation.MaxDeg {
		problems = append(problems, "rotation.min_deg must not exceed rotation.max_deg")
	}
	if c.Ground.Height >= c.Canvas.Height {
		problems = append(problems, "ground.height must be smaller than canvas.height")
	}
	switch c.Ground.ScrollDirection {
	case "left", "right":
	default:
		problems = append(problems, fmt.Sprintf("ground.scroll_direction must be left or right, got %q", c.Ground.ScrollDirection))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

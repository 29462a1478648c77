package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestCollides(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	// Gap spans y 150..240
	pipe := Pipe{X: 70, Offset: -250}

	tests := []struct {
		name  string
		y     float64
		pipes []Pipe
		want  bool
	}{
		{"inside gap", 195, []Pipe{pipe}, false},
		{"touching gap edges", 167, []Pipe{pipe}, false},
		{"overlaps top barrier", 160, []Pipe{pipe}, true},
		{"overlaps bottom barrier", 230, []Pipe{pipe}, true},
		{"above the pipe", -500, []Pipe{pipe}, true},
		{"pipe ahead", 160, []Pipe{{X: 97, Offset: -250}}, false},
		{"pipe behind", 160, []Pipe{{X: 11, Offset: -250}}, false},
		{"pipe just overlapping", 160, []Pipe{{X: 96.5, Offset: -250}}, true},
		{"clear sky", 200, nil, false},
		{"resting on ground", 351, nil, false},
		{"into ground", 351.5, nil, true},
		{"center on ground line", 368, nil, true},
		{"center below ground", 420, []Pipe{pipe}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(cfg, Bird{Y: tt.y}, tt.pipes); got != tt.want {
				t.Errorf("Collides(y=%v) = %v, expected %v", tt.y, got, tt.want)
			}
		})
	}
}

func TestCollidesIsPure(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	b := Bird{Y: 160, Velocity: 2, Rotation: 10, Frame: 3}
	pipes := []Pipe{{X: 70, Offset: -250}}

	Collides(cfg, b, pipes)

	if b != (Bird{Y: 160, Velocity: 2, Rotation: 10, Frame: 3}) || pipes[0] != (Pipe{X: 70, Offset: -250}) {
		t.Error("Collides must not modify its inputs")
	}
}

func TestPipeRects(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	p := Pipe{X: 100, Offset: -200}

	top := p.TopRect(cfg.Pipes)
	if top.X != 100 || top.Y != -200 || top.W != 52 || top.Bottom() != 200 {
		t.Errorf("TopRect = %+v", top)
	}
	bottom := p.BottomRect(cfg.Pipes)
	if bottom.Y != 290 || bottom.H != 400 {
		t.Errorf("BottomRect = %+v", bottom)
	}
	if bottom.Y-top.Bottom() != cfg.Pipes.Gap {
		t.Errorf("gap = %v, expected %v", bottom.Y-top.Bottom(), cfg.Pipes.Gap)
	}

	top, bottom = p.HitRects(cfg.Pipes, -1000, 1000)
	if top.Y != -1000 || top.Bottom() != 200 || bottom.Y != 290 || bottom.Bottom() != 1000 {
		t.Errorf("HitRects = %+v, %+v", top, bottom)
	}

	box := BirdBounds(cfg, Bird{Y: 100})
	if box.X != 63 || box.Y != 83 || box.Right() != 97 || box.Bottom() != 117 {
		t.Errorf("BirdBounds = %+v", box)
	}
}

func TestCollidesMatchesGap(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	pipe := Pipe{X: 70, Offset: -250}
	gapTop, gapBottom := pipe.GapTop(cfg.Pipes), pipe.GapBottom(cfg.Pipes)

	// Sweep the bird through a column overlapping the pipe, from far above
	// the screen down to the ground line.
	for y := -900.0; y < cfg.RestY(); y += 0.5 {
		box := BirdBounds(cfg, Bird{Y: y})
		want := box.Y < gapTop || box.Bottom() > gapBottom
		if got := Collides(cfg, Bird{Y: y}, []Pipe{pipe}); got != want {
			t.Fatalf("Collides(y=%v) = %v, expected %v (gap %v..%v)", y, got, want, gapTop, gapBottom)
		}
	}
}

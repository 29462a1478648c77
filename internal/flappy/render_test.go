package flappy

import (
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestRenderSequence(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	assets := BundleFromConfig(cfg.Assets)
	tilt := 45.0
	snap := Snapshot{
		State:  StatePlaying,
		Bird:   Bird{Y: 120, Rotation: tilt, Frame: 1},
		Pipes:  []Pipe{{X: 300, Offset: -200}},
		Frames: 10,
	}

	rec := core.NewRecorder()
	Render(rec, snap, &assets, cfg)

	want := []core.DrawOp{
		{Kind: core.OpFillRect, X: 0, Y: 0, W: 552, H: 480, Color: "#30c0df"},
		{Kind: core.OpDrawImage, Handle: "/flappybird/img/BG.png", X: 0, Y: 252},
		{Kind: core.OpDrawImage, Handle: "/flappybird/img/BG.png", X: 276, Y: 252},
		{Kind: core.OpDrawImage, Handle: "/flappybird/img/toppipe.png", X: 300, Y: -200},
		{Kind: core.OpDrawImage, Handle: "/flappybird/img/botpipe.png", X: 300, Y: 290},
		{Kind: core.OpSave},
		{Kind: core.OpTranslate, X: 80, Y: 120},
		{Kind: core.OpRotate, Angle: tilt * math.Pi / 180},
		{Kind: core.OpDrawImage, Handle: "/flappybird/img/bird/b1.png", X: -17, Y: -17},
		{Kind: core.OpRestore},
		{Kind: core.OpDrawImage, Handle: "/flappybird/img/ground.png", X: -20, Y: 368},
		{Kind: core.OpDrawImage, Handle: "/flappybird/img/ground.png", X: 532, Y: 368},
	}

	if len(rec.Ops) != len(want) {
		t.Fatalf("recorded %d ops, expected %d: %v", len(rec.Ops), len(want), rec.Ops)
	}
	for i := range want {
		if rec.Ops[i] != want[i] {
			t.Errorf("op %d = %s, expected %s", i, rec.Ops[i], want[i])
		}
	}
}

func TestRenderWithoutAssets(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	rec := core.NewRecorder()

	Render(rec, Snapshot{State: StateLoading}, nil, cfg)
	if len(rec.Ops) != 0 {
		t.Errorf("render without assets drew %d ops", len(rec.Ops))
	}

	// A nil surface is tolerated too
	assets := BundleFromConfig(cfg.Assets)
	Render(nil, Snapshot{}, &assets, cfg)
}

func TestRenderDoesNotMutate(t *testing.T) {
	s := newPlayingSession(t, nil)
	s.pipes = append(s.pipes, Pipe{X: 400, Offset: -300}, Pipe{X: 500, Offset: -160})
	s.Tick()
	before := s.Snapshot()

	rec := core.NewRecorder()
	for i := 0; i < 3; i++ {
		s.Render(rec)
	}

	if after := s.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Errorf("Render changed the session:\n%+v\n%+v", before, after)
	}
}

func TestRenderScrollDirection(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Ground.ScrollDirection = "right"
	assets := BundleFromConfig(cfg.Assets)

	rec := core.NewRecorder()
	Render(rec, Snapshot{State: StatePlaying, Frames: 10}, &assets, cfg)

	n := len(rec.Ops)
	first, second := rec.Ops[n-2], rec.Ops[n-1]
	if first.X != 20 || second.X != 20-552 {
		t.Errorf("ground at %v and %v, expected 20 and -532", first.X, second.X)
	}
}

func TestGroundOffset(t *testing.T) {
	classic := config.DefaultFlappyConfig()
	drift := config.DefaultFlappyConfig()
	if err := config.ApplyFlappyPreset(&drift, config.PresetDrift); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		cfg    config.FlappyConfig
		state  State
		frames int
		want   float64
	}{
		{"playing", classic, StatePlaying, 10, 20},
		{"playing wraps", classic, StatePlaying, 300, 48},
		{"ready classic", classic, StateReady, 10, 0},
		{"ready drift", drift, StateReady, 10, 20},
		{"game over", drift, StateGameOver, 10, 0},
		{"loading", drift, StateLoading, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GroundOffset(tt.cfg, tt.state, tt.frames); got != tt.want {
				t.Errorf("GroundOffset() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestAssetBundle(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	b := BundleFromConfig(cfg.Assets)

	if err := b.Validate(4); err != nil {
		t.Errorf("default bundle should be valid: %v", err)
	}
	if b.Bird(4) != b.BirdFrames[0] || b.Bird(-1) != b.BirdFrames[3] {
		t.Error("Bird() should wrap frame indices")
	}

	// b0 appears twice in the animation but once in the handle list
	if got := b.Handles(); len(got) != 7 {
		t.Errorf("Handles() = %v, expected 7 distinct handles", got)
	}

	b.BirdFrames[1] = ""
	if err := b.Validate(4); err == nil {
		t.Error("empty bird frame should be invalid")
	}
	if (AssetBundle{}).Bird(0) != "" {
		t.Error("empty bundle has no bird frame")
	}
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultYAMLMatchesDefaults(t *testing.T) {
	cfg, err := ParseFlappy(GetDefaultYAML())
	if err != nil {
		t.Fatalf("ParseFlappy(embedded) failed: %v", err)
	}
	want := DefaultFlappyConfig()

	if cfg.Physics != want.Physics {
		t.Errorf("physics = %+v, expected %+v", cfg.Physics, want.Physics)
	}
	if cfg.Pipes != want.Pipes {
		t.Errorf("pipes = %+v, expected %+v", cfg.Pipes, want.Pipes)
	}
	if cfg.Bird != want.Bird {
		t.Errorf("bird = %+v, expected %+v", cfg.Bird, want.Bird)
	}
	if cfg.Canvas != want.Canvas {
		t.Errorf("canvas = %+v, expected %+v", cfg.Canvas, want.Canvas)
	}
	if len(cfg.Assets.BirdFrames) != cfg.Bird.Frames {
		t.Errorf("embedded config has %d bird frames, expected %d", len(cfg.Assets.BirdFrames), cfg.Bird.Frames)
	}
}

func TestDerivedLines(t *testing.T) {
	cfg := DefaultFlappyConfig()
	if got := cfg.GroundY(); got != 368 {
		t.Errorf("GroundY() = %v, expected 368", got)
	}
	if got := cfg.RestY(); got != 334 {
		t.Errorf("RestY() = %v, expected 334", got)
	}
	if got := cfg.Pipes.SpawnInterval().Milliseconds(); got != 2000 {
		t.Errorf("SpawnInterval() = %dms, expected 2000ms", got)
	}
}

func TestLoadFlappyCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := []byte("physics:\n  gravity: 0.25\npipes:\n  gap: 120\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.25 {
		t.Errorf("gravity = %v, expected 0.25", cfg.Physics.Gravity)
	}
	if cfg.Pipes.Gap != 120 {
		t.Errorf("gap = %v, expected 120", cfg.Pipes.Gap)
	}
	// Keys missing from the file keep their defaults
	if cfg.Physics.Thrust != 3.6 {
		t.Errorf("thrust = %v, expected default 3.6", cfg.Physics.Thrust)
	}
}

func TestLoadFlappyCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFlappy(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("pipes: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlappy(bad); err == nil {
		t.Error("malformed YAML should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("pipes:\n  spawn_interval_ms: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFlappy(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero spawn interval: err = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
		ok     bool
	}{
		{"defaults", func(*FlappyConfig) {}, true},
		{"zero width", func(c *FlappyConfig) { c.Canvas.Width = 0 }, false},
		{"negative gravity", func(c *FlappyConfig) { c.Physics.Gravity = -1 }, false},
		{"zero gravity", func(c *FlappyConfig) { c.Physics.Gravity = 0 }, true},
		{"inverted offsets", func(c *FlappyConfig) { c.Pipes.OffsetMin, c.Pipes.OffsetMax = -100, -200 }, false},
		{"equal offsets", func(c *FlappyConfig) { c.Pipes.OffsetMin, c.Pipes.OffsetMax = -200, -200 }, true},
		{"no frames", func(c *FlappyConfig) { c.Bird.Frames = 0 }, false},
		{"ground too tall", func(c *FlappyConfig) { c.Ground.Height = c.Canvas.Height }, false},
		{"bad direction", func(c *FlappyConfig) { c.Ground.ScrollDirection = "up" }, false},
		{"right direction", func(c *FlappyConfig) { c.Ground.ScrollDirection = "right" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyFlappyPreset(t *testing.T) {
	cfg := DefaultFlappyConfig()

	if err := ApplyFlappyPreset(&cfg, PresetDrift); err != nil {
		t.Fatalf("ApplyFlappyPreset(drift) failed: %v", err)
	}
	if !cfg.Ground.ScrollInReady {
		t.Error("drift should scroll the ground on the start screen")
	}

	if err := ApplyFlappyPreset(&cfg, PresetClassic); err != nil {
		t.Fatalf("ApplyFlappyPreset(classic) failed: %v", err)
	}
	if cfg.Ground.ScrollInReady {
		t.Error("classic should not scroll the ground on the start screen")
	}

	if err := ApplyFlappyPreset(&cfg, ""); err != nil {
		t.Errorf("empty preset should be a no-op, got %v", err)
	}
	if err := ApplyFlappyPreset(&cfg, "turbo"); err == nil {
		t.Error("unknown preset should be an error")
	}
}

func TestParsePreset(t *testing.T) {
	for _, p := range Presets() {
		got, err := ParsePreset(string(p))
		if err != nil || got != p {
			t.Errorf("ParsePreset(%q) = %q, %v", p, got, err)
		}
	}
	if _, err := ParsePreset("nope"); err == nil {
		t.Error("ParsePreset should reject unknown names")
	}
	if _, err := ParsePreset(string(VariantCustom)); err == nil {
		t.Error("custom is a score variant, not a preset")
	}
}

func TestScoreVariants(t *testing.T) {
	variants := ScoreVariants()
	if len(variants) != len(Presets())+1 {
		t.Fatalf("ScoreVariants() = %v", variants)
	}
	if variants[len(variants)-1] != VariantCustom {
		t.Errorf("last variant = %q, expected %q", variants[len(variants)-1], VariantCustom)
	}
}

// Package config provides YAML-based configuration loading and variant
// presets for the flappy simulation.
package config

import "time"

// FlappyConfig is the constants table shared by every simulation component.
// The defaults reproduce the reference game exactly; variants are presets
// over the same table rather than separate code paths.
type FlappyConfig struct {
	Canvas     FlappyCanvas     `yaml:"canvas"`
	Physics    FlappyPhysics    `yaml:"physics"`
	Pipes      FlappyPipes      `yaml:"pipes"`
	Bird       FlappyBird       `yaml:"bird"`
	Rotation   FlappyRotation   `yaml:"rotation"`
	Ground     FlappyGround     `yaml:"ground"`
	Background FlappyBackground `yaml:"background"`
	Assets     FlappyAssets     `yaml:"assets"`
}

// FlappyCanvas defines the play area in pixels.
type FlappyCanvas struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Backdrop string  `yaml:"backdrop"` // Fill color drawn before everything else
}

// FlappyPhysics defines per-tick physics parameters.
type FlappyPhysics struct {
	Gravity               float64 `yaml:"gravity"`                 // Added to velocity every tick while playing
	Thrust                float64 `yaml:"thrust"`                  // Flap sets velocity to -thrust
	FallGravityMultiplier float64 `yaml:"fall_gravity_multiplier"` // Gravity scale for the game-over fall
	FlapOnStart           bool    `yaml:"flap_on_start"`           // The press that starts a round also flaps
}

// FlappyPipes defines obstacle parameters.
type FlappyPipes struct {
	Gap             float64 `yaml:"gap"`               // Vertical opening between top and bottom pipe
	TopHeight       float64 `yaml:"top_height"`        // Height of the top pipe sprite
	Width           float64 `yaml:"width"`             // Pipe width
	OffsetMin       float64 `yaml:"offset_min"`        // Lowest top-pipe y offset
	OffsetMax       float64 `yaml:"offset_max"`        // Highest top-pipe y offset
	Speed           float64 `yaml:"speed"`             // Pixels moved left per tick
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"` // Wall-clock spawn period
}

// SpawnInterval returns the spawn period as a duration.
func (p FlappyPipes) SpawnInterval() time.Duration {
	return time.Duration(p.SpawnIntervalMS) * time.Millisecond
}

// FlappyBird defines the player entity.
type FlappyBird struct {
	X          float64 `yaml:"x"`           // Fixed horizontal center
	StartY     float64 `yaml:"start_y"`     // Vertical center at session start
	ResetY     float64 `yaml:"reset_y"`     // Vertical center after each restart
	Size       float64 `yaml:"size"`        // Square hitbox side
	Frames     int     `yaml:"frames"`      // Number of animation frames
	FrameEvery int     `yaml:"frame_every"` // Advance the animation every N ticks
}

// FlappyRotation defines how tilt follows velocity.
type FlappyRotation struct {
	MinDeg     float64 `yaml:"min_deg"`     // Clamp while rising
	MaxDeg     float64 `yaml:"max_deg"`     // Clamp while falling
	RiseFactor float64 `yaml:"rise_factor"` // Degrees per unit of velocity/thrust when rising
	FallFactor float64 `yaml:"fall_factor"` // Degrees per unit of velocity/thrust when falling
	FallStep   float64 `yaml:"fall_step"`   // Degrees added per tick during the game-over fall
}

// FlappyGround defines the ground strip.
type FlappyGround struct {
	Height          float64 `yaml:"height"`
	ScrollSpeed     float64 `yaml:"scroll_speed"`     // Pixels per frame
	ScrollInReady   bool    `yaml:"scroll_in_ready"`  // Keep scrolling on the start screen
	ScrollDirection string  `yaml:"scroll_direction"` // "left" or "right"
}

// FlappyBackground defines the skyline strip.
type FlappyBackground struct {
	Height float64 `yaml:"height"`
}

// FlappyAssets holds the opaque image handles the renderer draws.
type FlappyAssets struct {
	BirdFrames []string `yaml:"bird_frames"`
	PipeTop    string   `yaml:"pipe_top"`
	PipeBottom string   `yaml:"pipe_bottom"`
	Background string   `yaml:"background"`
	Ground     string   `yaml:"ground"`
}

// GroundY returns the y coordinate of the ground line.
func (c FlappyConfig) GroundY() float64 {
	return c.Canvas.Height - c.Ground.Height
}

// RestY returns the lowest center the bird reaches while falling after a crash.
func (c FlappyConfig) RestY() float64 {
	return c.GroundY() - c.Bird.Size
}

// Preset names a variant of the constants table.
type Preset string

const (
	PresetClassic Preset = "classic" // Ground scrolls only while playing
	PresetDrift   Preset = "drift"   // Ground keeps scrolling on the start screen
)

// VariantCustom files the scores of runs with a custom constants file and
// no preset. It is a score variant, not a preset.
const VariantCustom Preset = "custom"

// Presets returns all known presets in display order.
func Presets() []Preset {
	return []Preset{PresetClassic, PresetDrift}
}

// ScoreVariants returns every variant scores can be filed under.
func ScoreVariants() []Preset {
	return append(Presets(), VariantCustom)
}

// Describe returns a one-line description of the preset.
func (p Preset) Describe() string {
	switch p {
	case PresetClassic:
		return "reference tuning, ground scrolls while playing"
	case PresetDrift:
		return "reference tuning, ground also scrolls on the start screen"
	case VariantCustom:
		return "constants loaded from --config"
	default:
		return "unknown preset"
	}
}

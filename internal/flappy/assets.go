package flappy

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// ErrInvalidAssets is wrapped by every asset resolution failure.
var ErrInvalidAssets = errors.New("flappy: invalid asset bundle")

// AssetBundle is a resolved set of opaque image handles.
// The core never decodes them; the drawing surface decides what a handle looks like.
type AssetBundle struct {
	BirdFrames []string
	PipeTop    string
	PipeBottom string
	Background string
	Ground     string
}

// BundleFromConfig copies the configured handles into a bundle.
func BundleFromConfig(a config.FlappyAssets) AssetBundle {
	return AssetBundle{
		BirdFrames: append([]string(nil), a.BirdFrames...),
		PipeTop:    a.PipeTop,
		PipeBottom: a.PipeBottom,
		Background: a.Background,
		Ground:     a.Ground,
	}
}

// Validate checks that the bundle holds exactly frames bird frames and every
// other handle is set.
func (b AssetBundle) Validate(frames int) error {
	if len(b.BirdFrames) != frames {
		return fmt.Errorf("%w: %d bird frames, expected %d", ErrInvalidAssets, len(b.BirdFrames), frames)
	}
	for i, h := range b.BirdFrames {
		if h == "" {
			return fmt.Errorf("%w: bird frame %d is empty", ErrInvalidAssets, i)
		}
	}
	named := []struct {
		name, handle string
	}{
		{"pipe top", b.PipeTop},
		{"pipe bottom", b.PipeBottom},
		{"background", b.Background},
		{"ground", b.Ground},
	}
	for _, n := range named {
		if n.handle == "" {
			return fmt.Errorf("%w: %s handle is empty", ErrInvalidAssets, n.name)
		}
	}
	return nil
}

// Bird returns the handle for animation frame i, wrapping out-of-range indices.
func (b AssetBundle) Bird(i int) string {
	if len(b.BirdFrames) == 0 {
		return ""
	}
	i %= len(b.BirdFrames)
	if i < 0 {
		i += len(b.BirdFrames)
	}
	return b.BirdFrames[i]
}

// Handles returns every distinct handle in the bundle, in first-use order.
func (b AssetBundle) Handles() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(h string) {
		if h != "" && !seen[h] {
			seen[h] = true
			out = append(out, h)
		}
	}
	for _, h := range b.BirdFrames {
		add(h)
	}
	add(b.PipeTop)
	add(b.PipeBottom)
	add(b.Background)
	add(b.Ground)
	return out
}

// AssetProvider resolves the asset bundle once, before the game can start.
type AssetProvider interface {
	Resolve(ctx context.Context) (AssetBundle, error)
}

// StaticAssets is an AssetProvider over a fixed, configured bundle.
type StaticAssets struct {
	Bundle AssetBundle
	Frames int // Expected bird frame count
}

// NewStaticAssets creates a provider for the handles in cfg.
func NewStaticAssets(cfg config.FlappyConfig) StaticAssets {
	return StaticAssets{
		Bundle: BundleFromConfig(cfg.Assets),
		Frames: cfg.Bird.Frames,
	}
}

// Resolve returns the configured bundle after validating it.
func (s StaticAssets) Resolve(ctx context.Context) (AssetBundle, error) {
	if err := ctx.Err(); err != nil {
		return AssetBundle{}, err
	}
	if err := s.Bundle.Validate(s.Frames); err != nil {
		return AssetBundle{}, err
	}
	return s.Bundle, nil
}

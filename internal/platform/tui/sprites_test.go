package tui

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

func TestSpriteSheetCoversBundle(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	bundle := flappy.BundleFromConfig(cfg.Assets)
	sheet := SpriteSheet(cfg, bundle)

	for _, h := range bundle.Handles() {
		sp, ok := sheet[h]
		if !ok {
			t.Errorf("no sprite for handle %q", h)
			continue
		}
		if sp.W <= 0 || sp.H <= 0 || sp.Shade == nil {
			t.Errorf("sprite %q is not drawable: %+v", h, sp)
		}
	}

	if sp := sheet[bundle.PipeTop]; sp.W != cfg.Pipes.Width || sp.H != cfg.Pipes.TopHeight {
		t.Errorf("pipe sprite = %vx%v", sp.W, sp.H)
	}
	if sp := sheet[bundle.Ground]; sp.W != cfg.Canvas.Width || sp.H != cfg.Ground.Height {
		t.Errorf("ground sprite = %vx%v", sp.W, sp.H)
	}
}

func TestBirdShade(t *testing.T) {
	size := 34.0
	shade := birdShade(size, 0)

	if _, ok := shade(0, 0); ok {
		t.Error("corner of the bird sprite should be transparent")
	}
	c, ok := shade(size/2, size/2)
	if !ok || c.Bg != core.ColorBird {
		t.Errorf("center = %+v, %v", c, ok)
	}
}

func TestPipeShadeCapFacesGap(t *testing.T) {
	w, h := 52.0, 400.0

	top := pipeShade(w, h, true)
	if c, _ := top(w/2, h-1); c.Bg != core.ColorPipeLight {
		t.Errorf("top pipe should be capped at its bottom edge, got %+v", c)
	}
	if c, _ := top(w/2, 0); c.Bg != core.ColorPipe {
		t.Errorf("top pipe far end = %+v", c)
	}

	bottom := pipeShade(w, h, false)
	if c, _ := bottom(w/2, 0); c.Bg != core.ColorPipeLight {
		t.Errorf("bottom pipe should be capped at its top edge, got %+v", c)
	}
}

func TestApplySpritesDrawsOnScreen(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	bundle := flappy.BundleFromConfig(cfg.Assets)

	s := core.NewScreen(55, 48)
	s.SetViewport(cfg.Canvas.Width, cfg.Canvas.Height)
	applySprites(s, SpriteSheet(cfg, bundle))

	s.DrawImage(bundle.Ground, 0, cfg.GroundY())
	if got := s.GetCell(10, s.Height()-1).Bg; got != core.ColorDirt {
		t.Errorf("bottom row bg = %q, expected dirt", got)
	}
}

package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Render draws one frame of snap onto dst in play-area pixels.
// Nothing is drawn while assets are unresolved or dst is nil.
func Render(dst core.Surface, snap Snapshot, assets *AssetBundle, cfg config.FlappyConfig) {
	if dst == nil || assets == nil {
		return
	}
	w, h := cfg.Canvas.Width, cfg.Canvas.Height

	dst.FillRect(0, 0, w, h, core.Color(cfg.Canvas.Backdrop))

	// Background is two tiled copies along the bottom edge
	bgY := h - cfg.Background.Height
	dst.DrawImage(assets.Background, 0, bgY)
	dst.DrawImage(assets.Background, w/2, bgY)

	for _, p := range snap.Pipes {
		top, bottom := p.TopRect(cfg.Pipes), p.BottomRect(cfg.Pipes)
		dst.DrawImage(assets.PipeTop, top.X, top.Y)
		dst.DrawImage(assets.PipeBottom, bottom.X, bottom.Y)
	}

	half := cfg.Bird.Size / 2
	dst.Save()
	dst.Translate(cfg.Bird.X, snap.Bird.Y)
	dst.Rotate(snap.Bird.Rotation * math.Pi / 180)
	dst.DrawImage(assets.Bird(snap.Bird.Frame), -half, -half)
	dst.Restore()

	groundY := cfg.GroundY()
	off := GroundOffset(cfg, snap.State, snap.Frames)
	if cfg.Ground.ScrollDirection == "right" {
		dst.DrawImage(assets.Ground, off, groundY)
		dst.DrawImage(assets.Ground, off-w, groundY)
		return
	}
	dst.DrawImage(assets.Ground, -off, groundY)
	dst.DrawImage(assets.Ground, w-off, groundY)
}

// GroundOffset returns how far the ground strip has scrolled, in [0, width).
// The ground only moves while playing, and on the start screen when the
// config asks for it.
func GroundOffset(cfg config.FlappyConfig, state State, frames int) float64 {
	scrolling := state == StatePlaying || (state == StateReady && cfg.Ground.ScrollInReady)
	if !scrolling {
		return 0
	}
	return math.Mod(float64(frames)*cfg.Ground.ScrollSpeed, cfg.Canvas.Width)
}

package tui

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Sprite details in play-area pixels
const (
	pipeCapHeight = 24
	grassHeight   = 14
)

// SpriteSheet builds terminal sprites for every handle in the bundle.
// Handles are opaque, so each is shaded by the role it plays in the bundle.
func SpriteSheet(cfg config.FlappyConfig, b flappy.AssetBundle) map[string]core.Sprite {
	sheet := make(map[string]core.Sprite)

	size := cfg.Bird.Size
	for i, h := range b.BirdFrames {
		if _, ok := sheet[h]; ok {
			continue // Repeated frames share the first sprite
		}
		sheet[h] = core.Sprite{W: size, H: size, Shade: birdShade(size, i)}
	}

	pw, ph := cfg.Pipes.Width, cfg.Pipes.TopHeight
	sheet[b.PipeTop] = core.Sprite{W: pw, H: ph, Shade: pipeShade(pw, ph, true)}
	sheet[b.PipeBottom] = core.Sprite{W: pw, H: ph, Shade: pipeShade(pw, ph, false)}

	bw, bh := cfg.Canvas.Width/2, cfg.Background.Height
	sheet[b.Background] = core.Sprite{W: bw, H: bh, Shade: skylineShade(bh)}

	sheet[b.Ground] = core.Sprite{W: cfg.Canvas.Width, H: cfg.Ground.Height, Shade: groundShade}

	return sheet
}

// birdShade draws an elliptical body with an eye, a beak and a wing whose
// height depends on the animation frame.
func birdShade(size float64, frame int) func(u, v float64) (core.Cell, bool) {
	wingY := []float64{-0.2, 0.1, 0.35}[frame%3]
	return func(u, v float64) (core.Cell, bool) {
		nx := u/size*2 - 1
		ny := v/size*2 - 1
		if nx*nx+ny*ny*1.6 > 1 {
			return core.Cell{}, false
		}
		switch {
		case nx > 0.55 && math.Abs(ny-0.1) < 0.25:
			return core.Cell{Rune: '▶', Fg: core.ColorBeak, Bg: core.ColorBird}, true
		case nx > 0.15 && ny < -0.1:
			return core.Cell{Rune: '●', Fg: core.ColorEye, Bg: core.ColorBird}, true
		case nx < -0.1 && math.Abs(ny-wingY) < 0.2:
			return core.Cell{Rune: wingRune(frame), Fg: core.ColorWing, Bg: core.ColorBird}, true
		}
		return core.Cell{Rune: ' ', Bg: core.ColorBird}, true
	}
}

func wingRune(frame int) rune {
	switch frame % 3 {
	case 0:
		return '▀'
	case 1:
		return '━'
	default:
		return '▄'
	}
}

// pipeShade draws a shaded tube with a wider cap on the side facing the gap.
func pipeShade(w, h float64, top bool) func(u, v float64) (core.Cell, bool) {
	return func(u, v float64) (core.Cell, bool) {
		capped := v < pipeCapHeight
		if top {
			capped = v >= h-pipeCapHeight
		}
		if capped {
			r := '▄'
			if top {
				r = '▀'
			}
			return core.Cell{Rune: r, Fg: core.ColorPipeDark, Bg: core.ColorPipeLight}, true
		}
		switch {
		case u < w*0.15:
			return core.Cell{Rune: ' ', Bg: core.ColorPipeLight}, true
		case u > w*0.85:
			return core.Cell{Rune: ' ', Bg: core.ColorPipeDark}, true
		}
		return core.Cell{Rune: ' ', Bg: core.ColorPipe}, true
	}
}

// skylineShade draws clouds over a row of buildings with lit windows.
// Everything else is transparent so the backdrop shows through.
func skylineShade(h float64) func(u, v float64) (core.Cell, bool) {
	return func(u, v float64) (core.Cell, bool) {
		cloudLine := h*0.35 + 10*math.Sin(u/18)
		if v >= cloudLine && v < cloudLine+h*0.15 {
			return core.Cell{Rune: ' ', Bg: core.ColorCloud}, true
		}

		block := int(u / 23)
		height := h*0.3 + float64((block*37)%70)
		if v < h-height {
			return core.Cell{}, false
		}
		if int(u)%8 < 3 && int(v)%12 < 5 {
			return core.Cell{Rune: '▪', Fg: core.ColorWindow, Bg: core.ColorSkyline}, true
		}
		return core.Cell{Rune: ' ', Bg: core.ColorSkyline}, true
	}
}

// groundShade draws a striped grass edge over speckled dirt.
func groundShade(u, v float64) (core.Cell, bool) {
	if v < grassHeight {
		if (int(u)+int(v))/12%2 == 0 {
			return core.Cell{Rune: '▀', Fg: core.ColorPipeDark, Bg: core.ColorGrass}, true
		}
		return core.Cell{Rune: '▀', Fg: core.ColorPipeDark, Bg: core.ColorPipeLight}, true
	}
	if (int(u)*7+int(v)*3)%29 == 0 {
		return core.Cell{Rune: '·', Fg: core.ColorDirtDark, Bg: core.ColorDirt}, true
	}
	return core.Cell{Rune: ' ', Bg: core.ColorDirt}, true
}

// applySprites registers the sheet on the screen.
func applySprites(s *core.Screen, sheet map[string]core.Sprite) {
	for h, sp := range sheet {
		s.SetSprite(h, sp)
	}
}

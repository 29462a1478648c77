package core

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Cell is one character cell of a Screen.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// Sprite describes how an image handle is rasterized onto a Screen.
// Shade is sampled in sprite-local pixels (0 <= u < W, 0 <= v < H) and
// reports false where the sprite is transparent.
type Sprite struct {
	W, H  float64
	Shade func(u, v float64) (Cell, bool)
}

// Screen is a 2D cell buffer for rendering game graphics.
// It decouples game rendering from the terminal: the game draws in play-area
// pixels through the Surface methods, the screen scales that viewport onto its
// cells, and the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell

	viewW, viewH float64 // Play-area size mapped onto the whole buffer
	transform    Affine
	stack        []Affine
	sprites      map[string]Sprite
}

// NewScreen creates a new screen buffer with the given dimensions.
// The viewport defaults to one play-area pixel per cell.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:     width,
		height:    height,
		viewW:     float64(width),
		viewH:     float64(height),
		transform: Identity(),
		sprites:   make(map[string]Sprite),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Ready reports whether the screen has a drawable area.
func (s *Screen) Ready() bool {
	return s != nil && s.width > 0 && s.height > 0 && s.viewW > 0 && s.viewH > 0
}

// SetViewport sets the play-area size that Surface coordinates are expressed in.
func (s *Screen) SetViewport(w, h float64) {
	s.viewW = w
	s.viewH = h
}

// SetSprite registers how an image handle is drawn.
func (s *Screen) SetSprite(handle string, sp Sprite) {
	s.sprites[handle] = sp
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with blank cells and resets the transform.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
	s.transform = Identity()
	s.stack = s.stack[:0]
}

// Set places a rune at the given cell, keeping the cell's colors.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x].Rune = r
}

// SetCell replaces the cell at the given position.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ' '
	}
	return s.cells[y][x].Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y) in the given color.
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg Color) {
	i := 0
	for _, r := range text {
		if x+i >= 0 && x+i < s.width && y >= 0 && y < s.height {
			s.cells[y][x+i].Rune = r
			s.cells[y][x+i].Fg = fg
		}
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, fg Color) {
	x := (s.width - utf8.RuneCountInString(text)) / 2
	s.DrawText(x, y, text, fg)
}

// DrawBox draws a filled box with a box-drawing outline.
// Coordinates are in cells.
func (s *Screen) DrawBox(x, y, w, h int, fg, bg Color) {
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			s.SetCell(cx, cy, Cell{Rune: ' ', Fg: fg, Bg: bg})
		}
	}

	s.Set(x, y, '┌')
	s.Set(x+w-1, y, '┐')
	s.Set(x, y+h-1, '└')
	s.Set(x+w-1, y+h-1, '┘')
	for cx := x + 1; cx < x+w-1; cx++ {
		s.Set(cx, y, '─')
		s.Set(cx, y+h-1, '─')
	}
	for cy := y + 1; cy < y+h-1; cy++ {
		s.Set(x, cy, '│')
		s.Set(x+w-1, cy, '│')
	}
}

// FillRect implements Surface.
func (s *Screen) FillRect(x, y, w, h float64, c Color) {
	s.paint(s.transform.Translate(x, y), w, h, func(_, _ float64) (Cell, bool) {
		return Cell{Rune: ' ', Bg: c}, true
	})
}

// DrawImage implements Surface. Unknown handles draw nothing.
func (s *Screen) DrawImage(handle string, x, y float64) {
	sp, ok := s.sprites[handle]
	if !ok || sp.Shade == nil {
		return
	}
	s.paint(s.transform.Translate(x, y), sp.W, sp.H, sp.Shade)
}

// Save implements Surface.
func (s *Screen) Save() {
	s.stack = append(s.stack, s.transform)
}

// Restore implements Surface. An unmatched Restore is ignored.
func (s *Screen) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.transform = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// Translate implements Surface.
func (s *Screen) Translate(x, y float64) {
	s.transform = s.transform.Translate(x, y)
}

// Rotate implements Surface.
func (s *Screen) Rotate(rad float64) {
	s.transform = s.transform.Rotate(rad)
}

// paint rasterizes a w x h local rectangle placed by m. Every cell whose center
// maps inside the rectangle is shaded; a shade without a background keeps the
// background already in the cell.
func (s *Screen) paint(m Affine, w, h float64, shade func(u, v float64) (Cell, bool)) {
	if !s.Ready() || w <= 0 || h <= 0 {
		return
	}
	inv, ok := m.Invert()
	if !ok {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, corner := range [4][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}} {
		px, py := m.Apply(corner[0], corner[1])
		minX, maxX = math.Min(minX, px), math.Max(maxX, px)
		minY, maxY = math.Min(minY, py), math.Max(maxY, py)
	}

	sx := float64(s.width) / s.viewW
	sy := float64(s.height) / s.viewH
	x0 := Clamp(int(math.Floor(minX*sx)), 0, s.width)
	x1 := Clamp(int(math.Ceil(maxX*sx)), 0, s.width)
	y0 := Clamp(int(math.Floor(minY*sy)), 0, s.height)
	y1 := Clamp(int(math.Ceil(maxY*sy)), 0, s.height)

	for cy := y0; cy < y1; cy++ {
		py := (float64(cy) + 0.5) / sy
		for cx := x0; cx < x1; cx++ {
			px := (float64(cx) + 0.5) / sx
			u, v := inv.Apply(px, py)
			if u < 0 || v < 0 || u >= w || v >= h {
				continue
			}
			c, ok := shade(u, v)
			if !ok {
				continue
			}
			if c.Bg == ColorDefault {
				c.Bg = s.cells[cy][cx].Bg
			}
			s.cells[cy][cx] = c
		}
	}
}

// String converts the screen buffer to plain text, without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

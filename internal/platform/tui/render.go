package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// defaultRowCache is the number of styled rows kept between frames.
// Sky, skyline and ground rows repeat across frames, so most rows hit.
const defaultRowCache = 512

type cellStyle struct {
	fg, bg core.Color
}

// Renderer converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences
// and caches styled rows by content.
type Renderer struct {
	lg     *lipgloss.Renderer
	styles map[cellStyle]lipgloss.Style
	rows   *lru.Cache[string, string]
}

// NewRenderer creates a renderer bound to a lipgloss renderer.
// A nil lg uses the default renderer for the local terminal.
func NewRenderer(lg *lipgloss.Renderer) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	rows, err := lru.New[string, string](defaultRowCache)
	if err != nil {
		// Only fails for a non-positive size
		panic(err)
	}
	return &Renderer{
		lg:     lg,
		styles: make(map[cellStyle]lipgloss.Style),
		rows:   rows,
	}
}

// Render converts every row of s.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var key strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		key.Reset()
		for x := range s.Width() {
			c := s.GetCell(x, y)
			key.WriteRune(c.Rune)
			key.WriteByte(0)
			key.WriteString(string(c.Fg))
			key.WriteByte(0)
			key.WriteString(string(c.Bg))
			key.WriteByte(0)
		}
		k := key.String()

		row, ok := r.rows.Get(k)
		if !ok {
			row = r.renderRow(s, y)
			r.rows.Add(k, row)
		}
		sb.WriteString(row)
	}
	return sb.String()
}

// CachedRows returns the number of rows in the cache.
func (r *Renderer) CachedRows() int {
	return r.rows.Len()
}

func (r *Renderer) renderRow(s *core.Screen, y int) string {
	var sb strings.Builder
	x := 0
	for x < s.Width() {
		start := s.GetCell(x, y)
		cs := cellStyle{fg: start.Fg, bg: start.Bg}

		// Collect consecutive cells with the same colors
		var run strings.Builder
		for x < s.Width() {
			c := s.GetCell(x, y)
			if c.Fg != cs.fg || c.Bg != cs.bg {
				break
			}
			run.WriteRune(c.Rune)
			x++
		}

		if cs == (cellStyle{}) {
			sb.WriteString(run.String())
			continue
		}
		sb.WriteString(r.style(cs).Render(run.String()))
	}
	return sb.String()
}

func (r *Renderer) style(cs cellStyle) lipgloss.Style {
	if st, ok := r.styles[cs]; ok {
		return st
	}
	st := r.lg.NewStyle()
	if cs.fg != core.ColorDefault {
		st = st.Foreground(lipgloss.Color(cs.fg))
	}
	if cs.bg != core.ColorDefault {
		st = st.Background(lipgloss.Color(cs.bg))
	}
	r.styles[cs] = st
	return st
}

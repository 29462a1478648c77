package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// hudState carries overlay flags that outlive a single frame.
// It is shared by pointer so session observers can update it.
type hudState struct {
	newBest bool // A high score was committed since the last round started
}

func (h *hudState) observe(e flappy.Event) {
	switch {
	case e.Kind == flappy.EventHighScore:
		h.newBest = true
	case e.Kind == flappy.EventState && e.To == flappy.StatePlaying:
		h.newBest = false
	}
}

// drawHUD draws the text overlays for the current state on top of the scene.
func drawHUD(s *core.Screen, snap flappy.Snapshot, hud *hudState) {
	if !s.Ready() {
		return
	}

	switch snap.State {
	case flappy.StateLoading:
		if snap.AssetErr != nil {
			drawPanel(s, []string{"ASSETS UNAVAILABLE", truncate(snap.AssetErr.Error(), s.Width()-6)}, core.ColorWhite, core.ColorBeak)
			return
		}
		drawPanel(s, []string{"Initializing..."}, core.ColorWhite, core.ColorDefault)

	case flappy.StateReady:
		lines := []string{"FLAPPY", "", "Tap to Start", "space or click to flap"}
		if snap.HighScore > 0 {
			best := fmt.Sprintf("Best: %d", snap.HighScore)
			if hud != nil && hud.newBest {
				best = fmt.Sprintf("New best: %d!", snap.HighScore)
			}
			lines = append(lines, "", best)
		}
		drawPanel(s, lines, core.ColorWhite, core.ColorPipeDark)

	case flappy.StatePlaying:
		s.DrawTextCentered(1, fmt.Sprintf(" %d ", snap.Score), core.ColorWhite)

	case flappy.StateGameOver:
		drawPanel(s, []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d", snap.Score),
			fmt.Sprintf("Best: %d", max(snap.Score, snap.HighScore)),
			"",
			"Tap to Restart",
		}, core.ColorWhite, core.ColorBeak)
	}
}

// drawPanel draws lines centered inside a box in the middle of the screen.
func drawPanel(s *core.Screen, lines []string, fg, bg core.Color) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, utf8.RuneCountInString(l))
	}
	w := min(inner+4, s.Width())
	h := min(len(lines)+2, s.Height())
	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2

	s.DrawBox(x, y, w, h, fg, bg)
	for i, l := range lines {
		s.DrawTextCentered(y+1+i, l, fg)
	}
}

// centerText pads text on the left so it is centered within width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

func truncate(text string, width int) string {
	if width <= 1 || utf8.RuneCountInString(text) <= width {
		return text
	}
	r := []rune(text)
	return string(r[:width-1]) + "…"
}

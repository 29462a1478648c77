package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

func TestDrawHUD(t *testing.T) {
	tests := []struct {
		name string
		snap flappy.Snapshot
		hud  hudState
		want []string
		not  []string
	}{
		{
			name: "loading",
			snap: flappy.Snapshot{State: flappy.StateLoading},
			want: []string{"Initializing..."},
		},
		{
			name: "loading failed",
			snap: flappy.Snapshot{State: flappy.StateLoading, AssetErr: errors.New("missing sprite")},
			want: []string{"ASSETS UNAVAILABLE", "missing sprite"},
		},
		{
			name: "ready without best",
			snap: flappy.Snapshot{State: flappy.StateReady},
			want: []string{"Tap to Start"},
			not:  []string{"Best"},
		},
		{
			name: "ready with best",
			snap: flappy.Snapshot{State: flappy.StateReady, HighScore: 7},
			want: []string{"Best: 7"},
		},
		{
			name: "ready after new best",
			snap: flappy.Snapshot{State: flappy.StateReady, HighScore: 9},
			hud:  hudState{newBest: true},
			want: []string{"New best: 9!"},
		},
		{
			name: "playing",
			snap: flappy.Snapshot{State: flappy.StatePlaying, Score: 12},
			want: []string{" 12 "},
			not:  []string{"Tap"},
		},
		{
			name: "game over",
			snap: flappy.Snapshot{State: flappy.StateGameOver, Score: 5, HighScore: 3},
			want: []string{"GAME OVER", "Score: 5", "Best: 5", "Tap to Restart"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := core.NewScreen(60, 20)
			hud := tt.hud
			drawHUD(s, tt.snap, &hud)
			out := s.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("missing %q in\n%s", w, out)
				}
			}
			for _, n := range tt.not {
				if strings.Contains(out, n) {
					t.Errorf("unexpected %q in\n%s", n, out)
				}
			}
		})
	}
}

func TestDrawHUDNotReady(t *testing.T) {
	s := core.NewScreen(0, 0)
	drawHUD(s, flappy.Snapshot{State: flappy.StateGameOver}, &hudState{})
}

func TestHUDStateObserve(t *testing.T) {
	var h hudState

	h.observe(flappy.Event{Kind: flappy.EventHighScore, Score: 4, HighScore: 4})
	if !h.newBest {
		t.Fatal("high score event should set newBest")
	}

	h.observe(flappy.Event{Kind: flappy.EventState, From: flappy.StateGameOver, To: flappy.StateReady})
	if !h.newBest {
		t.Error("returning to Ready should keep the flag")
	}

	h.observe(flappy.Event{Kind: flappy.EventState, From: flappy.StateReady, To: flappy.StatePlaying})
	if h.newBest {
		t.Error("starting a round should clear the flag")
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abc", 6, " abc"},
		{"toolong", 4, "toolong"},
	}
	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.want {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate kept = %q", got)
	}
	if got := truncate("abcdefgh", 5); got != "abcd…" {
		t.Errorf("truncate = %q", got)
	}
}

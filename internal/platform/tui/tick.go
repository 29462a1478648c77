// Package tui provides the Bubble Tea host for the flappy simulation.
// It handles the terminal UI loop, input mapping, and clock orchestration.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// FrameMsg is sent to trigger one animation tick.
type FrameMsg struct{}

// SpawnMsg is sent to trigger one spawn tick.
type SpawnMsg struct{}

// clockStoppedMsg is sent once the clock goroutine exits.
type clockStoppedMsg struct{ err error }

// clockBridge forwards clock triggers into the Bubble Tea update loop.
// Each source has a one-slot buffer, so at most one tick per source is
// pending and triggers that arrive while one is pending are dropped.
type clockBridge struct {
	frames chan struct{}
	spawns chan struct{}
}

func newClockBridge() *clockBridge {
	return &clockBridge{
		frames: make(chan struct{}, 1),
		spawns: make(chan struct{}, 1),
	}
}

// sink is handed to flappy.Clock.Run. It never blocks.
func (b *clockBridge) sink(t flappy.Trigger) {
	ch := b.frames
	if t == flappy.TriggerSpawn {
		ch = b.spawns
	}
	select {
	case ch <- struct{}{}:
	default:
	}
}

// run starts the clock and reports when it stops.
func (b *clockBridge) run(ctx context.Context, clock flappy.Clock) tea.Cmd {
	return func() tea.Msg {
		return clockStoppedMsg{err: clock.Run(ctx, b.sink)}
	}
}

// nextFrame waits for the next pending animation tick.
func (b *clockBridge) nextFrame(ctx context.Context) tea.Cmd {
	return waitFor(ctx, b.frames, FrameMsg{})
}

// nextSpawn waits for the next pending spawn tick.
func (b *clockBridge) nextSpawn(ctx context.Context) tea.Cmd {
	return waitFor(ctx, b.spawns, SpawnMsg{})
}

func waitFor(ctx context.Context, ch <-chan struct{}, msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case <-ch:
			return msg
		}
	}
}

package flappy

import (
	"context"
	"fmt"
	"time"
)

// Trigger identifies which clock source fired.
type Trigger int

const (
	TriggerFrame Trigger = iota // Animation tick
	TriggerSpawn                // Fixed-interval pipe spawn tick
)

// String returns the trigger name.
func (t Trigger) String() string {
	switch t {
	case TriggerFrame:
		return "frame"
	case TriggerSpawn:
		return "spawn"
	default:
		return "unknown"
	}
}

// Clock drives the two independently timed triggers from wall-clock tickers.
type Clock struct {
	Frame time.Duration // Animation tick period
	Spawn time.Duration // Spawn tick period
}

// NewClock creates a clock with the given frame and spawn periods.
func NewClock(frame, spawn time.Duration) Clock {
	return Clock{Frame: frame, Spawn: spawn}
}

// Run delivers triggers to sink until ctx is cancelled and returns ctx.Err().
// Sink runs on the calling goroutine, so a trigger never starts while the
// previous one is still being handled. Once Run returns, sink is not called again.
func (c Clock) Run(ctx context.Context, sink func(Trigger)) error {
	if c.Frame <= 0 || c.Spawn <= 0 {
		return fmt.Errorf("flappy: clock intervals must be positive (frame %v, spawn %v)", c.Frame, c.Spawn)
	}

	frame := time.NewTicker(c.Frame)
	defer frame.Stop()
	spawn := time.NewTicker(c.Spawn)
	defer spawn.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-frame.C:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			sink(TriggerFrame)
		case <-spawn.C:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			sink(TriggerSpawn)
		}
	}
}

// VirtualClock replays the same schedule as Clock against simulated time.
// A trigger with period p fires at p, 2p, 3p, ... inclusive of the end of
// each Advance. A zero period disables that source.
type VirtualClock struct {
	Frame time.Duration
	Spawn time.Duration
	now   time.Duration
}

// NewVirtualClock creates a virtual clock at time zero.
func NewVirtualClock(frame, spawn time.Duration) *VirtualClock {
	return &VirtualClock{Frame: frame, Spawn: spawn}
}

// Now returns the simulated time elapsed since creation.
func (v *VirtualClock) Now() time.Duration {
	return v.now
}

// Advance moves simulated time forward by d and emits every trigger due in
// (now, now+d] in chronological order. Frame fires before spawn on ties.
func (v *VirtualClock) Advance(d time.Duration, sink func(Trigger)) {
	end := v.now + d
	for {
		nextFrame, frameOK := nextTick(v.now, v.Frame)
		nextSpawn, spawnOK := nextTick(v.now, v.Spawn)

		var at time.Duration
		switch {
		case frameOK && spawnOK:
			at = min(nextFrame, nextSpawn)
		case frameOK:
			at = nextFrame
		case spawnOK:
			at = nextSpawn
		default:
			v.now = end
			return
		}
		if at > end {
			break
		}

		v.now = at
		if frameOK && nextFrame == at {
			sink(TriggerFrame)
		}
		if spawnOK && nextSpawn == at {
			sink(TriggerSpawn)
		}
	}
	v.now = end
}

// nextTick returns the first multiple of period strictly after now.
func nextTick(now, period time.Duration) (time.Duration, bool) {
	if period <= 0 {
		return 0, false
	}
	return (now/period + 1) * period, true
}

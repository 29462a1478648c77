package core

import "time"

// RuntimeConfig contains host settings passed to a session at start.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Animation frames per second (default 60)
	Seed     int64 // RNG seed; 0 means use current time in platform layer
}

// FrameInterval returns the wall-clock period of one animation frame.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

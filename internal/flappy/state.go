// Package flappy implements the Flappy Bird simulation core: the game-state
// machine, per-tick physics, the pipe spawner, collision detection and the
// render adapter that draws a session onto a core.Surface.
//
// The package never touches a terminal or a clock directly. Hosts drive a
// Session through Tick, Spawn and Press (usually via a Clock) and hand it an
// already-resolved AssetBundle.
package flappy

// State is the authoritative mode of play.
type State int

const (
	StateLoading  State = iota // Waiting for the asset bundle
	StateReady                 // Start screen, bird parked
	StatePlaying               // Physics, pipes and scoring active
	StateGameOver              // Bird falls to the ground, score frozen
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateReady:
		return "Ready"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

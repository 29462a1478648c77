package core

// Action represents a semantic input action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionPrimary           // Space, Up, W, Enter, left click - the one simulation command
	ActionScreenshot        // Ctrl+S - dump the current frame to a file
	ActionHelp              // ? - toggle the key help line
	ActionQuit              // Q, Esc, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPrimary:
		return "Primary"
	case ActionScreenshot:
		return "Screenshot"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

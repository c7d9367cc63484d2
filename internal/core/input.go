package core

// Action is a semantic input event, abstracted from physical key presses.
// Input sources yield actions; the engine never sees raw keys.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, A, H - step (or steer) left
	ActionRight        // Right arrow, D, L - step (or steer) right
	ActionStop         // Up/Down arrow, S - cancel drift in the velocity model
	ActionPause        // P - pause/unpause, handled by the platform
	ActionQuit         // Q, Esc, Ctrl+C - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStop:
		return "Stop"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action steers the player.
func (a Action) IsMovement() bool {
	return a == ActionLeft || a == ActionRight || a == ActionStop
}

package core

// Key identifies a physical game key after platform mapping.
// The platform layer translates terminal key strings into these values.
type Key int

const (
	KeyNone  Key = iota
	KeyLeft      // A, Left arrow - paddle left
	KeyRight     // D, Right arrow - paddle right
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// KeyEvent is a discrete key-down or key-up notification.
type KeyEvent struct {
	Key  Key
	Down bool // true on press, false on release
}

// Press returns a key-down event.
func Press(k Key) KeyEvent {
	return KeyEvent{Key: k, Down: true}
}

// Release returns a key-up event.
func Release(k Key) KeyEvent {
	return KeyEvent{Key: k, Down: false}
}

// Action represents a host-level intent that is not part of the simulation,
// such as starting, restarting, or leaving the game.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter, Space - press PLAY in the menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move ship left
	ActionRight          // D, Right arrow - move ship right
	ActionFire           // Space - shoot
	ActionUp             // W, Up arrow - menu navigation
	ActionDown           // S, Down arrow - menu navigation
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionPause          // P - pause/unpause game
	ActionQuit           // Q, Ctrl+C - exit game/session
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
	case ActionFire:
		return "Fire"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyState is the level-triggered state change of a held action.
type KeyState int

const (
	KeyUnchanged KeyState = iota
	KeyPress
	KeyRelease
)

// InputFrame represents the input state for a single player during one simulation tick.
type InputFrame struct {
	// Actions holds edge-triggered intents (fire, confirm, menu navigation).
	Actions map[Action]bool
	// Held holds press/release transitions for continuous intents (left, right).
	// Actions missing from the map keep their previous state.
	Held map[Action]KeyState
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]KeyState),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Press records that a continuous action started this frame.
func (f *InputFrame) Press(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]KeyState)
	}
	f.Held[a] = KeyPress
}

// Release records that a continuous action stopped this frame.
func (f *InputFrame) Release(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]KeyState)
	}
	f.Held[a] = KeyRelease
}

// State returns the press/release transition for an action this frame.
func (f InputFrame) State(a Action) KeyState {
	if f.Held == nil {
		return KeyUnchanged
	}
	return f.Held[a]
}

// Empty reports whether the frame carries no input at all.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Held) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}

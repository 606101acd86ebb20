package core

// Action represents a semantic game action, abstracted from physical key
// presses. This allows games to work with high-level intents rather than
// raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // A, Left arrow, h - move piece left
	ActionRight            // D, Right arrow, l - move piece right
	ActionRotateCW         // X, Up arrow, W - rotate clockwise
	ActionRotateCCW        // Z - rotate counter-clockwise
	ActionSoftDrop         // S, Down arrow - accelerate fall
	ActionHardDrop         // Space - drop to the bottom immediately
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause game
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
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// Actions retain their arrival order so the game can apply them in the
// sequence the player pressed them.
type InputFrame struct {
	// ordered holds actions in arrival order.
	ordered []Action
	// seen allows O(1) membership checks without scanning.
	seen map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		seen: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame. Duplicate actions
// within one frame are recorded once.
func (f *InputFrame) Set(a Action) {
	if f.seen == nil {
		f.seen = make(map[Action]bool)
	}
	if f.seen[a] {
		return
	}
	f.seen[a] = true
	f.ordered = append(f.ordered, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.seen == nil {
		return false
	}
	return f.seen[a]
}

// Ordered returns the actions triggered this frame in arrival order.
// The returned slice must not be modified.
func (f InputFrame) Ordered() []Action {
	return f.ordered
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.ordered = f.ordered[:0]
	for k := range f.seen {
		delete(f.seen, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for _, a := range f.ordered {
		clone.Set(a)
	}
	return clone
}

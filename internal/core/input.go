package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone          Action = iota
	ActionMoveLeft             // Left arrow, A - shift piece one column left
	ActionMoveRight            // Right arrow, D - shift piece one column right
	ActionRotateCW             // Up arrow, W, X - rotate piece clockwise
	ActionSoftDropStart        // Down arrow, S pressed - faster gravity
	ActionSoftDropEnd          // Down arrow released (synthesized by platform)
	ActionHardDrop             // Space - drop and lock immediately
	ActionPause                // P - pause the running game
	ActionEscape               // Esc - leave the running game (pauses it)
	ActionResume               // P, Enter while paused
	ActionRestart              // R - fresh game from pause or game over
	ActionBackToMenu           // M, B - return to the title menu
	ActionStartNew             // Enter, N on the title menu
	ActionContinue             // C on the title menu when a saved game exists
	ActionQuit                 // Q - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionRotateCW:
		return "RotateCW"
	case ActionSoftDropStart:
		return "SoftDropStart"
	case ActionSoftDropEnd:
		return "SoftDropEnd"
	case ActionHardDrop:
		return "HardDrop"
	case ActionPause:
		return "Pause"
	case ActionEscape:
		return "Escape"
	case ActionResume:
		return "Resume"
	case ActionRestart:
		return "Restart"
	case ActionBackToMenu:
		return "BackToMenu"
	case ActionStartNew:
		return "StartNew"
	case ActionContinue:
		return "Continue"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions received between two simulation ticks.
// Order matters: games apply the actions exactly in the order they arrived.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make([]Action, 0, 8),
	}
}

// Push appends an action to the frame. ActionNone is dropped.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Len returns the number of queued actions.
func (f InputFrame) Len() int {
	return len(f.Actions)
}

// Clear resets the frame for the next tick, keeping the backing array.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Actions: make([]Action, len(f.Actions))}
	copy(clone.Actions, f.Actions)
	return clone
}

package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow: cursor up
	ActionDown           // S, J, Down arrow: cursor down
	ActionLeft           // A, H, Left arrow: cursor left
	ActionRight          // D, L, Right arrow: cursor right
	ActionSelect         // Space, Enter: select or swap
	ActionCancel         // Esc: drop selection or booster mode
	ActionBomb           // B: arm the bomb
	ActionHammer         // X: arm the hammer
	ActionShuffle        // F: shuffle the board
	ActionHint           // ?: show a valid move
	ActionNext           // N: continue to the next level after a win
	ActionRestart        // R: retry after the level ends
	ActionPause          // P: pause/unpause
	ActionQuit           // Q, Ctrl+C: leave the game
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionSelect:  "Select",
	ActionCancel:  "Cancel",
	ActionBomb:    "Bomb",
	ActionHammer:  "Hammer",
	ActionShuffle: "Shuffle",
	ActionHint:    "Hint",
	ActionNext:    "Next",
	ActionRestart: "Restart",
	ActionPause:   "Pause",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame holds the actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// FrameOf builds a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
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
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

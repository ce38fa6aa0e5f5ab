package core

// Action is a semantic game action, decoupled from physical keys.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow - move cursor up
	ActionDown              // S, Down arrow - move cursor down
	ActionLeft              // A, Left arrow - move cursor left
	ActionRight             // D, Right arrow - move cursor right
	ActionNextSlot          // Tab - select the next filled hand slot
	ActionSlot1             // 1 - select hand slot 1
	ActionSlot2             // 2 - select hand slot 2
	ActionSlot3             // 3 - select hand slot 3
	ActionConfirm           // Enter, Space - place the selected piece
	ActionAuto              // X - let the solver place the hand
	ActionToggleMode        // M - switch generation mode for the next hand
	ActionRestart           // R - start a new game
	ActionPause             // P, Escape - pause/unpause
	ActionQuit              // Q, Ctrl+C - exit
)

var actionNames = map[Action]string{
	ActionNone:       "None",
	ActionUp:         "Up",
	ActionDown:       "Down",
	ActionLeft:       "Left",
	ActionRight:      "Right",
	ActionNextSlot:   "NextSlot",
	ActionSlot1:      "Slot1",
	ActionSlot2:      "Slot2",
	ActionSlot3:      "Slot3",
	ActionConfirm:    "Confirm",
	ActionAuto:       "Auto",
	ActionToggleMode: "ToggleMode",
	ActionRestart:    "Restart",
	ActionPause:      "Pause",
	ActionQuit:       "Quit",
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

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty returns true if nothing was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

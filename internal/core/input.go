package core

// Action represents a semantic game action, abstracted from physical key presses.
// The input reader emits these; the game core consumes them in FIFO order.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // Up arrow - move selection to the previous shop row
	ActionDown          // Down arrow - move selection to the next shop row
	ActionDeselect      // Escape - clear the selection
	ActionExit          // Q, Ctrl+C - leave the game
	ActionSelect        // Enter - buy the selected upgrade
	ActionClick         // one complete press/release cycle of the click keys
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "ArrowUp"
	case ActionDown:
		return "ArrowDown"
	case ActionDeselect:
		return "Deselect"
	case ActionExit:
		return "Exit"
	case ActionSelect:
		return "SelectUpgrade"
	case ActionClick:
		return "Click"
	default:
		return "Unknown"
	}
}

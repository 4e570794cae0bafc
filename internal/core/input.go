package core

// Action is a semantic puzzle command, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // Up arrow, W - tile below the gap slides up
	ActionDown              // Down arrow, S - tile above the gap slides down
	ActionLeft              // Left arrow, A - tile right of the gap slides left
	ActionRight             // Right arrow, D - tile left of the gap slides right
	ActionShuffle           // Space - scramble the board
	ActionRestore           // R - replay history backwards
	ActionCancel            // C - stop a running restore
	ActionCopy              // Y - copy move history
	ActionScreenshot        // Ctrl+S - save screenshots
	ActionPresets           // P - open the board size picker
	ActionHelp              // ? - toggle full help
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionShuffle:
		return "Shuffle"
	case ActionRestore:
		return "Restore"
	case ActionCancel:
		return "Cancel"
	case ActionCopy:
		return "Copy"
	case ActionScreenshot:
		return "Screenshot"
	case ActionPresets:
		return "Presets"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action slides a tile.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}

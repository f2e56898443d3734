// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit       Action = "quit"
	ActionSwitchTab  Action = "switch_tab"
	ActionToggleHelp Action = "toggle_help"

	// Playback actions
	ActionTogglePause Action = "toggle_pause"
	ActionVolumeDown  Action = "volume_down"
	ActionVolumeUp    Action = "volume_up"

	// Queue selection actions
	ActionSelectNext     Action = "select_next"
	ActionSelectPrevious Action = "select_previous"
	ActionCommit         Action = "commit_selection" // enter - play selected entry
)

// VolumeStep is the volume change per key press, in percent.
const VolumeStep = 5

// Actions lists every action in help order.
var Actions = []Action{
	ActionQuit,
	ActionSwitchTab,
	ActionTogglePause,
	ActionVolumeDown,
	ActionVolumeUp,
	ActionSelectNext,
	ActionSelectPrevious,
	ActionCommit,
	ActionToggleHelp,
}

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	for _, known := range Actions {
		if a == known {
			return true
		}
	}
	return false
}

// VolumeDelta returns the signed volume change for volume actions, 0 otherwise.
func (a Action) VolumeDelta() int {
	switch a {
	case ActionVolumeDown:
		return -VolumeStep
	case ActionVolumeUp:
		return VolumeStep
	default:
		return 0
	}
}

package keymap

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// HelpKey opens and closes the help overlay regardless of configured bindings.
const HelpKey = "?"

// KeyEvent is a decoded key press, named the way bubbletea names keys
// ("q", "enter", "left", "ctrl+c").
type KeyEvent struct {
	Key string
}

func (e KeyEvent) String() string { return e.Key }

// Binding associates keys with an action.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
}

// Key returns the binding as a bubbles key binding for help rendering.
func (b Binding) Key() key.Binding {
	if len(b.Keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(displayKeys(b.Keys), b.Description),
	)
}

func displayKeys(keys []string) string {
	out := ""
	for i, k := range keys {
		if i > 0 {
			out += "/"
		}
		switch k {
		case "left":
			out += "←"
		case "right":
			out += "→"
		case "up":
			out += "↑"
		case "down":
			out += "↓"
		default:
			out += k
		}
	}
	return out
}

// DefaultBindings returns the built-in key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit"},
		{ActionSwitchTab, []string{"tab"}, "Switch tab"},
		{ActionTogglePause, []string{"p"}, "Play/pause"},
		{ActionVolumeDown, []string{"left"}, "Volume -5%"},
		{ActionVolumeUp, []string{"right"}, "Volume +5%"},
		{ActionSelectNext, []string{"j", "down"}, "Next in queue"},
		{ActionSelectPrevious, []string{"k", "up"}, "Previous in queue"},
		{ActionCommit, []string{"enter"}, "Play selected"},
		{ActionToggleHelp, []string{HelpKey}, "Show help"},
	}
}

// Override replaces the keys of the listed actions. Unknown actions are rejected.
// The help key stays bound to the help toggle.
func Override(bindings []Binding, keys map[Action][]string) ([]Binding, error) {
	for a := range keys {
		if !a.Valid() {
			return nil, fmt.Errorf("unknown action %q", a)
		}
	}
	out := make([]Binding, len(bindings))
	for i, b := range bindings {
		out[i] = b
		if ks, ok := keys[b.Action]; ok {
			out[i].Keys = slices.Clone(ks)
		}
		if b.Action == ActionToggleHelp && !slices.Contains(out[i].Keys, HelpKey) {
			out[i].Keys = append([]string{HelpKey}, out[i].Keys...)
		}
	}
	return out, nil
}

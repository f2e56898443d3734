package keymap

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// Table maps key strings to actions. It is immutable after construction.
type Table struct {
	bindings []Binding
	byKey    map[string]Action   // key -> action
	byAction map[Action][]string // action -> keys (for help/documentation)
}

// NewTable creates a table from bindings. When two bindings share a key the
// later one wins.
func NewTable(bindings []Binding) *Table {
	t := &Table{
		bindings: slices.Clone(bindings),
		byKey:    make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			t.byKey[k] = b.Action
		}
		t.byAction[b.Action] = append(t.byAction[b.Action], b.Keys...)
	}
	for action, keys := range t.byAction {
		t.byAction[action] = dedupe(keys)
	}
	return t
}

// Resolve returns the action for a key, or empty string if not bound.
func (t *Table) Resolve(k string) Action {
	return t.byKey[k]
}

// KeysFor returns the keys bound to an action (for help/documentation).
func (t *Table) KeysFor(action Action) []string {
	return t.byAction[action]
}

// Bindings returns the bindings in help order.
func (t *Table) Bindings() []Binding {
	return slices.Clone(t.bindings)
}

// ShortHelp implements help.KeyMap.
func (t *Table) ShortHelp() []key.Binding {
	short := []Action{ActionTogglePause, ActionCommit, ActionSwitchTab, ActionToggleHelp, ActionQuit}
	out := make([]key.Binding, 0, len(short))
	for _, a := range short {
		for _, b := range t.bindings {
			if b.Action == a && len(b.Keys) > 0 {
				out = append(out, b.Key())
				break
			}
		}
	}
	return out
}

// FullHelp implements help.KeyMap.
func (t *Table) FullHelp() [][]key.Binding {
	col := make([]key.Binding, 0, len(t.bindings))
	for _, b := range t.bindings {
		col = append(col, b.Key())
	}
	return [][]key.Binding{col}
}

// Dispatch maps a key event to an action.
func Dispatch(ev KeyEvent, t *Table) (Action, bool) {
	a := t.Resolve(ev.Key)
	return a, a != ""
}

// IsHelpToggle reports whether ev is the fixed help key.
func IsHelpToggle(ev KeyEvent) bool {
	return ev.Key == HelpKey
}

func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}

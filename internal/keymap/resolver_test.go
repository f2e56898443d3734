//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestTable_Resolve(t *testing.T) {
	table := NewTable(DefaultBindings())

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"tab", ActionSwitchTab},
		{"p", ActionTogglePause},
		{"left", ActionVolumeDown},
		{"right", ActionVolumeUp},
		{"j", ActionSelectNext},
		{"down", ActionSelectNext},
		{"k", ActionSelectPrevious},
		{"up", ActionSelectPrevious},
		{"enter", ActionCommit},
		{"?", ActionToggleHelp},
		{"x", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := table.Resolve(tt.key); got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestDispatch(t *testing.T) {
	table := NewTable(DefaultBindings())

	a, ok := Dispatch(KeyEvent{Key: "p"}, table)
	if !ok || a != ActionTogglePause {
		t.Errorf("Dispatch(p) = %q, %v", a, ok)
	}

	if a, ok := Dispatch(KeyEvent{Key: "z"}, table); ok {
		t.Errorf("Dispatch(z) = %q, want no action", a)
	}
}

func TestDispatch_LaterBindingWins(t *testing.T) {
	table := NewTable([]Binding{
		{ActionQuit, []string{"x"}, "Quit"},
		{ActionTogglePause, []string{"x"}, "Pause"},
	})
	if got := table.Resolve("x"); got != ActionTogglePause {
		t.Errorf("Resolve(x) = %q, want %q", got, ActionTogglePause)
	}
}

func TestTable_KeysFor(t *testing.T) {
	table := NewTable([]Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit"},
		{ActionQuit, []string{"q"}, "Quit again"},
	})

	got := table.KeysFor(ActionQuit)
	if !slices.Equal(got, []string{"q", "ctrl+c"}) {
		t.Errorf("KeysFor(quit) = %v, want deduplicated [q ctrl+c]", got)
	}
	if keys := table.KeysFor(ActionCommit); len(keys) != 0 {
		t.Errorf("KeysFor(unbound) = %v, want empty", keys)
	}
}

func TestIsHelpToggle(t *testing.T) {
	if !IsHelpToggle(KeyEvent{Key: "?"}) {
		t.Error("? should toggle help")
	}
	if IsHelpToggle(KeyEvent{Key: "h"}) {
		t.Error("h should not toggle help")
	}
}

func TestTable_Help(t *testing.T) {
	table := NewTable(DefaultBindings())

	full := table.FullHelp()
	if len(full) != 1 || len(full[0]) != len(Actions) {
		t.Fatalf("FullHelp() shape = %d columns", len(full))
	}

	short := table.ShortHelp()
	if len(short) != 5 {
		t.Fatalf("ShortHelp() returned %d bindings, want 5", len(short))
	}
	if got := short[0].Help().Key; got != "p" {
		t.Errorf("first short help key = %q, want p", got)
	}
}

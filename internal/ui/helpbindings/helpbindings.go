// Package helpbindings renders the keybinding help overlay.
package helpbindings

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/mpdwaves/internal/keymap"
	"github.com/llehouerou/mpdwaves/internal/ui/popup"
)

var (
	keyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	descStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// Content renders one aligned "keys  description" row per binding.
// Unbound actions are listed with a dash.
func Content(bindings []keymap.Binding) string {
	keyWidth := 0
	for _, b := range bindings {
		keyWidth = max(keyWidth, lipgloss.Width(keyLabel(b)))
	}

	rows := make([]string, 0, len(bindings))
	for _, b := range bindings {
		label := keyLabel(b)
		pad := strings.Repeat(" ", keyWidth-lipgloss.Width(label))
		rows = append(rows, keyStyle.Render(label)+pad+"  "+descStyle.Render(b.Description))
	}
	return strings.Join(rows, "\n")
}

func keyLabel(b keymap.Binding) string {
	if len(b.Keys) == 0 {
		return "-"
	}
	return b.Key().Help().Key
}

// Render returns the help dialog centered in a width x height canvas,
// ready to be composed over the main view.
func Render(table *keymap.Table, width, height int) string {
	d := popup.New()
	d.Title = "Keybindings"
	d.Content = Content(table.Bindings())
	d.Footer = keymap.HelpKey + " close"
	return d.Render(width, height)
}

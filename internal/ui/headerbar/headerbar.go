// internal/ui/headerbar/headerbar.go
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/mpdwaves/internal/ui"
	"github.com/llehouerou/mpdwaves/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

var (
	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	keyHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Render returns the centered tab strip. switchKey is the key hint shown
// after the tabs; empty hides it.
func Render(tabs []string, active int, switchKey string, width int) string {
	if width < ui.MinWidth || len(tabs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(tabs))
	for i, name := range tabs {
		if i == active {
			parts = append(parts, styles.Gradient(name, true))
		} else {
			parts = append(parts, inactiveStyle.Render(name))
		}
	}
	content := strings.Join(parts, separatorStyle.Render(" │ "))
	if switchKey != "" {
		content += keyHintStyle.Render("  (" + switchKey + ")")
	}

	contentWidth := lipgloss.Width(content)
	if contentWidth < width {
		content = strings.Repeat(" ", (width-contentWidth)/2) + content
	}
	return content
}

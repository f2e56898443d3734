package queuepanel

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/mpdwaves/internal/ui/styles"
)

const playingSymbol = "\u25B6" // ▶

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	columnHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))

	modeIconStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

func rowStyle(selected, playing bool) lipgloss.Style {
	s := styles.T().S()
	switch {
	case selected && playing:
		return s.Selection.Bold(true)
	case selected:
		return s.Selection
	case playing:
		return s.Playing
	default:
		return s.Base
	}
}

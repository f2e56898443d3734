package queuepanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/mpdwaves/internal/daemon"
	"github.com/llehouerou/mpdwaves/internal/icons"
	"github.com/llehouerou/mpdwaves/internal/ui/render"
	"github.com/llehouerou/mpdwaves/internal/ui/styles"
)

const prefixWidth = 2

// View renders the queue panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.InnerWidth()
	content := m.renderHeader(innerWidth) + "\n" +
		m.renderColumnHeader(innerWidth) + "\n" +
		m.renderTrackList(innerWidth, m.listHeight())

	return styles.PanelStyle(true).
		Width(innerWidth).
		Render(content)
}

// renderHeader shows the playing position and enabled modes.
func (m Model) renderHeader(innerWidth int) string {
	text := fmt.Sprintf("Queue (%d/%d)", m.playing+1, len(m.queue))

	modes := icons.Modes(m.status.Repeat, m.status.Random, m.status.Single, m.status.Consume)
	modesWidth := 0
	if modes != "" {
		modes = modeIconStyle.Render(modes) + " "
		modesWidth = lipgloss.Width(modes)
	}

	text = render.TruncateAndPad(text, max(innerWidth-modesWidth, 0))
	return headerStyle.Render(text) + modes
}

func (m Model) renderColumnHeader(innerWidth int) string {
	widths := columnWidths(m.columns, innerWidth-prefixWidth)
	var b strings.Builder
	b.WriteString(render.EmptyLine(prefixWidth))
	for i, c := range m.columns {
		b.WriteString(cell(c.Field, widths[i]))
	}
	return columnHeaderStyle.Render(render.TruncateAndPad(b.String(), innerWidth))
}

func (m Model) renderTrackList(innerWidth, listHeight int) string {
	if len(m.queue) == 0 {
		lines := make([]string, 0, max(listHeight, 1))
		lines = append(lines, emptyStyle.Render(render.TruncateAndPad("  queue is empty", innerWidth)))
		for range listHeight - 1 {
			lines = append(lines, render.EmptyLine(innerWidth))
		}
		return strings.Join(lines, "\n")
	}

	start, end := m.cursor.VisibleRange(len(m.queue), listHeight)
	lines := make([]string, 0, listHeight)
	for idx := start; idx < end; idx++ {
		lines = append(lines, m.renderTrackLine(m.queue[idx], idx, innerWidth))
	}
	for len(lines) < listHeight {
		lines = append(lines, render.EmptyLine(innerWidth))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderTrackLine(t daemon.Track, idx, width int) string {
	playing := idx == m.playing
	selected := m.hasSelection && idx == m.selected

	prefix := "  "
	if playing {
		prefix = playingSymbol + " "
	}

	widths := columnWidths(m.columns, width-prefixWidth)
	var b strings.Builder
	b.WriteString(prefix)
	for i, c := range m.columns {
		b.WriteString(cell(cellValue(t, c.Field), widths[i]))
	}
	line := render.TruncateAndPad(b.String(), width)

	return rowStyle(selected, playing).Render(line)
}

// cell pads value to width, keeping one trailing space as a column gap.
func cell(value string, width int) string {
	if width <= 1 {
		return render.EmptyLine(width)
	}
	return render.TruncateAndPad(value, width-1) + " "
}

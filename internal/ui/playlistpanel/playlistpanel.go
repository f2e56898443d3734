// Package playlistpanel lists the daemon's stored playlists.
package playlistpanel

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/mpdwaves/internal/daemon"
	"github.com/llehouerou/mpdwaves/internal/icons"
	"github.com/llehouerou/mpdwaves/internal/session"
	"github.com/llehouerou/mpdwaves/internal/ui"
	"github.com/llehouerou/mpdwaves/internal/ui/render"
	"github.com/llehouerou/mpdwaves/internal/ui/styles"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	modifiedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

// Model holds the playlists shown in the browse tab.
type Model struct {
	ui.Base
	playlists []daemon.Playlist
	now       func() time.Time
}

// New creates an empty playlist panel.
func New() Model {
	return Model{now: time.Now}
}

// Sync copies the playlists from f.
func (m *Model) Sync(f session.Frame) {
	m.playlists = f.Snapshot.Playlists
}

// View renders the panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	innerWidth := m.InnerWidth()
	listHeight := m.ListHeight(ui.PanelOverhead)

	header := headerStyle.Render(render.TruncateAndPad(
		fmt.Sprintf("Playlists (%d)", len(m.playlists)), innerWidth))

	lines := make([]string, 0, listHeight)
	if len(m.playlists) == 0 && listHeight > 0 {
		lines = append(lines, emptyStyle.Render(render.TruncateAndPad("  no stored playlists", innerWidth)))
	}
	for i := 0; i < len(m.playlists) && len(lines) < listHeight; i++ {
		lines = append(lines, m.renderLine(m.playlists[i], innerWidth))
	}
	for len(lines) < listHeight {
		lines = append(lines, render.EmptyLine(innerWidth))
	}

	content := header + "\n" + render.Separator(innerWidth) + "\n" + strings.Join(lines, "\n")
	return styles.PanelStyle(true).Width(innerWidth).Render(content)
}

func (m Model) renderLine(p daemon.Playlist, width int) string {
	modified := ""
	if !p.LastModified.IsZero() {
		modified = humanize.RelTime(p.LastModified, m.now(), "ago", "from now")
	}
	modWidth := lipgloss.Width(modified)
	nameWidth := max(width-modWidth-3, 0)

	name := render.TruncateAndPad("  "+icons.FormatPlaylist(p.Name), nameWidth)
	return name + " " + modifiedStyle.Render(modified) + "  "
}

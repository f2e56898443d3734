// internal/app/view.go
package app

import (
	"strings"

	"github.com/llehouerou/mpdwaves/internal/keymap"
	"github.com/llehouerou/mpdwaves/internal/session"
	"github.com/llehouerou/mpdwaves/internal/ui/headerbar"
	"github.com/llehouerou/mpdwaves/internal/ui/helpbindings"
	"github.com/llehouerou/mpdwaves/internal/ui/overlay"
	"github.com/llehouerou/mpdwaves/internal/ui/playerbar"
	"github.com/llehouerou/mpdwaves/internal/ui/render"
	"github.com/llehouerou/mpdwaves/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.hasFrame || m.Width == 0 || m.Height == 0 {
		return ""
	}
	f := m.frame

	switchKey := ""
	if f.Keys != nil {
		if keys := f.Keys.KeysFor(keymap.ActionSwitchTab); len(keys) > 0 {
			switchKey = keys[0]
		}
	}
	header := headerbar.Render(session.TabNames(), int(f.Tab), switchKey, m.Width)

	var panel string
	switch f.Tab {
	case session.TabBrowse:
		panel = m.playlists.View()
	default:
		panel = m.queue.View()
	}

	view := header + "\n" + panel + "\n" +
		playerbar.Render(playerbar.NewState(f), m.Width) + "\n" +
		m.renderFooter()

	if f.ShowHelp && f.Keys != nil {
		view = overlay.Compose(view, helpbindings.Render(f.Keys, m.Width, m.Height), m.Width)
	}

	return enforceHeight(view, m.Height)
}

// renderFooter shows the notice when there is one, the short help otherwise.
func (m Model) renderFooter() string {
	if m.frame.Notice != "" {
		return styles.T().S().Error.Render(render.Truncate(m.frame.Notice, m.Width))
	}
	if m.frame.Keys == nil {
		return ""
	}
	return m.help.ShortHelpView(m.frame.Keys.ShortHelp())
}

// enforceHeight pads or truncates view to exactly targetHeight lines.
func enforceHeight(view string, targetHeight int) string {
	lines := strings.Split(view, "\n")
	switch {
	case len(lines) < targetHeight:
		for len(lines) < targetHeight {
			lines = append(lines, "")
		}
	case len(lines) > targetHeight:
		lines = lines[:targetHeight]
	}
	return strings.Join(lines, "\n")
}

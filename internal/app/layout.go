// internal/app/layout.go
package app

import (
	"github.com/llehouerou/mpdwaves/internal/ui/headerbar"
	"github.com/llehouerou/mpdwaves/internal/ui/playerbar"
)

// footerHeight is the notice / short help line.
const footerHeight = 1

// PanelHeight returns the height left for the active tab's panel.
func (m Model) PanelHeight() int {
	return max(m.Height-headerbar.Height-playerbar.Height-footerHeight, 0)
}

func (m *Model) resize() {
	m.queue.SetSize(m.Width, m.PanelHeight())
	m.playlists.SetSize(m.Width, m.PanelHeight())
	m.help.Width = m.Width
}

// internal/app/model.go
package app

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/mpdwaves/internal/keymap"
	"github.com/llehouerou/mpdwaves/internal/session"
	"github.com/llehouerou/mpdwaves/internal/ui/playlistpanel"
	"github.com/llehouerou/mpdwaves/internal/ui/queuepanel"
	"github.com/llehouerou/mpdwaves/internal/ui/styles"
)

// Model is the bubbletea model. It draws the latest frame and forwards key
// presses to the loop; it never touches daemon state itself.
type Model struct {
	bridge *Bridge

	frame    session.Frame
	hasFrame bool

	Width  int
	Height int

	queue     queuepanel.Model
	playlists playlistpanel.Model
	help      help.Model

	// LoopErr is the error the loop returned, set on LoopDoneMsg.
	LoopErr error
	// Dropped counts key presses lost to a full input buffer.
	Dropped int
}

// NewModel creates the root model. Empty columns use the default layout.
func NewModel(bridge *Bridge, columns []queuepanel.Column) Model {
	h := help.New()
	h.Styles.ShortKey = h.Styles.ShortKey.Foreground(styles.T().Primary)
	return Model{
		bridge:    bridge,
		queue:     queuepanel.New(columns),
		playlists: playlistpanel.New(),
		help:      h,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.resize()
		m.sync()

	case tea.KeyMsg:
		if !m.bridge.Push(keymap.KeyEvent{Key: msg.String()}) {
			m.Dropped++
		}

	case FrameMsg:
		m.frame, m.hasFrame = msg.Frame, true
		m.sync()

	case LoopDoneMsg:
		m.LoopErr = msg.Err
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) sync() {
	if !m.hasFrame {
		return
	}
	m.queue.Sync(m.frame)
	m.playlists.Sync(m.frame)
}

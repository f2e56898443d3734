// Package queuepanel renders the daemon queue as a column table.
package queuepanel

import (
	"github.com/llehouerou/mpdwaves/internal/daemon"
	"github.com/llehouerou/mpdwaves/internal/session"
	"github.com/llehouerou/mpdwaves/internal/ui"
	"github.com/llehouerou/mpdwaves/internal/ui/cursor"
)

// Model represents the queue panel state.
type Model struct {
	ui.Base
	columns []Column
	cursor  cursor.Cursor

	queue        []daemon.Track
	playing      int // -1 when nothing plays
	selected     int
	hasSelection bool
	status       daemon.Status
}

// New creates a queue panel. Empty columns fall back to DefaultColumns.
func New(columns []Column) Model {
	if len(columns) == 0 {
		columns = DefaultColumns()
	}
	return Model{
		columns: columns,
		cursor:  cursor.New(ui.ScrollMargin),
		playing: -1,
	}
}

// Sync copies what the panel draws from f and scrolls the selection into
// view. Without a selection the playing entry is followed instead.
func (m *Model) Sync(f session.Frame) {
	m.queue = f.Snapshot.Queue
	m.status = f.Snapshot.Status
	m.selected, m.hasSelection = f.Selected, f.HasSelection
	m.playing = -1
	if idx, ok := f.Snapshot.PlayingIndex(); ok {
		m.playing = idx
	}

	height := m.listHeight()
	switch {
	case m.hasSelection:
		m.cursor.Jump(m.selected, len(m.queue), height)
	case m.playing >= 0:
		m.cursor.Jump(m.playing, len(m.queue), height)
	default:
		m.cursor.Follow(len(m.queue), height)
	}
}

func (m Model) listHeight() int {
	return m.ListHeight(ui.PanelOverhead)
}

// Package session applies user actions to the mirrored daemon state.
package session

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/mpdwaves/internal/errmsg"
	"github.com/llehouerou/mpdwaves/internal/keymap"
	"github.com/llehouerou/mpdwaves/internal/mirror"
	"github.com/llehouerou/mpdwaves/internal/selection"
	"github.com/llehouerou/mpdwaves/internal/state"
)

// State is the mirrored daemon state. *mirror.Mirror and *mirror.Locked satisfy it.
type State interface {
	Refresh() error
	Snapshot() mirror.Snapshot
	QueueLen() int
	IssueTogglePause() error
	IssueVolume(delta int) error
	IssueSwitch(index int) error
}

var (
	_ State = (*mirror.Mirror)(nil)
	_ State = (*mirror.Locked)(nil)
)

// Options configure a Session.
type Options struct {
	Keys   *keymap.Table // defaults to keymap.DefaultBindings
	Log    logrus.FieldLogger
	Store  state.Interface // optional
	Daemon string          // key for persisted state
}

// Session holds UI state on top of the mirror: selection, tab, help and the
// notice line. It is owned by a single goroutine.
type Session struct {
	state State
	keys  *keymap.Table
	log   logrus.FieldLogger
	store state.Interface

	daemon string

	sel        selection.Selection
	tab        Tab
	help       bool
	notice     string
	refreshErr error
}

// New builds a session, restoring the saved tab and selection when a store is
// given. Without a saved selection the playing entry is selected.
func New(st State, opts Options) *Session {
	s := &Session{
		state:  st,
		keys:   opts.Keys,
		log:    opts.Log,
		store:  opts.Store,
		daemon: opts.Daemon,
	}
	if s.keys == nil {
		s.keys = keymap.NewTable(keymap.DefaultBindings())
	}
	if s.log == nil {
		s.log = logrus.StandardLogger()
	}

	snap := st.Snapshot()
	s.sel = selection.New(len(snap.Queue))
	s.restore()
	if _, ok := s.sel.Index(); !ok {
		if idx, playing := snap.PlayingIndex(); playing {
			s.sel.Set(idx)
		}
	}
	return s
}

func (s *Session) restore() {
	if s.store == nil {
		return
	}
	saved, err := s.store.GetSession(s.daemon)
	if err != nil {
		s.log.WithError(err).Warn(errmsg.Format(errmsg.OpStateLoad, err))
		return
	}
	if saved == nil {
		return
	}
	if tab, ok := ParseTab(saved.Tab); ok {
		s.tab = tab
	}
	if saved.Selected != nil {
		// Out of range after the queue shrank: fall back to the playing entry.
		s.sel.Set(*saved.Selected)
	}
}

func (s *Session) persist() {
	if s.store == nil {
		return
	}
	st := state.SessionState{Daemon: s.daemon, Tab: s.tab.String()}
	if idx, ok := s.sel.Index(); ok {
		st.Selected = &idx
	}
	s.store.SaveSession(st)
}

// HandleKey dispatches a key press and reports whether the session should end.
// The fixed help key is checked before the configurable table.
func (s *Session) HandleKey(ev keymap.KeyEvent) bool {
	if keymap.IsHelpToggle(ev) {
		s.help = !s.help
		return false
	}
	a, ok := keymap.Dispatch(ev, s.keys)
	if !ok {
		return false
	}
	return s.Apply(a)
}

// Apply performs an action against the current state and reports whether the
// session should end. Command failures become the notice line.
func (s *Session) Apply(a keymap.Action) bool {
	s.notice = ""

	switch a {
	case keymap.ActionQuit:
		s.persist()
		return true

	case keymap.ActionSwitchTab:
		s.tab = s.tab.Next()
		s.persist()

	case keymap.ActionToggleHelp:
		s.help = !s.help

	case keymap.ActionTogglePause:
		s.report(s.state.IssueTogglePause())

	case keymap.ActionVolumeDown, keymap.ActionVolumeUp:
		s.report(s.state.IssueVolume(a.VolumeDelta()))

	case keymap.ActionSelectNext:
		s.sel.Rebind(s.state.QueueLen())
		s.sel.Next()
		s.persist()

	case keymap.ActionSelectPrevious:
		s.sel.Rebind(s.state.QueueLen())
		s.sel.Previous()
		s.persist()

	case keymap.ActionCommit:
		s.sel.Rebind(s.state.QueueLen())
		err := s.sel.Commit(s.state)
		if errors.Is(err, selection.ErrNoSelection) {
			s.log.Info("commit with nothing selected")
			s.notice = errmsg.Format(errmsg.OpSelect, err)
			return false
		}
		s.report(err)

	default:
		s.log.WithField("action", a).Warn("unhandled action")
	}
	return false
}

func (s *Session) report(err error) {
	if err == nil {
		return
	}
	var oe *errmsg.OpError
	if errors.As(err, &oe) {
		s.notice = errmsg.Format(oe.Op, oe.Err)
		return
	}
	s.notice = err.Error()
}

// Refresh refreshes the mirror and rebinds the selection to the new queue.
func (s *Session) Refresh() error {
	err := s.state.Refresh()
	s.sel.Rebind(s.state.QueueLen())
	if err != nil {
		s.log.WithError(err).Warn("refresh failed")
	}
	s.refreshErr = err
	return err
}

// Frame returns what the renderer needs for one frame. The selection is
// rebound first so a background refresh can never leave it out of range.
func (s *Session) Frame() Frame {
	snap := s.state.Snapshot()
	s.sel.Rebind(len(snap.Queue))
	idx, ok := s.sel.Index()

	notice := s.notice
	if notice == "" && s.refreshErr != nil {
		notice = "Failed to " + s.refreshErr.Error()
	}

	return Frame{
		Snapshot:     snap,
		Selected:     idx,
		HasSelection: ok,
		Tab:          s.tab,
		ShowHelp:     s.help,
		Notice:       notice,
		Keys:         s.keys,
	}
}

// Selection returns the selected queue position.
func (s *Session) Selection() (int, bool) { return s.sel.Index() }

func (s *Session) Tab() Tab { return s.tab }

func (s *Session) HelpVisible() bool { return s.help }

func (s *Session) Notice() string { return s.notice }

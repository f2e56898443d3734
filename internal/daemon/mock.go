// internal/daemon/mock.go
package daemon

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"sync"
)

// Mock is a test double for Client. Replies and errors are settable per
// command name ("status", "currentsong", "playlistinfo", "listplaylists",
// "pause", "setvol", "play", "close"). It is safe for concurrent use.
type Mock struct {
	mu        sync.Mutex
	status    Status
	current   *Track
	queue     []Track
	playlists []Playlist
	errs      map[string]error
	calls     []string
	fetches   map[string]int
	closed    bool
}

var _ Client = (*Mock)(nil)

// NewMock creates a stopped daemon with an empty queue and volume 50.
func NewMock() *Mock {
	return &Mock{
		status:  Status{State: StateStop, Volume: 50, Song: -1},
		errs:    make(map[string]error),
		fetches: make(map[string]int),
	}
}

// SetStatus replaces the status reply.
func (m *Mock) SetStatus(st Status) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = st
}

// UpdateStatus edits the status reply in place.
func (m *Mock) UpdateStatus(fn func(*Status)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.status)
}

// SetCurrent sets the current track reply. nil means nothing is current.
func (m *Mock) SetCurrent(t *Track) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// SetQueue replaces the queue, updating the reported length and bumping the version.
func (m *Mock) SetQueue(tracks []Track) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = slices.Clone(tracks)
	for i := range m.queue {
		m.queue[i].Pos = i
	}
	m.status.QueueLen = len(tracks)
	m.status.QueueVersion++
}

// SetPlaylists replaces the stored playlists reply.
func (m *Mock) SetPlaylists(p []Playlist) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playlists = slices.Clone(p)
}

// SetError makes the named command fail with err until cleared with nil.
func (m *Mock) SetError(cmd string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.errs, cmd)
		return
	}
	m.errs[cmd] = err
}

// Calls returns the state-changing commands sent so far, e.g. "setvol 55".
func (m *Mock) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.calls)
}

// Fetches returns how many times the named query was issued.
func (m *Mock) Fetches(cmd string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetches[cmd]
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func (m *Mock) query(cmd string) error {
	m.fetches[cmd]++
	if err := m.errs[cmd]; err != nil {
		return &Error{Op: cmd, Kind: Classify(err), Err: err}
	}
	return nil
}

func (m *Mock) command(cmd string, args ...int) error {
	call := cmd
	for _, a := range args {
		call += " " + strconv.Itoa(a)
	}
	m.calls = append(m.calls, call)
	if err := m.errs[cmd]; err != nil {
		return &Error{Op: call, Kind: Classify(err), Err: err}
	}
	return nil
}

func (m *Mock) Status() (Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.query("status"); err != nil {
		return Status{}, err
	}
	return m.status, nil
}

func (m *Mock) CurrentTrack() (*Track, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.query("currentsong"); err != nil {
		return nil, err
	}
	if m.current == nil {
		return nil, nil
	}
	t := *m.current
	return &t, nil
}

func (m *Mock) Queue() ([]Track, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.query("playlistinfo"); err != nil {
		return nil, err
	}
	return slices.Clone(m.queue), nil
}

func (m *Mock) Playlists() ([]Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.query("listplaylists"); err != nil {
		return nil, err
	}
	return slices.Clone(m.playlists), nil
}

func (m *Mock) TogglePause() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.command("pause"); err != nil {
		return err
	}
	switch m.status.State {
	case StatePlay:
		m.status.State = StatePause
	case StatePause:
		m.status.State = StatePlay
	case StateStop:
	}
	return nil
}

func (m *Mock) SetVolume(percent int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.command("setvol", percent); err != nil {
		return err
	}
	if percent < 0 || percent > 100 {
		return &Error{Op: "setvol", Kind: KindProtocol, Err: fmt.Errorf("volume %d out of range", percent)}
	}
	m.status.Volume = percent
	return nil
}

func (m *Mock) SwitchTo(index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.command("play", index); err != nil {
		return err
	}
	if index < 0 || index >= len(m.queue) {
		return &Error{Op: "play", Kind: KindProtocol, Err: errors.New("Bad song index")}
	}
	m.status.Song = index
	m.status.State = StatePlay
	t := m.queue[index]
	m.current = &t
	return nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

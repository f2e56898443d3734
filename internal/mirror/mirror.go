// Package mirror keeps a local copy of the daemon's playback state.
package mirror

import (
	"slices"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/mpdwaves/internal/daemon"
	"github.com/llehouerou/mpdwaves/internal/errmsg"
)

// startupDuration keeps progress ratios finite before the first track change is observed.
const startupDuration = 1

// Snapshot is an immutable view of the mirrored state.
type Snapshot struct {
	Status    daemon.Status
	Current   *daemon.Track
	Queue     []daemon.Track
	Playlists []daemon.Playlist
	Duration  int // cached current track duration in seconds
}

// PlayingIndex returns the queue position of the playing entry.
func (s Snapshot) PlayingIndex() (int, bool) {
	if s.Status.Song < 0 || s.Status.Song >= len(s.Queue) {
		return 0, false
	}
	return s.Status.Song, true
}

// Mirror owns the daemon connection and the last fetched state.
// It is not safe for concurrent use; see Locked.
type Mirror struct {
	client daemon.Client
	log    logrus.FieldLogger

	status    daemon.Status
	current   *daemon.Track
	queue     []daemon.Track
	queueOK   bool
	playlists []daemon.Playlist
	duration  int
}

// New fetches the initial state. A status failure is fatal; the other fields
// start empty when their fetch fails.
func New(client daemon.Client, log logrus.FieldLogger) (*Mirror, error) {
	st, err := client.Status()
	if err != nil {
		return nil, errmsg.Wrap(errmsg.OpConnect, err)
	}

	m := &Mirror{client: client, log: log, status: st}
	m.current = m.fetchCurrent()
	m.fetchQueue()
	m.fetchPlaylists()

	m.duration = durationOf(m.current, st)
	if m.duration == 0 {
		m.duration = startupDuration
	}
	return m, nil
}

// Refresh re-fetches daemon state. Only a status failure aborts it.
func (m *Mirror) Refresh() error {
	st, err := m.client.Status()
	if err != nil {
		return errmsg.Wrap(errmsg.OpRefresh, err)
	}
	prev := m.status
	m.status = st

	current := m.fetchCurrent()
	if !sameTrack(m.current, current) {
		m.current = current
		m.duration = durationOf(current, st)
	}

	if !m.queueOK || st.QueueVersion != prev.QueueVersion || st.QueueLen != len(m.queue) {
		m.fetchQueue()
	}
	m.fetchPlaylists()
	return nil
}

func (m *Mirror) fetchCurrent() *daemon.Track {
	t, err := m.client.CurrentTrack()
	if err != nil {
		m.log.WithError(err).Warn("current track unavailable")
		return nil
	}
	return t
}

func (m *Mirror) fetchQueue() {
	q, err := m.client.Queue()
	if err != nil {
		m.log.WithError(err).Warn("queue unavailable")
		m.queue = nil
		m.queueOK = false
		return
	}
	m.queue = q
	m.queueOK = true
}

func (m *Mirror) fetchPlaylists() {
	p, err := m.client.Playlists()
	if err != nil {
		m.log.WithError(err).Warn("playlists unavailable")
		m.playlists = nil
		return
	}
	m.playlists = p
}

func sameTrack(a, b *daemon.Track) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// durationOf prefers the track's own duration over the status total.
func durationOf(t *daemon.Track, st daemon.Status) int {
	if t != nil && t.Duration > 0 {
		return int(t.Duration.Seconds())
	}
	if st.HasTime && st.Duration > 0 {
		return int(st.Duration.Seconds())
	}
	return 0
}

func (m *Mirror) Status() daemon.Status { return m.status }

// Queue returns the queue snapshot. Callers must not modify it.
func (m *Mirror) Queue() []daemon.Track { return m.queue }

func (m *Mirror) QueueLen() int { return len(m.queue) }

func (m *Mirror) Playlists() []daemon.Playlist { return m.playlists }

func (m *Mirror) CurrentTrack() *daemon.Track { return m.current }

// CurrentDuration returns the cached duration of the current track in seconds.
func (m *Mirror) CurrentDuration() int { return m.duration }

// CurrentPlayingIndex returns the queue position of the playing entry.
func (m *Mirror) CurrentPlayingIndex() (int, bool) {
	return m.Snapshot().PlayingIndex()
}

// Snapshot copies the slices so the result stays valid after later refreshes.
func (m *Mirror) Snapshot() Snapshot {
	return Snapshot{
		Status:    m.status,
		Current:   m.current,
		Queue:     slices.Clone(m.queue),
		Playlists: slices.Clone(m.playlists),
		Duration:  m.duration,
	}
}

// IssueTogglePause toggles between play and pause.
func (m *Mirror) IssueTogglePause() error {
	if err := m.client.TogglePause(); err != nil {
		m.log.WithError(err).Error("toggle pause failed")
		return errmsg.Wrap(errmsg.OpTogglePause, err)
	}
	return nil
}

// IssueVolume moves the volume by delta, clamped to 0-100. Nothing is sent
// when the clamped value equals the current volume.
func (m *Mirror) IssueVolume(delta int) error {
	if !m.status.HasMixer() {
		return errmsg.Wrap(errmsg.OpVolume, daemon.ErrNoMixer)
	}
	target := lo.Clamp(m.status.Volume+delta, 0, 100)
	if target == m.status.Volume {
		return nil
	}
	if err := m.client.SetVolume(target); err != nil {
		m.log.WithError(err).WithField("volume", target).Error("set volume failed")
		return errmsg.Wrap(errmsg.OpVolume, err)
	}
	m.status.Volume = target
	return nil
}

// IssueSwitch starts playback at the given queue position.
func (m *Mirror) IssueSwitch(index int) error {
	if err := m.client.SwitchTo(index); err != nil {
		m.log.WithError(err).WithField("index", index).Error("switch track failed")
		return errmsg.Wrap(errmsg.OpSwitch, err)
	}
	return nil
}

// Close releases the daemon connection.
func (m *Mirror) Close() error {
	return m.client.Close()
}

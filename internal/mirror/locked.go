package mirror

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/mpdwaves/internal/daemon"
)

// DefaultRefreshInterval is the background refresh period.
const DefaultRefreshInterval = 200 * time.Millisecond

// Locked serializes access to a Mirror shared between the UI loop and a
// background refresher. Each call holds the lock for one daemon round-trip.
type Locked struct {
	mu sync.Mutex
	m  *Mirror
}

// NewLocked wraps m. The caller must stop using m directly.
func NewLocked(m *Mirror) *Locked {
	return &Locked{m: m}
}

func (l *Locked) Refresh() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Refresh()
}

// Snapshot takes the lock once and copies everything a frame needs.
func (l *Locked) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Snapshot()
}

func (l *Locked) Status() daemon.Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Status()
}

func (l *Locked) QueueLen() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.QueueLen()
}

func (l *Locked) CurrentDuration() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.CurrentDuration()
}

func (l *Locked) IssueTogglePause() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.IssueTogglePause()
}

func (l *Locked) IssueVolume(delta int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.IssueVolume(delta)
}

func (l *Locked) IssueSwitch(index int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.IssueSwitch(index)
}

func (l *Locked) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Close()
}

// Refresher refreshes a Locked mirror in the background.
type Refresher struct {
	State    interface{ Refresh() error }
	Interval time.Duration
	Events   <-chan string // optional idle notifications
	Log      logrus.FieldLogger

	// OnRefresh, when set, runs after every refresh attempt.
	OnRefresh func(error)
}

// Run refreshes on every tick and every idle event until ctx is cancelled.
func (r *Refresher) Run(ctx context.Context) {
	interval := r.Interval
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	events := r.Events
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case name, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			r.Log.WithField("subsystem", name).Debug("daemon changed")
		}
		err := r.State.Refresh()
		if err != nil {
			r.Log.WithError(err).Warn("background refresh failed")
		}
		if r.OnRefresh != nil {
			r.OnRefresh(err)
		}
	}
}

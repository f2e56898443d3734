// Package state persists UI session state between runs.
package state

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/mpdwaves/internal/errmsg"
)

const (
	appName      = "mpdwaves"
	dbFileName   = "state.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db  *sql.DB
	log logrus.FieldLogger

	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *SessionState
	debounce  time.Duration
	closed    bool
	// inflight counts debounced writes that took their state before Close.
	inflight sync.WaitGroup
}

// Open opens the state database at path, or at the XDG data location when
// path is empty. Failed writes are logged to log.
func Open(path string, log logrus.FieldLogger) (*Manager, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db, log: log, debounce: saveDebounce}, nil
}

// DefaultPath returns the database location under the XDG data directory.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

// Close writes any pending state, waits for a write already under way and
// closes the database. Saves after Close are ignored.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.closed {
		m.saveMu.Unlock()
		return nil
	}
	m.closed = true
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	m.inflight.Wait()

	var saveErr error
	if pending != nil {
		saveErr = m.write(*pending)
	}
	return errors.Join(saveErr, m.db.Close())
}

func (m *Manager) GetSession(daemon string) (*SessionState, error) {
	return getSession(m.db, daemon)
}

// SaveSession schedules a write. Bursts of saves collapse into the last one.
func (m *Manager) SaveSession(state SessionState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	if m.closed {
		return
	}

	m.pending = &state
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveTimer = time.AfterFunc(m.debounce, m.flush)
}

func (m *Manager) flush() {
	m.saveMu.Lock()
	if m.closed || m.pending == nil {
		m.saveMu.Unlock()
		return
	}
	pending := *m.pending
	m.pending = nil
	m.inflight.Add(1)
	m.saveMu.Unlock()

	defer m.inflight.Done()
	_ = m.write(pending)
}

// write saves state and logs a failure.
func (m *Manager) write(state SessionState) error {
	err := saveSession(m.db, state)
	if err != nil {
		m.log.WithError(err).WithField("daemon", state.Daemon).Warn(errmsg.Format(errmsg.OpStateSave, err))
	}
	return err
}

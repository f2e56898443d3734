// internal/state/mock.go
package state

import "sync"

// Mock is a test double for Manager.
type Mock struct {
	mu       sync.Mutex
	sessions map[string]SessionState
	saves    int
	closed   bool
}

var _ Interface = (*Mock)(nil)

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{sessions: make(map[string]SessionState)}
}

func (m *Mock) SaveSession(s SessionState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.Daemon] = s
	m.saves++
}

func (m *Mock) GetSession(daemon string) (*SessionState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[daemon]
	if !ok {
		return nil, nil //nolint:nilnil // mirrors Manager on first run
	}
	return &s, nil
}

// Saves returns how many times SaveSession was called.
func (m *Mock) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

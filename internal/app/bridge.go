// internal/app/bridge.go
package app

import (
	"context"
	"errors"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/mpdwaves/internal/keymap"
	"github.com/llehouerou/mpdwaves/internal/session"
	"github.com/llehouerou/mpdwaves/internal/syncloop"
)

// ErrInputClosed is returned by Poll once the terminal program has exited.
var ErrInputClosed = errors.New("terminal input closed")

var (
	_ syncloop.InputSource = (*Bridge)(nil)
	_ syncloop.Renderer    = (*Bridge)(nil)
)

// Bridge connects the sync loop to the bubbletea program. Key presses
// decoded by the program are queued for Poll; frames rendered by the loop
// are sent to the program as FrameMsg.
type Bridge struct {
	keys   chan keymap.KeyEvent
	closed chan struct{}
	once   sync.Once

	mu   sync.Mutex
	send func(tea.Msg)
}

// NewBridge creates a bridge buffering up to buffer key presses.
func NewBridge(buffer int) *Bridge {
	return &Bridge{
		keys:   make(chan keymap.KeyEvent, max(buffer, 1)),
		closed: make(chan struct{}),
	}
}

// Attach sets the function frames are delivered through, usually Program.Send.
func (b *Bridge) Attach(send func(tea.Msg)) {
	b.mu.Lock()
	b.send = send
	b.mu.Unlock()
}

// Push queues a key press. It reports false when the buffer is full and the
// key was dropped.
func (b *Bridge) Push(ev keymap.KeyEvent) bool {
	select {
	case b.keys <- ev:
		return true
	default:
		return false
	}
}

// Close marks the input as finished. Queued keys are still delivered.
func (b *Bridge) Close() {
	b.once.Do(func() { close(b.closed) })
}

// Poll implements syncloop.InputSource.
func (b *Bridge) Poll(ctx context.Context, timeout time.Duration) (keymap.KeyEvent, bool, error) {
	select {
	case ev := <-b.keys:
		return ev, true, nil
	default:
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case ev := <-b.keys:
		return ev, true, nil
	case <-timer.C:
		return keymap.KeyEvent{}, false, nil
	case <-b.closed:
		return keymap.KeyEvent{}, false, ErrInputClosed
	case <-ctx.Done():
		return keymap.KeyEvent{}, false, ctx.Err()
	}
}

// Render implements syncloop.Renderer.
func (b *Bridge) Render(f session.Frame) {
	b.mu.Lock()
	send := b.send
	b.mu.Unlock()
	if send != nil {
		send(FrameMsg{Frame: f})
	}
}

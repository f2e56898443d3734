// Package syncloop drives the interactive session: render, poll input with a
// bounded timeout, dispatch, and refresh on a fixed tick.
package syncloop

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/mpdwaves/internal/keymap"
	"github.com/llehouerou/mpdwaves/internal/session"
)

// DefaultTickRate is the refresh cadence of the single-loop model.
const DefaultTickRate = 250 * time.Millisecond

// InputSource yields key presses. Poll waits at most timeout and reports
// false when nothing arrived. Errors end the loop.
type InputSource interface {
	Poll(ctx context.Context, timeout time.Duration) (keymap.KeyEvent, bool, error)
}

// Renderer draws a frame. It must not block on the loop.
type Renderer interface {
	Render(session.Frame)
}

// Loop owns the session for its whole run.
type Loop struct {
	Session  *session.Session
	Input    InputSource
	Renderer Renderer
	Log      logrus.FieldLogger

	TickRate time.Duration
	// RefreshOnTick refreshes the session every tick. Disable it when a
	// background refresher keeps the state current.
	RefreshOnTick bool
	Now           func() time.Time
}

// Run loops until a quit action, which returns nil. Input errors and ctx
// cancellation are returned.
func (l *Loop) Run(ctx context.Context) error {
	tick := l.TickRate
	if tick <= 0 {
		tick = DefaultTickRate
	}
	now := l.Now
	if now == nil {
		now = time.Now
	}
	log := l.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	lastTick := now()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		l.Renderer.Render(l.Session.Frame())

		timeout := max(0, tick-now().Sub(lastTick))
		ev, ok, err := l.Input.Poll(ctx, timeout)
		if err != nil {
			log.WithError(err).Error("input source failed")
			return err
		}
		if ok && l.Session.HandleKey(ev) {
			log.Info("quit requested")
			// One last frame so the renderer sees the final state.
			l.Renderer.Render(l.Session.Frame())
			return nil
		}

		if now().Sub(lastTick) >= tick {
			if l.RefreshOnTick {
				// Failures are logged by the session and shown as a notice.
				_ = l.Session.Refresh()
			}
			lastTick = now()
		}
	}
}

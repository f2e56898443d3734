package syncloop

import (
	"context"
	"errors"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/mpdwaves/internal/daemon"
	"github.com/llehouerou/mpdwaves/internal/keymap"
	"github.com/llehouerou/mpdwaves/internal/mirror"
	"github.com/llehouerou/mpdwaves/internal/session"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// scriptedInput replays steps. A step with a zero key waits the full timeout;
// otherwise the key arrives after wait.
type step struct {
	wait time.Duration
	key  string
	err  error
}

type scriptedInput struct {
	clock    *fakeClock
	steps    []step
	timeouts []time.Duration
}

func (in *scriptedInput) Poll(_ context.Context, timeout time.Duration) (keymap.KeyEvent, bool, error) {
	in.timeouts = append(in.timeouts, timeout)
	if len(in.steps) == 0 {
		return keymap.KeyEvent{}, false, errors.New("script exhausted")
	}
	s := in.steps[0]
	in.steps = in.steps[1:]
	if s.err != nil {
		return keymap.KeyEvent{}, false, s.err
	}
	if s.key == "" {
		in.clock.Advance(timeout)
		return keymap.KeyEvent{}, false, nil
	}
	in.clock.Advance(s.wait)
	return keymap.KeyEvent{Key: s.key}, true, nil
}

type frameRecorder struct{ frames []session.Frame }

func (r *frameRecorder) Render(f session.Frame) { r.frames = append(r.frames, f) }

func setup(t *testing.T, client *daemon.Mock, steps ...step) (*Loop, *scriptedInput, *frameRecorder) {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	m, err := mirror.New(client, logger)
	require.NoError(t, err)

	clock := &fakeClock{t: time.Unix(0, 0)}
	in := &scriptedInput{clock: clock, steps: steps}
	rec := &frameRecorder{}
	return &Loop{
		Session:       session.New(m, session.Options{Log: logger}),
		Input:         in,
		Renderer:      rec,
		Log:           logger,
		TickRate:      250 * time.Millisecond,
		RefreshOnTick: true,
		Now:           clock.Now,
	}, in, rec
}

func TestRun_QuitReturnsNil(t *testing.T) {
	loop, _, rec := setup(t, daemon.NewMock(), step{wait: 10 * time.Millisecond, key: "q"})
	require.NoError(t, loop.Run(context.Background()))
	assert.Len(t, rec.frames, 2)
}

func TestRun_TimeoutShrinksWithElapsedTime(t *testing.T) {
	loop, in, _ := setup(t, daemon.NewMock(),
		step{wait: 100 * time.Millisecond, key: "x"},
		step{wait: 100 * time.Millisecond, key: "x"},
		step{},
		step{wait: 0, key: "q"},
	)
	require.NoError(t, loop.Run(context.Background()))

	assert.Equal(t, []time.Duration{
		250 * time.Millisecond,
		150 * time.Millisecond,
		50 * time.Millisecond,
		250 * time.Millisecond, // tick elapsed, lastTick reset
	}, in.timeouts)
}

func TestRun_RefreshesOncePerTick(t *testing.T) {
	client := daemon.NewMock()
	loop, _, _ := setup(t, client, step{}, step{}, step{}, step{key: "q"})
	before := client.Fetches("status")

	require.NoError(t, loop.Run(context.Background()))
	assert.Equal(t, 3, client.Fetches("status")-before)
}

func TestRun_NoRefreshWhenBackgroundModel(t *testing.T) {
	client := daemon.NewMock()
	loop, _, _ := setup(t, client, step{}, step{}, step{key: "q"})
	loop.RefreshOnTick = false
	before := client.Fetches("status")

	require.NoError(t, loop.Run(context.Background()))
	assert.Equal(t, 0, client.Fetches("status")-before)
}

func TestRun_RefreshFailureDoesNotStopLoop(t *testing.T) {
	client := daemon.NewMock()
	loop, _, rec := setup(t, client, step{}, step{}, step{key: "q"})
	client.SetError("status", errors.New("ACK"))

	require.NoError(t, loop.Run(context.Background()))
	last := rec.frames[len(rec.frames)-1]
	assert.Contains(t, last.Notice, "Failed to refresh state")
}

func TestRun_InputErrorPropagates(t *testing.T) {
	boom := errors.New("terminal gone")
	loop, _, _ := setup(t, daemon.NewMock(), step{}, step{err: boom})
	assert.ErrorIs(t, loop.Run(context.Background()), boom)
}

func TestRun_CommandFailureDoesNotStopLoop(t *testing.T) {
	client := daemon.NewMock()
	client.SetError("pause", errors.New("ACK"))
	loop, _, rec := setup(t, client, step{key: "p"}, step{key: "q"})

	require.NoError(t, loop.Run(context.Background()))
	assert.Contains(t, rec.frames[1].Notice, "Failed to toggle pause")
}

func TestRun_ContextCancelled(t *testing.T) {
	loop, _, _ := setup(t, daemon.NewMock())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, loop.Run(ctx), context.Canceled)
}

// internal/app/bridge_test.go
package app

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/mpdwaves/internal/keymap"
	"github.com/llehouerou/mpdwaves/internal/session"
)

func TestBridge_PollTimesOut(t *testing.T) {
	b := NewBridge(4)
	start := time.Now()
	_, ok, err := b.Poll(context.Background(), 20*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestBridge_PollReturnsPushedKey(t *testing.T) {
	b := NewBridge(4)
	require.True(t, b.Push(keymap.KeyEvent{Key: "j"}))

	ev, ok, err := b.Poll(context.Background(), time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "j", ev.Key)
}

func TestBridge_PollZeroTimeoutStillDrainsQueue(t *testing.T) {
	b := NewBridge(4)
	b.Push(keymap.KeyEvent{Key: "k"})

	ev, ok, err := b.Poll(context.Background(), 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "k", ev.Key)
}

func TestBridge_PushDropsWhenFull(t *testing.T) {
	b := NewBridge(1)
	assert.True(t, b.Push(keymap.KeyEvent{Key: "a"}))
	assert.False(t, b.Push(keymap.KeyEvent{Key: "b"}))
}

func TestBridge_CloseDeliversQueuedKeysFirst(t *testing.T) {
	b := NewBridge(4)
	b.Push(keymap.KeyEvent{Key: "q"})
	b.Close()
	b.Close() // idempotent

	ev, ok, err := b.Poll(context.Background(), time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "q", ev.Key)

	_, _, err = b.Poll(context.Background(), time.Second)
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestBridge_PollHonorsContext(t *testing.T) {
	b := NewBridge(4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := b.Poll(ctx, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBridge_RenderSendsFrame(t *testing.T) {
	b := NewBridge(4)
	b.Render(session.Frame{Notice: "dropped"}) // no program attached yet

	var got []tea.Msg
	b.Attach(func(msg tea.Msg) { got = append(got, msg) })
	b.Render(session.Frame{Notice: "hello"})

	require.Len(t, got, 1)
	msg, ok := got[0].(FrameMsg)
	require.True(t, ok)
	assert.Equal(t, "hello", msg.Frame.Notice)
}

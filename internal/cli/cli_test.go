package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/mpdwaves/internal/daemon"
	"github.com/llehouerou/mpdwaves/internal/mirror"
)

func snapshot() mirror.Snapshot {
	queue := []daemon.Track{
		{File: "band/intro.flac", Title: "Intro", Duration: 65 * time.Second, Tags: map[string]string{"Artist": "Band", "Album": "First"}},
		{File: "band/untitled.flac", Duration: 200 * time.Second},
	}
	current := queue[0]
	return mirror.Snapshot{
		Status: daemon.Status{
			State:   daemon.StatePlay,
			Volume:  40,
			Song:    0,
			HasTime: true,
			Elapsed: 30 * time.Second,
			Repeat:  true,
			Random:  true,
		},
		Current:  &current,
		Queue:    queue,
		Duration: 65,
	}
}

func TestStatusLine(t *testing.T) {
	assert.Equal(t, "play | Band - Intro | 0:30 / 1:05 | volume 40% | repeat,random", statusLine(snapshot()))

	snap := mirror.Snapshot{Status: daemon.Status{State: daemon.StateStop, Volume: -1, Song: -1}}
	assert.Equal(t, "stop | volume n/a", statusLine(snap))
}

func TestRenderStatus(t *testing.T) {
	var buf bytes.Buffer
	renderStatus(&buf, snapshot())
	out := buf.String()

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 4)
	assert.Contains(t, lines[0], "Band - Intro")
	assert.Contains(t, out, "Intro")
	assert.Contains(t, out, "band/untitled.flac", "untitled tracks fall back to the file")
	assert.Contains(t, out, "3:20")

	var marked string
	for _, l := range lines {
		if strings.Contains(l, "Intro") && !strings.Contains(l, "|") {
			marked = l
		}
	}
	assert.Contains(t, marked, ">")
}

func TestRenderStatus_EmptyQueue(t *testing.T) {
	var buf bytes.Buffer
	renderStatus(&buf, mirror.Snapshot{Status: daemon.Status{State: daemon.StateStop, Song: -1}})
	assert.Contains(t, buf.String(), "queue is empty")
}

func TestRenderPlaylists(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	renderPlaylists(&buf, []daemon.Playlist{
		{Name: "evening", LastModified: now.Add(-3 * time.Hour)},
		{Name: "unknown"},
	}, now)
	out := buf.String()

	assert.Contains(t, out, "evening")
	assert.Contains(t, out, "3 hours ago")
	assert.Contains(t, out, "unknown")
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := NewRootCmd()
	for _, name := range []string{"config", "host", "port", "password", "sync", "icons", "log-file", "log-level"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
	status, _, err := cmd.Find([]string{"status"})
	require.NoError(t, err)
	assert.Equal(t, "status", status.Name())
	assert.NotNil(t, status.Flags().Lookup("playlists"))
}

func TestRootCmd_BadConfigFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cmd := NewRootCmd()
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"status", "--sync", "sideways"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sync")
}

type scriptedMirror struct {
	snap     mirror.Snapshot
	failNext bool
	calls    int
}

func (m *scriptedMirror) Refresh() error {
	m.calls++
	if m.failNext {
		m.failNext = false
		return errors.New("ACK")
	}
	return nil
}

func (m *scriptedMirror) Snapshot() mirror.Snapshot { return m.snap }

func TestWatchLoop_LogsEachEvent(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	m := &scriptedMirror{snap: snapshot(), failNext: true}
	events := make(chan string, 3)
	errs := make(chan error, 1)
	events <- "player"
	events <- "mixer"
	errs <- errors.New("idle: broken pipe")
	close(errs)
	close(events)

	watchLoop(context.Background(), m, events, errs, logger)

	assert.Equal(t, 2, m.calls)
	var changed []string
	for _, e := range hook.AllEntries() {
		if e.Message == "changed" {
			changed = append(changed, e.Data["subsystem"].(string))
			assert.Equal(t, "band/intro.flac", e.Data["file"])
		}
	}
	assert.Len(t, changed, 1, "the failed refresh is not logged as a change")
	assert.NotEmpty(t, hook.Entries)
}

func TestWatchCmd_Hidden(t *testing.T) {
	watch, _, err := NewRootCmd().Find([]string{"watch"})
	require.NoError(t, err)
	assert.Equal(t, "watch", watch.Name())
	assert.True(t, watch.Hidden)
}

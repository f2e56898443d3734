package queuepanel

import (
	"strings"
	"testing"

	"github.com/llehouerou/mpdwaves/internal/daemon"
	"github.com/llehouerou/mpdwaves/internal/icons"
	"github.com/llehouerou/mpdwaves/internal/ui/styles"
	"github.com/llehouerou/mpdwaves/internal/ui/testutil"
)

func threeTracks() []daemon.Track {
	return []daemon.Track{
		testutil.Track("Blue Train", "Coltrane", 643),
		testutil.Track("So What", "Davis", 562),
		testutil.Track("Take Five", "Brubeck", 324),
	}
}

func renderFrame(t *testing.T, m *Model, tracks []daemon.Track, song, selected int) string {
	t.Helper()
	f := testutil.Frame(tracks, song)
	if selected >= 0 {
		f.Selected, f.HasSelection = selected, true
	}
	m.Sync(f)
	return testutil.StripANSI(m.View())
}

func TestView_EmptyQueue(t *testing.T) {
	m := New(nil)
	m.SetSize(60, 10)
	out := renderFrame(t, &m, nil, -1, -1)

	if !strings.Contains(out, "Queue (0/0)") {
		t.Errorf("empty queue should show 'Queue (0/0)', got: %s", out)
	}
	if !strings.Contains(out, "queue is empty") {
		t.Errorf("missing empty placeholder: %s", out)
	}
}

func TestView_ZeroSize(t *testing.T) {
	m := New(nil)
	if m.View() != "" {
		t.Error("unsized panel should render nothing")
	}
}

func TestView_Columns(t *testing.T) {
	m := New(nil)
	m.SetSize(160, 10)
	out := renderFrame(t, &m, threeTracks(), -1, -1)

	for _, want := range []string{"Artist", "Title", "Album", "Blue Train", "Coltrane", "10:43", "Davis LP"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q:\n%s", want, out)
		}
	}
}

func TestView_CustomColumns(t *testing.T) {
	m := New([]Column{{Field: FieldFile, Width: 100}})
	m.SetSize(80, 10)
	out := renderFrame(t, &m, threeTracks(), -1, -1)

	if !strings.Contains(out, "Coltrane/Blue Train.flac") {
		t.Errorf("file column missing:\n%s", out)
	}
	if strings.Contains(out, "10:43") {
		t.Error("duration column should not be shown")
	}
}

func TestView_PlayingMarker(t *testing.T) {
	m := New(nil)
	m.SetSize(100, 10)
	out := renderFrame(t, &m, threeTracks(), 1, -1)

	if !strings.Contains(out, "Queue (2/3)") {
		t.Errorf("header should show position, got:\n%s", out)
	}
	line := testutil.FindLine(out, "So What")
	if !strings.Contains(line, playingSymbol) {
		t.Errorf("playing row should carry the marker: %q", line)
	}
	if strings.Contains(testutil.FindLine(out, "Take Five"), playingSymbol) {
		t.Error("only the playing row is marked")
	}
}

func TestRowStyle(t *testing.T) {
	th := styles.T()
	if got := rowStyle(true, false).GetBackground(); got != th.SelectionBg {
		t.Errorf("selected background = %v, want %v", got, th.SelectionBg)
	}
	if got := rowStyle(true, false).GetForeground(); got != th.SelectionFg {
		t.Errorf("selected foreground = %v, want %v", got, th.SelectionFg)
	}
	if got := rowStyle(false, true).GetForeground(); got != th.Playing {
		t.Errorf("playing foreground = %v, want %v", got, th.Playing)
	}
	if got := rowStyle(true, true).GetBackground(); got != th.SelectionBg {
		t.Error("selection wins over the playing style")
	}
}

func TestView_ModeIcons(t *testing.T) {
	icons.Init("none")
	m := New(nil)
	m.SetSize(80, 10)
	f := testutil.Frame(threeTracks(), 0)
	f.Snapshot.Status.Repeat = true
	f.Snapshot.Status.Random = true
	m.Sync(f)

	header := testutil.SplitLines(testutil.StripANSI(m.View()))[1]
	if !strings.Contains(header, "[r] [z]") {
		t.Errorf("header should show modes, got %q", header)
	}
}

func TestSync_ScrollsToSelection(t *testing.T) {
	tracks := make([]daemon.Track, 50)
	for i := range tracks {
		tracks[i] = testutil.Track("Track", "Artist", 60)
	}
	tracks[40].Title = "Target"

	m := New(nil)
	m.SetSize(80, 12)
	out := renderFrame(t, &m, tracks, -1, 40)

	if !strings.Contains(out, "Target") {
		t.Errorf("selected row should be scrolled into view:\n%s", out)
	}
}

func TestSync_FollowsPlayingWithoutSelection(t *testing.T) {
	tracks := make([]daemon.Track, 50)
	for i := range tracks {
		tracks[i] = testutil.Track("Track", "Artist", 60)
	}
	tracks[45].Title = "Now"

	m := New(nil)
	m.SetSize(80, 12)
	out := renderFrame(t, &m, tracks, 45, -1)

	if !strings.Contains(out, "Now") {
		t.Errorf("playing row should be in view:\n%s", out)
	}
}

func TestView_FixedLineCount(t *testing.T) {
	m := New(nil)
	m.SetSize(60, 10)
	out := renderFrame(t, &m, threeTracks(), 0, -1)
	if got := len(strings.Split(out, "\n")); got != 10 {
		t.Errorf("panel should fill its height, got %d lines", got)
	}
}

func TestColumnWidths(t *testing.T) {
	got := columnWidths(DefaultColumns(), 100)
	want := []int{20, 5, 30, 30, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("width[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestCellValue(t *testing.T) {
	tr := daemon.Track{File: "dir/song.mp3", Tags: map[string]string{"Track": "7"}}
	tests := []struct {
		field string
		want  string
	}{
		{FieldTitle, "song.mp3"},
		{FieldTrack, "7"},
		{FieldDuration, ""},
		{FieldFile, "dir/song.mp3"},
		{"Bogus", ""},
	}
	for _, tt := range tests {
		if got := cellValue(tr, tt.field); got != tt.want {
			t.Errorf("cellValue(%s) = %q, want %q", tt.field, got, tt.want)
		}
	}
}

func TestValidField(t *testing.T) {
	if !ValidField("Album") || ValidField("album") {
		t.Error("field names are case sensitive")
	}
}

// Package playerbar renders the now-playing line with progress and volume.
package playerbar

import (
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/mpdwaves/internal/daemon"
	"github.com/llehouerou/mpdwaves/internal/icons"
	"github.com/llehouerou/mpdwaves/internal/session"
	"github.com/llehouerou/mpdwaves/internal/ui"
	"github.com/llehouerou/mpdwaves/internal/ui/render"
	"github.com/llehouerou/mpdwaves/internal/ui/styles"
)

// Height is the player bar height: top border + content + bottom border.
const Height = 3

// State holds everything needed to render the player bar.
type State struct {
	PlayState daemon.PlayState
	Artist    string
	Title     string
	Elapsed   int // seconds
	Duration  int // seconds, 0 when the daemon reports no time
	Progress  float64
	Volume    int
	HasMixer  bool
	Bitrate   int
}

// NewState extracts the player bar state from a frame.
func NewState(f session.Frame) State {
	st := f.Snapshot.Status
	s := State{
		PlayState: st.State,
		Elapsed:   f.ElapsedSeconds(),
		Progress:  f.Progress(),
		Volume:    st.Volume,
		HasMixer:  st.HasMixer(),
		Bitrate:   st.Bitrate,
	}
	if st.HasTime {
		s.Duration = f.Snapshot.Duration
	}
	if t := f.Snapshot.Current; t != nil {
		s.Artist = t.Artist()
		s.Title = t.Title
		if s.Title == "" {
			s.Title = path.Base(t.File)
		}
	}
	return s
}

// Label returns "artist - title", or whichever half is known.
func (s State) Label() string {
	switch {
	case s.Artist != "" && s.Title != "":
		return s.Artist + " - " + s.Title
	case s.Title != "":
		return s.Title
	case s.PlayState == daemon.StateStop:
		return "Stopped"
	}
	return "Unknown Track"
}

// Render returns the bordered player bar for the given width.
func Render(s State, width int) string {
	if width < ui.MinWidth {
		return ""
	}
	innerWidth := max(width-6, 0) // border and padding

	status := icons.State(string(s.PlayState))
	timeStr := render.Clock(s.Elapsed)
	if s.Duration > 0 {
		timeStr += " / " + render.Clock(s.Duration)
	}
	volume := RenderVolume(s.Volume, s.HasMixer)

	const separator = "   "
	fixed := lipgloss.Width(status) + 2 +
		len(separator)*2 + lipgloss.Width(timeStr) +
		len(separator) + lipgloss.Width(volume)
	available := innerWidth - fixed

	// Give the label what it needs, leaving the gauge at least its minimum.
	labelWidth := min(lipgloss.Width(s.Label()), max(available-ui.MinProgressBarWidth, 0))
	barWidth := max(available-labelWidth, 0)

	var b strings.Builder
	b.WriteString(statusStyle.Render(status))
	b.WriteString("  ")
	b.WriteString(titleStyle.Render(render.Truncate(s.Label(), labelWidth)))
	b.WriteString(separator)
	b.WriteString(styles.Gauge(barWidth, s.Progress))
	b.WriteString(separator)
	b.WriteString(timeStyle.Render(timeStr))
	b.WriteString(separator)
	b.WriteString(volume)

	content := ansi.Truncate(b.String(), innerWidth, "")
	return barStyle.Padding(0, 2).Width(width - 2).Render(content)
}

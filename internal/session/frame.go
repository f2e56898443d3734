package session

import (
	"github.com/llehouerou/mpdwaves/internal/keymap"
	"github.com/llehouerou/mpdwaves/internal/mirror"
)

// Tab is one of the top-level views.
type Tab int

const (
	TabQueue Tab = iota
	TabBrowse
	tabCount
)

var tabNames = [tabCount]string{"Queue", "Browse"}

// TabNames returns the tab titles in order.
func TabNames() []string { return tabNames[:] }

func (t Tab) String() string {
	if t < 0 || t >= tabCount {
		return ""
	}
	return tabNames[t]
}

// Next returns the following tab, wrapping around.
func (t Tab) Next() Tab {
	return (t + 1) % tabCount
}

// ParseTab resolves a tab title.
func ParseTab(name string) (Tab, bool) {
	for i, n := range tabNames {
		if n == name {
			return Tab(i), true
		}
	}
	return TabQueue, false
}

// Frame is an immutable view of everything drawn in one frame.
type Frame struct {
	Snapshot     mirror.Snapshot
	Selected     int
	HasSelection bool
	Tab          Tab
	ShowHelp     bool
	Notice       string
	Keys         *keymap.Table
}

// Progress returns elapsed seconds over the cached track duration, in [0, 1].
func (f Frame) Progress() float64 {
	if !f.Snapshot.Status.HasTime || f.Snapshot.Duration <= 0 {
		return 0
	}
	ratio := f.Snapshot.Status.Elapsed.Seconds() / float64(f.Snapshot.Duration)
	return min(max(ratio, 0), 1)
}

// ElapsedSeconds returns the whole seconds played in the current track.
func (f Frame) ElapsedSeconds() int {
	if !f.Snapshot.Status.HasTime {
		return 0
	}
	return int(f.Snapshot.Status.Elapsed.Seconds())
}

// Package testutil provides common testing utilities for UI components.
package testutil

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/mpdwaves/internal/daemon"
	"github.com/llehouerou/mpdwaves/internal/keymap"
	"github.com/llehouerou/mpdwaves/internal/mirror"
	"github.com/llehouerou/mpdwaves/internal/session"
)

// StripANSI removes ANSI escape codes from a string for easier testing.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// MeasureWidth returns the visual width of a string, accounting for
// wide characters (CJK, emoji) and stripping ANSI codes.
func MeasureWidth(s string) int {
	return lipgloss.Width(StripANSI(s))
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != ""
}

// FindLine returns the first line containing the given substring, or empty string.
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// SplitLines splits output into lines, removing trailing empty lines.
func SplitLines(output string) []string {
	lines := strings.Split(output, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Track builds a queue entry with artist and album tags.
func Track(title, artist string, secs int) daemon.Track {
	return daemon.Track{
		File:     artist + "/" + title + ".flac",
		Title:    title,
		Duration: time.Duration(secs) * time.Second,
		Tags:     map[string]string{"Artist": artist, "Album": artist + " LP"},
	}
}

// Frame builds a playing frame over queue with song as the playing entry
// (-1 for none) and the default key table.
func Frame(queue []daemon.Track, song int) session.Frame {
	st := daemon.Status{Volume: 50, State: daemon.StateStop, Song: song, QueueLen: len(queue)}
	var current *daemon.Track
	duration := 0
	if song >= 0 && song < len(queue) {
		st.State = daemon.StatePlay
		t := queue[song]
		current = &t
		duration = int(t.Duration.Seconds())
	}
	return session.Frame{
		Snapshot: mirror.Snapshot{Status: st, Current: current, Queue: queue, Duration: duration},
		Keys:     keymap.NewTable(keymap.DefaultBindings()),
	}
}

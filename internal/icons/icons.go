package icons

import "strings"

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Play     string
	Pause    string
	Stop     string
	Volume   string
	Playlist string
	Random   string
	Repeat   string
	Single   string
	Consume  string
}

var (
	nerdIcons = Icons{
		Play:     "", // nf-fa-play
		Pause:    "", // nf-fa-pause
		Stop:     "", // nf-fa-stop
		Volume:   "󰕾",      // nf-md-volume_high
		Playlist: "󰲸 ",     // nf-md-playlist_music
		Random:   "󰒟",      // nf-md-shuffle
		Repeat:   "󰑖",      // nf-md-repeat
		Single:   "󰑘",      // nf-md-repeat_once
		Consume:  "󰆴",      // nf-md-delete
	}

	unicodeIcons = Icons{
		Play:     "▶",
		Pause:    "⏸",
		Stop:     "■",
		Volume:   "🔊",
		Playlist: "📋 ",
		Random:   "🔀",
		Repeat:   "🔁",
		Single:   "🔂",
		Consume:  "✂",
	}

	noneIcons = Icons{
		Play:     ">",
		Pause:    "||",
		Stop:     "[]",
		Volume:   "vol",
		Playlist: "",
		Random:   "[z]",
		Repeat:   "[r]",
		Single:   "[s]",
		Consume:  "[c]",
	}

	current = noneIcons
)

// Init selects the icon set. Unknown styles fall back to none.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// Valid reports whether style names a known icon set.
func Valid(style string) bool {
	switch Style(style) {
	case StyleNerd, StyleUnicode, StyleNone:
		return true
	}
	return false
}

// State returns the icon for a daemon play state ("play", "pause", "stop").
func State(state string) string {
	switch state {
	case "play":
		return current.Play
	case "pause":
		return current.Pause
	default:
		return current.Stop
	}
}

// Volume returns the volume indicator.
func Volume() string {
	return current.Volume
}

// FormatPlaylist formats a playlist name with the appropriate icon.
func FormatPlaylist(name string) string {
	return current.Playlist + name
}

// Modes renders the enabled playback modes, space separated.
func Modes(repeat, random, single, consume bool) string {
	var parts []string
	if repeat {
		parts = append(parts, current.Repeat)
	}
	if random {
		parts = append(parts, current.Random)
	}
	if single {
		parts = append(parts, current.Single)
	}
	if consume {
		parts = append(parts, current.Consume)
	}
	return strings.Join(parts, " ")
}

// Package daemon wraps the music daemon control connection.
package daemon

import (
	"maps"
	"strings"
	"time"
)

// Client is a blocking request/response connection to the daemon.
// Implementations are not safe for concurrent use.
type Client interface {
	Status() (Status, error)
	CurrentTrack() (*Track, error) // nil when nothing is current
	Queue() ([]Track, error)
	Playlists() ([]Playlist, error)

	TogglePause() error
	SetVolume(percent int) error
	SwitchTo(index int) error

	Close() error
}

// PlayState is the daemon player state.
type PlayState string

const (
	StatePlay  PlayState = "play"
	StatePause PlayState = "pause"
	StateStop  PlayState = "stop"
)

// Status is a snapshot of daemon-reported state. It is replaced wholesale on refresh.
type Status struct {
	Volume int // 0-100, -1 when the daemon has no mixer
	State  PlayState

	// Elapsed and Duration are only meaningful when HasTime is set.
	Elapsed  time.Duration
	Duration time.Duration
	HasTime  bool

	Song         int // queue position of the current entry, -1 when none
	QueueLen     int
	QueueVersion int

	Repeat  bool
	Random  bool
	Single  bool
	Consume bool

	Bitrate int    // kbps
	Audio   string // "samplerate:bits:channels"
}

// HasMixer reports whether the daemon exposes a volume control.
func (s Status) HasMixer() bool {
	return s.Volume >= 0
}

// Track is a queue entry. Fields are immutable once fetched.
type Track struct {
	File     string
	Title    string
	Duration time.Duration // 0 when unknown
	Tags     map[string]string
	Pos      int
	ID       int
}

// Tag returns the named tag, matching the name case-insensitively.
func (t Track) Tag(name string) string {
	if v, ok := t.Tags[name]; ok {
		return v
	}
	for k, v := range t.Tags {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// Artist returns the artist tag.
func (t Track) Artist() string { return t.Tag("Artist") }

// Album returns the album tag.
func (t Track) Album() string { return t.Tag("Album") }

// Number returns the track number tag.
func (t Track) Number() string { return t.Tag("Track") }

// Equal reports whether two tracks carry the same identity and metadata.
// Queue position and id are ignored: the same song moved in the queue is still equal.
func (t Track) Equal(o Track) bool {
	return t.File == o.File &&
		t.Title == o.Title &&
		t.Duration == o.Duration &&
		maps.Equal(t.Tags, o.Tags)
}

// Playlist is a stored playlist on the daemon.
type Playlist struct {
	Name         string
	LastModified time.Time // zero when unknown
}

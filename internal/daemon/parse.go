package daemon

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// attribute keys that are not tags
var trackFields = map[string]bool{
	"file":          true,
	"Title":         true,
	"duration":      true,
	"Time":          true,
	"Pos":           true,
	"Id":            true,
	"Last-Modified": true,
	"Added":         true,
	"Format":        true,
	"Prio":          true,
}

func parseStatus(attrs map[string]string) (Status, error) {
	st := Status{Volume: -1, Song: -1}

	state := PlayState(attrs["state"])
	switch state {
	case StatePlay, StatePause, StateStop:
		st.State = state
	default:
		return Status{}, fmt.Errorf("unknown player state %q", attrs["state"])
	}

	var err error
	if v, ok := attrs["volume"]; ok {
		if st.Volume, err = strconv.Atoi(v); err != nil {
			return Status{}, fmt.Errorf("volume: %w", err)
		}
	}
	if v, ok := attrs["song"]; ok {
		if st.Song, err = strconv.Atoi(v); err != nil {
			return Status{}, fmt.Errorf("song: %w", err)
		}
	}
	if st.QueueLen, err = atoiDefault(attrs["playlistlength"]); err != nil {
		return Status{}, fmt.Errorf("playlistlength: %w", err)
	}
	if st.QueueVersion, err = atoiDefault(attrs["playlist"]); err != nil {
		return Status{}, fmt.Errorf("playlist: %w", err)
	}
	st.Bitrate, _ = atoiDefault(attrs["bitrate"])
	st.Audio = attrs["audio"]

	st.Repeat = attrs["repeat"] == "1"
	st.Random = attrs["random"] == "1"
	st.Single = attrs["single"] == "1"
	st.Consume = attrs["consume"] == "1"

	st.Elapsed, st.Duration, st.HasTime = parseTimes(attrs)
	return st, nil
}

// parseTimes prefers the high resolution elapsed/duration fields and falls
// back to the legacy "time" field ("elapsed:total" in whole seconds).
func parseTimes(attrs map[string]string) (elapsed, total time.Duration, ok bool) {
	e, eok := parseSeconds(attrs["elapsed"])
	d, dok := parseSeconds(attrs["duration"])
	if eok && dok {
		return e, d, true
	}
	legacy, found := attrs["time"]
	if !found {
		if eok {
			return e, 0, true
		}
		return 0, 0, false
	}
	before, after, cut := strings.Cut(legacy, ":")
	if !cut {
		return 0, 0, false
	}
	le, lok := parseSeconds(before)
	ld, ldok := parseSeconds(after)
	if !lok || !ldok {
		return 0, 0, false
	}
	if eok {
		le = e
	}
	if dok {
		ld = d
	}
	return le, ld, true
}

func parseTrack(attrs map[string]string) Track {
	t := Track{
		File:  attrs["file"],
		Title: attrs["Title"],
		Pos:   -1,
		ID:    -1,
		Tags:  make(map[string]string),
	}
	if d, ok := parseSeconds(attrs["duration"]); ok {
		t.Duration = d
	} else if d, ok := parseSeconds(attrs["Time"]); ok {
		t.Duration = d
	}
	if v, err := strconv.Atoi(attrs["Pos"]); err == nil {
		t.Pos = v
	}
	if v, err := strconv.Atoi(attrs["Id"]); err == nil {
		t.ID = v
	}
	for k, v := range attrs {
		if !trackFields[k] {
			t.Tags[k] = v
		}
	}
	return t
}

func parsePlaylist(attrs map[string]string) Playlist {
	p := Playlist{Name: attrs["playlist"]}
	if v := attrs["Last-Modified"]; v != "" {
		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			p.LastModified = ts
		}
	}
	return p
}

func parseSeconds(s string) (time.Duration, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return time.Duration(f * float64(time.Second)), true
}

func atoiDefault(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

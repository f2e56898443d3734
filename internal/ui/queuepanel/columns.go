package queuepanel

import (
	"path"

	"github.com/llehouerou/mpdwaves/internal/daemon"
	"github.com/llehouerou/mpdwaves/internal/ui/render"
)

// Field names accepted in a column definition.
const (
	FieldFile     = "File"
	FieldTitle    = "Title"
	FieldDuration = "Duration"
	FieldAlbum    = "Album"
	FieldArtist   = "Artist"
	FieldTrack    = "Track"
)

// Fields lists every field a column can show.
var Fields = []string{FieldFile, FieldTitle, FieldDuration, FieldAlbum, FieldArtist, FieldTrack}

// Column is one queue table column. Width is a percentage of the row.
type Column struct {
	Field string
	Width int
}

// DefaultColumns returns the layout used when none is configured.
func DefaultColumns() []Column {
	return []Column{
		{Field: FieldArtist, Width: 20},
		{Field: FieldTrack, Width: 5},
		{Field: FieldTitle, Width: 30},
		{Field: FieldAlbum, Width: 30},
		{Field: FieldDuration, Width: 5},
	}
}

// ValidField reports whether name is a known column field.
func ValidField(name string) bool {
	for _, f := range Fields {
		if f == name {
			return true
		}
	}
	return false
}

// cellValue extracts the text shown for field.
func cellValue(t daemon.Track, field string) string {
	switch field {
	case FieldFile:
		return t.File
	case FieldTitle:
		if t.Title != "" {
			return t.Title
		}
		return path.Base(t.File)
	case FieldDuration:
		if t.Duration <= 0 {
			return ""
		}
		return render.Clock(int(t.Duration.Seconds()))
	case FieldAlbum:
		return t.Album()
	case FieldArtist:
		return t.Artist()
	case FieldTrack:
		return t.Number()
	}
	return ""
}

// columnWidths splits total cells by percentage. Rounding leftovers go unused.
func columnWidths(cols []Column, total int) []int {
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = max(total*c.Width/100, 0)
	}
	return widths
}

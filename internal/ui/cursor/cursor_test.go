package cursor

import "testing"

func TestNew(t *testing.T) {
	c := New(5)
	if c.Pos() != 0 {
		t.Errorf("New() pos = %d, want 0", c.Pos())
	}
	if c.Offset() != 0 {
		t.Errorf("New() offset = %d, want 0", c.Offset())
	}
}

func TestJump(t *testing.T) {
	tests := []struct {
		name          string
		initialPos    int
		initialOffset int
		target        int
		len           int
		height        int
		wantPos       int
		wantOffset    int
	}{
		{"within first page", 0, 0, 1, 10, 5, 1, 0},
		{"scroll down with margin", 0, 0, 3, 10, 5, 3, 1},
		{"clamps above", 0, 0, 15, 10, 5, 9, 5},
		{"clamps below", 2, 0, -5, 10, 5, 0, 0},
		{"scroll back up", 9, 5, 4, 10, 5, 4, 2},
		{"list shorter than viewport", 0, 0, 2, 3, 5, 2, 0},
		{"margin shrinks on tiny viewport", 0, 0, 4, 10, 1, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Cursor{pos: tt.initialPos, offset: tt.initialOffset, margin: 2}
			c.Jump(tt.target, tt.len, tt.height)
			if c.Pos() != tt.wantPos {
				t.Errorf("pos = %d, want %d", c.Pos(), tt.wantPos)
			}
			if c.Offset() != tt.wantOffset {
				t.Errorf("offset = %d, want %d", c.Offset(), tt.wantOffset)
			}
		})
	}
}

func TestJump_EmptyListResets(t *testing.T) {
	c := Cursor{pos: 4, offset: 2, margin: 2}
	c.Jump(3, 0, 5)
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("got pos=%d offset=%d, want 0/0", c.Pos(), c.Offset())
	}
}

func TestFollow_ListShrinks(t *testing.T) {
	c := Cursor{pos: 9, offset: 5, margin: 2}
	c.Follow(3, 5)
	if c.Pos() != 2 {
		t.Errorf("pos = %d, want 2", c.Pos())
	}
	if c.Offset() != 0 {
		t.Errorf("offset = %d, want 0", c.Offset())
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name      string
		offset    int
		len       int
		height    int
		wantStart int
		wantEnd   int
	}{
		{"full page", 1, 10, 5, 1, 6},
		{"short list", 0, 3, 5, 0, 3},
		{"empty", 0, 0, 5, 0, 0},
		{"no height", 0, 10, 0, 0, 0},
		{"stale offset", 8, 4, 5, 3, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Cursor{offset: tt.offset}
			start, end := c.VisibleRange(tt.len, tt.height)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("VisibleRange = [%d,%d), want [%d,%d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

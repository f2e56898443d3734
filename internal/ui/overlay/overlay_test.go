package overlay

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		top   string
		width int
		want  string
	}{
		{
			name:  "replaces the covered span",
			base:  "aaaaaaaaaa\nbbbbbbbbbb",
			top:   "  XY\n",
			width: 10,
			want:  "aaXYaaaaaa\nbbbbbbbbbb",
		},
		{
			name:  "blank top lines keep base",
			base:  "abc\ndef",
			top:   "   \n e",
			width: 3,
			want:  "abc\ndef",
		},
		{
			name:  "pads short base lines",
			base:  "ab",
			top:   "    Z",
			width: 6,
			want:  "ab  Z ",
		},
		{
			name:  "top taller than base",
			base:  "abc",
			top:   "x\ny\nz",
			width: 3,
			want:  "xbc",
		},
		{
			name:  "inner spaces are copied",
			base:  "..........",
			top:   " a  b",
			width: 10,
			want:  ".a  b.....",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ansi.Strip(Compose(tt.base, tt.top, tt.width))
			if got != tt.want {
				t.Errorf("Compose() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompose_StyledInput(t *testing.T) {
	base := lipgloss.NewStyle().Bold(true).Render("0123456789")
	got := ansi.Strip(Compose(base, "   ab", 10))
	if got != "012ab56789" {
		t.Errorf("Compose() = %q", got)
	}
}

func TestCompose_WideRuneBoundary(t *testing.T) {
	// The top span starts in the middle of a wide rune.
	got := ansi.Strip(Compose("日本語", " X", 6))
	if ansi.StringWidth(got) != 6 {
		t.Errorf("width = %d, want 6 (%q)", ansi.StringWidth(got), got)
	}
}

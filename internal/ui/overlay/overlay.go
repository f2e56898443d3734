// Package overlay draws one rendered view on top of another.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose overlays top onto base, line by line. On each top line the span
// between the first and last visible non-space cell replaces the base cells
// underneath; blank top lines leave the base untouched. Both views are
// ANSI-aware and base lines are padded to width.
func Compose(base, top string, width int) string {
	baseLines := strings.Split(base, "\n")
	topLines := strings.Split(top, "\n")

	for i := 0; i < len(topLines) && i < len(baseLines); i++ {
		start, end, ok := visibleSpan(topLines[i])
		if !ok {
			continue
		}
		baseLines[i] = splice(baseLines[i], ansi.Cut(topLines[i], start, end), start, end, width)
	}
	return strings.Join(baseLines, "\n")
}

// visibleSpan returns the display columns [start, end) holding non-space text.
func visibleSpan(line string) (start, end int, ok bool) {
	plain := ansi.Strip(line)
	trimmed := strings.TrimLeft(plain, " ")
	if strings.TrimSpace(trimmed) == "" {
		return 0, 0, false
	}
	start = len(plain) - len(trimmed)
	end = start + ansi.StringWidth(strings.TrimRight(trimmed, " "))
	return start, end, true
}

func splice(baseLine, middle string, start, end, width int) string {
	if w := ansi.StringWidth(baseLine); w < width {
		baseLine += strings.Repeat(" ", width-w)
	}

	// Cutting through a wide rune can drop a cell; pad back to alignment.
	prefix := ansi.Cut(baseLine, 0, start)
	if w := ansi.StringWidth(prefix); w < start {
		prefix += strings.Repeat(" ", start-w)
	}

	out := prefix + middle
	if end < width {
		suffix := ansi.Cut(baseLine, end, width)
		if w := ansi.StringWidth(suffix); w < width-end {
			suffix = strings.Repeat(" ", width-end-w) + suffix
		}
		out += suffix
	}
	return out
}

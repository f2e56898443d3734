package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// neutral stands in for colors that are not #rrggbb (ANSI palette indexes).
var neutral = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Gradient renders text blended from the theme's Primary to Secondary color,
// one grapheme cluster at a time.
func Gradient(text string, bold bool) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 0 {
		return ""
	}

	base := lipgloss.NewStyle().Bold(bold)
	ramp := blend(len(clusters), T().Primary, T().Secondary)
	var b strings.Builder
	for i, c := range clusters {
		b.WriteString(base.Foreground(ramp[i]).Render(c))
	}
	return b.String()
}

// Gauge renders a bar of width cells filled to ratio. The filled cells take
// their color from the position they occupy on the full-width ramp, so the
// head of the bar shifts hue as it advances.
func Gauge(width int, ratio float64) string {
	if width <= 0 {
		return ""
	}
	filled := int(min(max(ratio, 0), 1) * float64(width))

	var b strings.Builder
	if filled > 0 {
		ramp := blend(width, T().Primary, T().Secondary)
		for i := range filled {
			b.WriteString(lipgloss.NewStyle().Foreground(ramp[i]).Render("━"))
		}
	}
	if rest := width - filled; rest > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(T().FgSubtle).Render(strings.Repeat("─", rest)))
	}
	return b.String()
}

// blend returns n colors from one end to the other, interpolated in HCL.
func blend(n int, from, to lipgloss.Color) []lipgloss.Color {
	if n < 2 {
		return []lipgloss.Color{from}
	}
	a, b := parseHex(from), parseHex(to)
	out := make([]lipgloss.Color, n)
	for i := range n {
		out[i] = lipgloss.Color(a.BlendHcl(b, float64(i)/float64(n-1)).Clamped().Hex())
	}
	return out
}

func parseHex(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return neutral
	}
	return col
}

package popup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/mpdwaves/internal/ui/testutil"
)

func TestDialog_Render(t *testing.T) {
	d := New()
	d.Title = "Help"
	d.Content = "q  Quit\np  Play/pause"
	d.Footer = "? close"

	out := testutil.StripANSI(d.Render(60, 20))
	lines := strings.Split(out, "\n")

	assert.True(t, testutil.ContainsLine(out, "Help"))
	assert.True(t, testutil.ContainsLine(out, "p  Play/pause"))
	assert.True(t, testutil.ContainsLine(out, "? close"))

	// 2 border + title + gap + 2 content + gap + footer = 8 rows, centered in 20.
	assert.Len(t, lines, 6+8)
	assert.Empty(t, lines[0])

	top := testutil.FindLine(out, "╭")
	require.NotEmpty(t, top)
	assert.True(t, strings.HasPrefix(top, " "), "box is horizontally centered")
}

func TestDialog_TruncatesWideContent(t *testing.T) {
	d := New()
	d.Content = strings.Repeat("x", 200)
	out := testutil.StripANSI(d.Render(40, 10))
	for _, l := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, testutil.MeasureWidth(l), 40)
	}
	assert.Contains(t, out, "…")
}

func TestDialog_DropsRowsThatDoNotFit(t *testing.T) {
	d := New()
	d.Title = "T"
	d.Content = strings.Repeat("row\n", 30) + "last"
	out := testutil.StripANSI(d.Render(40, 10))
	assert.LessOrEqual(t, len(strings.Split(out, "\n")), 10)
	assert.NotContains(t, out, "last")
}

func TestCenter(t *testing.T) {
	out := Center("ab\ncd", 10, 6)
	assert.Equal(t, "\n\n    ab\n    cd", out)
}

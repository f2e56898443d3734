package playerbar

import (
	"fmt"

	"github.com/llehouerou/mpdwaves/internal/icons"
)

// RenderVolume renders the volume indicator, "vol  50%" or "vol n/a"
// when the daemon has no mixer.
func RenderVolume(volume int, hasMixer bool) string {
	if !hasMixer {
		return volumeStyle.Render(icons.Volume() + " n/a")
	}
	return volumeStyle.Render(fmt.Sprintf("%s %3d%%", icons.Volume(), volume))
}

package rowan

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefreshInterval is how often the FPS/TPS overlay text is regenerated.
const fpsRefreshInterval = 500 * time.Millisecond

// fpsOverlay draws the current FPS and TPS in the top-left corner.
// The text is refreshed every ~0.5 seconds; in between, the cached
// image is reused. The zero value is ready to use.
type fpsOverlay struct {
	img  *ebiten.Image
	last time.Time
}

func (f *fpsOverlay) draw(screen *ebiten.Image) {
	if f.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		f.img = ebiten.NewImage(100, 32)
	}
	if f.last.IsZero() || time.Since(f.last) >= fpsRefreshInterval {
		f.last = time.Now()
		f.img.Clear()
		// Semi-transparent background for readability
		f.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	screen.DrawImage(f.img, nil)
}

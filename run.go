package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string // window title; defaults to "rowan"
	Width     int    // logical screen and window width; defaults to 640
	Height    int    // logical screen and window height; defaults to 480
	ShowFPS   bool   // draw the FPS/TPS overlay in the top-left corner
	Resizable bool   // allow the user to resize the window
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = "rowan"
	}
	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	return c
}

// Run opens a window and drives loop until the host exits. It starts the
// loop, hands it to the engine, and blocks until the window closes or a
// phase returns ebiten.Termination; a normal termination returns nil.
func Run(loop *Loop, cfg RunConfig) error {
	cfg = cfg.withDefaults()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	loop.SetSize(cfg.Width, cfg.Height)
	loop.SetShowFPS(cfg.ShowFPS)
	loop.Start()
	return ebiten.RunGame(loop)
}

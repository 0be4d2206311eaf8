package rowan

import "testing"

func TestRunConfig_Defaults(t *testing.T) {
	c := RunConfig{}.withDefaults()
	if c.Title != "rowan" {
		t.Errorf("Title = %q, want %q", c.Title, "rowan")
	}
	if c.Width != 640 || c.Height != 480 {
		t.Errorf("size = %dx%d, want 640x480", c.Width, c.Height)
	}
	if c.ShowFPS || c.Resizable {
		t.Error("ShowFPS and Resizable should default to false")
	}
}

func TestRunConfig_ExplicitValuesKept(t *testing.T) {
	c := RunConfig{Title: "Asteroids", Width: 1280, Height: 720, ShowFPS: true}.withDefaults()
	if c.Title != "Asteroids" {
		t.Errorf("Title = %q, want %q", c.Title, "Asteroids")
	}
	if c.Width != 1280 || c.Height != 720 {
		t.Errorf("size = %dx%d, want 1280x720", c.Width, c.Height)
	}
	if !c.ShowFPS {
		t.Error("ShowFPS = false, want true")
	}
}

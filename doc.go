// Package rowan packs images into texture atlases and drives a
// fault-isolating game loop for [Ebitengine].
//
// Rowan provides two pieces most 2D games grow on their own: an atlas
// packer that lays decoded images out on a single GPU texture, and a
// frame loop that keeps ticking when one frame's input, state, or
// render work fails.
//
// # Quick start
//
// Pack images at startup, then hand three managers to a [Loop] and run it:
//
//	atlas, err := rowan.PackImages(images)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer atlas.Dispose()
//
//	loop := rowan.NewLoop(input, state, display)
//	if err := rowan.Run(loop, rowan.RunConfig{
//		Title: "My Game", Width: 640, Height: 480,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, skip [Run]: a [Loop] implements [ebiten.Game], so it
// can be handed to [ebiten.RunGame] directly after [Loop.Start].
//
// # Atlas packing
//
// [PlanAtlas] computes row-by-row placements without touching pixels;
// [PackImages] plans, composes, and uploads a single texture in one call.
// Images keep their input order and the atlas never exceeds
// [MaxAtlasDimension] pixels on a side. [PackSprites] adds name-based
// lookup on top:
//
//	sheet, err := rowan.PackSprites(sprites)
//	if err != nil {
//		log.Fatal(err)
//	}
//	screen.DrawImage(sheet.SubImage("hero_idle"), nil)
//
// # Frame loop
//
// A [Loop] runs input, state, and render phases each tick through the
// [InputManager], [StateManager], and [DisplayManager] it was built with.
// A failing phase, whether a returned error or a panic, is reported and
// the rest of that tick is skipped; the next tick starts fresh. Replace
// the default report with [Loop.SetErrorHandler].
//
// [Ebitengine]: https://ebitengine.org
package rowan

package rowan

import (
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite pairs a decoded source image with the name it will be looked up
// by once packed.
type Sprite struct {
	Name  string
	Image image.Image
}

// SpriteSheet is an Atlas with name-based region lookup, for callers that
// pack many sprites and address them by name instead of input index.
type SpriteSheet struct {
	atlas *Atlas
	index map[string]int
}

// PackSprites packs the sprites' images into one atlas page, in input
// order, and indexes their placements by name. Duplicate names fail before
// any packing work is done.
func PackSprites(sprites []Sprite) (*SpriteSheet, error) {
	return PackSpritesOn(nil, sprites)
}

// PackSpritesOn is PackSprites on an explicit GPUContext. A nil gpu uses
// the stock Ebitengine-backed context.
func PackSpritesOn(gpu GPUContext, sprites []Sprite) (*SpriteSheet, error) {
	index := make(map[string]int, len(sprites))
	images := make([]image.Image, len(sprites))
	for i, s := range sprites {
		if _, dup := index[s.Name]; dup {
			return nil, fmt.Errorf("rowan: duplicate sprite name %q", s.Name)
		}
		index[s.Name] = i
		images[i] = s.Image
	}

	atlas, err := PackImagesOn(gpu, images)
	if err != nil {
		return nil, err
	}
	return &SpriteSheet{atlas: atlas, index: index}, nil
}

// Atlas returns the underlying packed atlas page.
func (s *SpriteSheet) Atlas() *Atlas {
	return s.atlas
}

// Region returns the placement for the named sprite. If the name doesn't
// exist, it logs a warning (debug stderr) and returns a zero Placement.
func (s *SpriteSheet) Region(name string) Placement {
	if i, ok := s.index[name]; ok {
		return s.atlas.Placement(i)
	}
	if globalDebug {
		log.Printf("rowan: sprite %q not found in sheet", name)
	}
	return Placement{}
}

// Lookup returns the placement for the named sprite and whether it exists.
func (s *SpriteSheet) Lookup(name string) (Placement, bool) {
	i, ok := s.index[name]
	if !ok {
		return Placement{}, false
	}
	return s.atlas.Placement(i), true
}

// SubImage returns the atlas texture region for the named sprite, ready to
// hand to DrawImage, or nil if the name doesn't exist.
func (s *SpriteSheet) SubImage(name string) *ebiten.Image {
	i, ok := s.index[name]
	if !ok {
		if globalDebug {
			log.Printf("rowan: sprite %q not found in sheet", name)
		}
		return nil
	}
	return s.atlas.SubImage(i)
}

// Len returns the number of packed sprites.
func (s *SpriteSheet) Len() int {
	return s.atlas.Len()
}

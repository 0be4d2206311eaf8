package rowan

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"
	xdraw "golang.org/x/image/draw"
)

// GPUContext abstracts the two resource acquisitions atlas construction
// performs: an off-screen compose surface and the GPU texture upload.
// Injecting a context lets tests run headless and exercise both failure
// paths; production code uses the built-in Ebitengine-backed context.
type GPUContext interface {
	// NewSurface returns a writable RGBA surface of the given size, cleared
	// to fully transparent.
	NewSurface(width, height int) (draw.Image, error)

	// NewTexture uploads the composed pixels as a single 2D texture.
	NewTexture(src image.Image) (*ebiten.Image, error)
}

// ebitenContext is the stock GPUContext: CPU surfaces from the image
// package, textures from Ebitengine.
type ebitenContext struct{}

func (ebitenContext) NewSurface(width, height int) (draw.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height)), nil
}

// NewTexture converts the graphics layer's size panics into errors; texture
// creation may fail and must be reported, not assumed to succeed.
func (ebitenContext) NewTexture(src image.Image) (tex *ebiten.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			tex = nil
			err = fmt.Errorf("ebiten: %v", r)
		}
	}()
	return ebiten.NewImageFromImage(src), nil
}

// Atlas is a packed atlas page: one GPU texture plus the plan that placed
// every source image on it. Atlases are immutable after construction; the
// caller owns the texture and releases it with Dispose.
type Atlas struct {
	texture *ebiten.Image
	plan    AtlasPlan
}

// PackImages plans, composes, and uploads the given images as a single
// atlas page. Images are placed in input order; Plan().Placements[i] is
// where images[i] landed. Construction is all-or-nothing: a planning,
// surface, or upload failure returns a nil Atlas and the error, classified
// by ErrDimensionExceeded, ErrSurfaceUnavailable, or ErrTextureCreation.
//
// Packing no images succeeds with an empty plan and a nil texture: there is
// no zero-sized GPU texture to create.
func PackImages(images []image.Image) (*Atlas, error) {
	return PackImagesOn(nil, images)
}

// PackImagesOn is PackImages on an explicit GPUContext. A nil gpu uses the
// stock Ebitengine-backed context.
func PackImagesOn(gpu GPUContext, images []image.Image) (*Atlas, error) {
	if gpu == nil {
		gpu = ebitenContext{}
	}

	plan, err := PlanAtlas(sizesOf(images))
	if err != nil {
		return nil, err
	}
	if len(plan.Placements) == 0 {
		return &Atlas{plan: plan}, nil
	}

	surface, err := gpu.NewSurface(plan.Width, plan.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %dx%d: %v", ErrSurfaceUnavailable, plan.Width, plan.Height, err)
	}

	for i, img := range images {
		p := plan.Placements[i]
		xdraw.Copy(surface, image.Pt(p.X, p.Y), img, img.Bounds(), xdraw.Src, nil)
	}

	texture, err := gpu.NewTexture(surface)
	if err != nil {
		return nil, fmt.Errorf("%w: %dx%d: %v", ErrTextureCreation, plan.Width, plan.Height, err)
	}

	return &Atlas{texture: texture, plan: plan}, nil
}

// Texture returns the atlas page texture, or nil for an empty atlas.
func (a *Atlas) Texture() *ebiten.Image {
	return a.texture
}

// Plan returns the placement plan. The returned plan shares the atlas's
// Placements slice and MUST NOT be mutated.
func (a *Atlas) Plan() AtlasPlan {
	return a.plan
}

// Len returns the number of packed images.
func (a *Atlas) Len() int {
	return len(a.plan.Placements)
}

// Placement returns the placement of the i-th packed image. The index
// follows the input order given to PackImages.
func (a *Atlas) Placement(i int) Placement {
	return a.plan.Placements[i]
}

// SubImage returns the region of the atlas texture holding the i-th packed
// image, ready to hand to DrawImage.
func (a *Atlas) SubImage(i int) *ebiten.Image {
	return a.texture.SubImage(a.plan.Placements[i].Rect()).(*ebiten.Image)
}

// Dispose releases the atlas texture's GPU memory. The atlas must not be
// drawn from afterwards. Disposing an empty or already-disposed atlas is a
// no-op.
func (a *Atlas) Dispose() {
	if a.texture != nil {
		a.texture.Deallocate()
		a.texture = nil
	}
}

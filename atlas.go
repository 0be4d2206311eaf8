package rowan

import (
	"errors"
	"fmt"
	"image"
)

// MaxAtlasDimension is the hard per-axis limit for atlas surfaces, in pixels.
// 4096 is the smallest maximum texture size guaranteed by the GPU targets
// Ebitengine runs on; a plan that stays within it uploads everywhere.
const MaxAtlasDimension = 4096

// Atlas construction errors. Use errors.Is to classify a failure; the
// returned error carries the offending image index and dimensions.
var (
	// ErrDimensionExceeded is returned when an image, or the accumulating
	// atlas, exceeds MaxAtlasDimension in width or height.
	ErrDimensionExceeded = errors.New("rowan: atlas dimension exceeded")

	// ErrSurfaceUnavailable is returned when the compose surface for
	// rasterizing the plan cannot be acquired.
	ErrSurfaceUnavailable = errors.New("rowan: compose surface unavailable")

	// ErrTextureCreation is returned when the GPU texture for the composed
	// atlas cannot be created.
	ErrTextureCreation = errors.New("rowan: texture creation failed")
)

// Placement is the rectangle assigned to one packed image within the atlas
// surface. X and Y are the image's top-left corner; Width and Height equal
// the source image's dimensions. Value type — copy freely.
type Placement struct {
	X, Y          int
	Width, Height int
}

// Rect returns the placement as an image.Rectangle, ready for SubImage.
func (p Placement) Rect() image.Rectangle {
	return image.Rect(p.X, p.Y, p.X+p.Width, p.Y+p.Height)
}

// Overlaps reports whether p and other share any pixel.
func (p Placement) Overlaps(other Placement) bool {
	return p.X < other.X+other.Width && other.X < p.X+p.Width &&
		p.Y < other.Y+other.Height && other.Y < p.Y+p.Height
}

// AtlasPlan is the layout produced by PlanAtlas: the surface dimensions and
// one Placement per input image, in input order. Plans are built once and
// never modified; the Placements slice MUST NOT be mutated by callers.
type AtlasPlan struct {
	Width      int
	Height     int
	Placements []Placement
}

// PlanAtlas lays out the given image sizes (X = width, Y = height, both in
// pixels) on a single atlas surface using greedy shelf packing: images go
// left to right along the current row, and a row that cannot take the next
// image is closed and a new one started beneath it. The pass is a pure
// function of the input — same sizes in the same order always produce the
// same plan — and preserves input order in the returned Placements.
//
// Packing fails with ErrDimensionExceeded when any single image is wider
// than MaxAtlasDimension or when the rows already closed cannot fit the next
// image within MaxAtlasDimension of height. A failed plan is discarded
// entirely; there is no partial result.
//
// Zero sizes yield the empty plan {0, 0, nil}. Shelf packing makes no
// attempt to minimize waste: reordering the input changes the layout.
func PlanAtlas(sizes []image.Point) (AtlasPlan, error) {
	if len(sizes) == 0 {
		return AtlasPlan{}, nil
	}

	plan := AtlasPlan{Placements: make([]Placement, len(sizes))}

	// Walk state: the open row's cursor and tallest image so far.
	// plan.Height counts closed rows only until the final fold below.
	rowX := 0
	rowHeight := 0

	for i, sz := range sizes {
		if sz.X <= 0 || sz.Y <= 0 {
			return AtlasPlan{}, fmt.Errorf("rowan: image %d has non-positive size %dx%d", i, sz.X, sz.Y)
		}
		if sz.X > MaxAtlasDimension {
			return AtlasPlan{}, fmt.Errorf("rowan: image %d width %d exceeds %d: %w",
				i, sz.X, MaxAtlasDimension, ErrDimensionExceeded)
		}

		// Close the row first so the height check below runs against the
		// row origin this image actually lands on.
		if rowX+sz.X > MaxAtlasDimension {
			plan.Height += rowHeight
			rowX = 0
			rowHeight = 0
		}

		if plan.Height+sz.Y > MaxAtlasDimension {
			return AtlasPlan{}, fmt.Errorf("rowan: image %d (%dx%d) at row origin %d pushes atlas height past %d: %w",
				i, sz.X, sz.Y, plan.Height, MaxAtlasDimension, ErrDimensionExceeded)
		}

		plan.Placements[i] = Placement{X: rowX, Y: plan.Height, Width: sz.X, Height: sz.Y}

		rowX += sz.X
		if rowX > plan.Width {
			plan.Width = rowX
		}
		if sz.Y > rowHeight {
			rowHeight = sz.Y
		}
	}

	// Fold the open row in so Height covers every placement, bottom row
	// included.
	plan.Height += rowHeight

	return plan, nil
}

// sizesOf extracts the pixel dimensions of each image for planning.
func sizesOf(images []image.Image) []image.Point {
	sizes := make([]image.Point, len(images))
	for i, img := range images {
		if img == nil {
			continue // zero size, reported with its index by PlanAtlas
		}
		b := img.Bounds()
		sizes[i] = image.Pt(b.Dx(), b.Dy())
	}
	return sizes
}

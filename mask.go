package poissondisk

import (
	"fmt"
	"image"
	"math"

	"github.com/boljen/go-bitmap"
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"
)

// Mask is a Region2D read from an image: every pixel with a non zero
// alpha is inside.
// Pixel (x, y) (relative to the image bounds) covers the square from
// origin + (x, y) * cellSize to origin + (x+1, y+1) * cellSize.
// Handy for regions that aren't a nice shape (coastlines, painted areas etc).
type Mask struct {
	origin   model2d.Coord
	cellSize float64
	width    int
	height   int

	// one bit per pixel, row major
	bits bitmap.Bitmap
}

// NewMask builds a Mask from `img`.
func NewMask(img image.Image, origin model2d.Coord, cellSize float64) (*Mask, error) {
	if !(cellSize > 0) {
		return nil, errors.Wrapf(ErrInvalidRegion, "Mask needs a positive cell size, got %v", cellSize)
	}
	if img == nil {
		return nil, errors.Wrap(ErrInvalidRegion, "Mask needs an image")
	}

	bnds := img.Bounds()
	width, height := bnds.Dx(), bnds.Dy()
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidRegion, "Mask image is empty %v", bnds)
	}

	bits := bitmap.New(width * height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			_, _, _, a := img.At(bnds.Min.X+x, bnds.Min.Y+y).RGBA()
			if a > 0 {
				bits.Set(y*width+x, true)
			}
		}
	}

	return &Mask{origin: origin, cellSize: cellSize, width: width, height: height, bits: bits}, nil
}

// Contains returns if p falls in a set pixel
func (m *Mask) Contains(p model2d.Coord) bool {
	fx := (p.X - m.origin.X) / m.cellSize
	fy := (p.Y - m.origin.Y) / m.cellSize
	// nb. written so NaN is rejected too
	if !(fx >= 0 && fy >= 0 && fx < float64(m.width) && fy < float64(m.height)) {
		return false
	}
	x, y := int(math.Floor(fx)), int(math.Floor(fy))
	return m.bits.Get(y*m.width + x)
}

// Size returns the world space size covered by the mask image
func (m *Mask) Size() model2d.Coord {
	return model2d.Coord{X: float64(m.width) * m.cellSize, Y: float64(m.height) * m.cellSize}
}

// String describes the mask
func (m *Mask) String() string {
	set := 0
	for i := 0; i < m.width*m.height; i++ {
		if m.bits.Get(i) {
			set++
		}
	}
	return fmt.Sprintf(
		"Mask(origin %s | cell %v | pixels %dx%d | set %d)",
		fmtCoord2D(m.origin), m.cellSize, m.width, m.height, set,
	)
}

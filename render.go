package poissondisk

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"
	"golang.org/x/image/colornames"

	"github.com/voidshard/poissondisk/internal/voronoi"
)

// ColourScheme defines how a rendered sample set should be coloured.
type ColourScheme struct {
	Background color.Color
	Points     color.Color
	Start      color.Color // the first point (start position)
	Cells      color.Color // voronoi cell edges, if drawn
}

// DefaultScheme returns a reasonable default ColourScheme.
func DefaultScheme() *ColourScheme {
	return &ColourScheme{
		Background: colornames.White,
		Points:     colornames.Black,
		Start:      colornames.Crimson,
		Cells:      colornames.Lightsteelblue,
	}
}

// RenderOptions configures Render.
// All fields are optional.
type RenderOptions struct {
	// Width & Height of the output image in pixels (default 512x512)
	Width, Height int

	// Min & Max corners of the area (in point space) to draw.
	// If both are zero the bounds of the points plus some padding is used.
	Min, Max model2d.Coord

	// Radius of each point in pixels (default 3)
	PointRadius float64

	// Cells draws the voronoi cell of each point behind the points
	Cells bool

	// Scheme colours, DefaultScheme() if not set
	Scheme *ColourScheme
}

// withDefaults returns a copy of the options with unset values filled in
func (o *RenderOptions) withDefaults(points Points2D) (*RenderOptions, error) {
	out := &RenderOptions{}
	if o != nil {
		*out = *o
	}
	if out.Width <= 0 {
		out.Width = 512
	}
	if out.Height <= 0 {
		out.Height = 512
	}
	if out.PointRadius <= 0 {
		out.PointRadius = 3
	}
	if out.Scheme == nil {
		out.Scheme = DefaultScheme()
	}
	if out.Min == (model2d.Coord{}) && out.Max == (model2d.Coord{}) {
		lo, hi, err := points.Bounds()
		if err != nil {
			return nil, err
		}
		pad := hi.Sub(lo).Scale(0.05)
		if pad.X == 0 && pad.Y == 0 {
			pad = model2d.Coord{X: 1, Y: 1}
		}
		out.Min = lo.Sub(pad)
		out.Max = hi.Add(pad)
	}
	if !(out.Max.X > out.Min.X && out.Max.Y > out.Min.Y) {
		return nil, errors.Errorf("render area has no size: %s-%s", fmtCoord2D(out.Min), fmtCoord2D(out.Max))
	}
	return out, nil
}

// Render draws the points to an image.
// Point space is mapped so that Min is the bottom left & Max the top right
// of the image.
func Render(points Points2D, opts *RenderOptions) (image.Image, error) {
	ctx, err := renderContext(points, opts)
	if err != nil {
		return nil, err
	}
	return ctx.Image(), nil
}

// SavePNG renders the points (see Render) & writes a PNG to the given path.
func SavePNG(fpath string, points Points2D, opts *RenderOptions) error {
	ctx, err := renderContext(points, opts)
	if err != nil {
		return err
	}
	return ctx.SavePNG(fpath)
}

// renderContext does the drawing for Render & SavePNG
func renderContext(points Points2D, in *RenderOptions) (*gg.Context, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	opts, err := in.withDefaults(points)
	if err != nil {
		return nil, err
	}

	ctx := gg.NewContext(opts.Width, opts.Height)
	ctx.SetColor(opts.Scheme.Background)
	ctx.Clear()

	sx := float64(opts.Width) / (opts.Max.X - opts.Min.X)
	sy := float64(opts.Height) / (opts.Max.Y - opts.Min.Y)
	toPixel := func(c model2d.Coord) (float64, float64) {
		// image y runs top to bottom
		return (c.X - opts.Min.X) * sx, float64(opts.Height) - (c.Y-opts.Min.Y)*sy
	}

	if opts.Cells {
		ctx.SetColor(opts.Scheme.Cells)
		ctx.SetLineWidth(1)
		area, err := NewRectangle(opts.Min, opts.Max.Sub(opts.Min))
		if err != nil {
			return nil, err
		}
		// cells are only computed for sites within the drawn area
		sites := []model2d.Coord{}
		for _, p := range points {
			if area.Contains(p) {
				sites = append(sites, p)
			}
		}
		for _, seg := range voronoi.Cells(opts.Min, opts.Max, sites).Segments() {
			ax, ay := toPixel(seg[0])
			bx, by := toPixel(seg[1])
			ctx.DrawLine(ax, ay, bx, by)
			ctx.Stroke()
		}
	}

	ctx.SetColor(opts.Scheme.Points)
	for _, p := range points[1:] {
		x, y := toPixel(p)
		ctx.DrawCircle(x, y, opts.PointRadius)
		ctx.Fill()
	}

	// start position goes on top
	x, y := toPixel(points[0])
	ctx.SetColor(opts.Scheme.Start)
	ctx.DrawCircle(x, y, opts.PointRadius*1.5)
	ctx.Fill()

	return ctx, nil
}

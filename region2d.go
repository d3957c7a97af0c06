package poissondisk

import (
	"fmt"

	"github.com/golang/geo/r1"
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"

	"github.com/voidshard/poissondisk/internal/polygon"
)

// Rectangle is an axis aligned Region2D given by it's bottom left corner
// & size. Edges count as inside.
type Rectangle struct {
	origin model2d.Coord
	size   model2d.Coord

	// offsets from origin that are inside, per axis
	x, y r1.Interval
}

// NewRectangle returns a Rectangle from `origin` spanning `size`.
// Both size components must be >= 0.
func NewRectangle(origin, size model2d.Coord) (*Rectangle, error) {
	if !(size.X >= 0 && size.Y >= 0) {
		return nil, errors.Wrapf(ErrInvalidRegion, "Rectangle needs a positive size, got %s", fmtCoord2D(size))
	}
	return &Rectangle{
		origin: origin,
		size:   size,
		x:      r1.Interval{Lo: 0, Hi: size.X},
		y:      r1.Interval{Lo: 0, Hi: size.Y},
	}, nil
}

// NewBounds2D returns a Rectangle from (0, 0) spanning `size`.
func NewBounds2D(size model2d.Coord) (*Rectangle, error) {
	return NewRectangle(model2d.Coord{}, size)
}

// Contains returns if p is within the rectangle
func (r *Rectangle) Contains(p model2d.Coord) bool {
	offset := p.Sub(r.origin)
	return r.x.Contains(offset.X) && r.y.Contains(offset.Y)
}

// String describes the rectangle
func (r *Rectangle) String() string {
	return fmt.Sprintf("Rectangle(origin %s | size %s)", fmtCoord2D(r.origin), fmtCoord2D(r.size))
}

// Circle is a Region2D of all points within radius of center.
type Circle struct {
	center model2d.Coord
	radius float64
}

// NewCircle returns a Circle, radius must be >= 0.
func NewCircle(center model2d.Coord, radius float64) (*Circle, error) {
	if !(radius >= 0) {
		return nil, errors.Wrapf(ErrInvalidRegion, "Circle needs a positive radius, got %v", radius)
	}
	return &Circle{center: center, radius: radius}, nil
}

// Contains returns if p is within (or on) the circle
func (c *Circle) Contains(p model2d.Coord) bool {
	return p.Sub(c.center).Norm() <= c.radius
}

// String describes the circle
func (c *Circle) String() string {
	return fmt.Sprintf("Circle(center %s | radius %v)", fmtCoord2D(c.center), c.radius)
}

// Polygon is a Region2D bounded by a closed ring of vertices.
// The shape need not be convex. Points exactly on an edge may or may not be
// considered inside.
type Polygon struct {
	poly *polygon.Polygon
}

// NewPolygon returns a Polygon, we need at least three vertices.
// The last vertex is joined back to the first.
func NewPolygon(vertices ...model2d.Coord) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, errors.Wrapf(ErrInvalidRegion, "Polygon needs at least 3 vertices, got %d", len(vertices))
	}
	cp := make([]model2d.Coord, len(vertices))
	copy(cp, vertices)
	return &Polygon{poly: polygon.New(cp)}, nil
}

// Contains returns if p is inside the polygon
func (p *Polygon) Contains(pnt model2d.Coord) bool {
	return p.poly.Contains(pnt)
}

// String describes the polygon
func (p *Polygon) String() string {
	lo, hi := p.poly.Bounds()
	return fmt.Sprintf("Polygon(vertices %d | bounds %s-%s)", len(p.poly.Points), fmtCoord2D(lo), fmtCoord2D(hi))
}

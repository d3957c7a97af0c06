package poissondisk

import (
	"fmt"

	"github.com/golang/geo/r1"
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// Cube is an axis aligned box Region3D given by it's left-bottom-front
// corner & size. Faces count as inside.
type Cube struct {
	origin model3d.Coord3D
	size   model3d.Coord3D

	x, y, z r1.Interval
}

// NewCube returns a Cube from `origin` spanning `size`.
// All size components must be >= 0.
func NewCube(origin, size model3d.Coord3D) (*Cube, error) {
	if !(size.X >= 0 && size.Y >= 0 && size.Z >= 0) {
		return nil, errors.Wrapf(ErrInvalidRegion, "Cube needs a positive size, got %s", fmtCoord3D(size))
	}
	return &Cube{
		origin: origin,
		size:   size,
		x:      r1.Interval{Lo: 0, Hi: size.X},
		y:      r1.Interval{Lo: 0, Hi: size.Y},
		z:      r1.Interval{Lo: 0, Hi: size.Z},
	}, nil
}

// NewBounds3D returns a Cube from (0, 0, 0) spanning `size`.
func NewBounds3D(size model3d.Coord3D) (*Cube, error) {
	return NewCube(model3d.Coord3D{}, size)
}

// Contains returns if p is within the cube
func (c *Cube) Contains(p model3d.Coord3D) bool {
	offset := p.Sub(c.origin)
	return c.x.Contains(offset.X) && c.y.Contains(offset.Y) && c.z.Contains(offset.Z)
}

// String describes the cube
func (c *Cube) String() string {
	return fmt.Sprintf("Cube(origin %s | size %s)", fmtCoord3D(c.origin), fmtCoord3D(c.size))
}

// Sphere is a Region3D of all points within radius of center.
type Sphere struct {
	center model3d.Coord3D
	radius float64
}

// NewSphere returns a Sphere, radius must be >= 0.
func NewSphere(center model3d.Coord3D, radius float64) (*Sphere, error) {
	if !(radius >= 0) {
		return nil, errors.Wrapf(ErrInvalidRegion, "Sphere needs a positive radius, got %v", radius)
	}
	return &Sphere{center: center, radius: radius}, nil
}

// Contains returns if p is within (or on) the sphere
func (s *Sphere) Contains(p model3d.Coord3D) bool {
	return p.Sub(s.center).Norm() <= s.radius
}

// String describes the sphere
func (s *Sphere) String() string {
	return fmt.Sprintf("Sphere(center %s | radius %v)", fmtCoord3D(s.center), s.radius)
}

package polygon

import (
	"math"

	"github.com/unixpickle/model3d/model2d"
)

// Based on https://github.com/kellydunn/golang-geo/blob/master/polygon.go

// A Polygon is carved out of a 2D plane by a set of points.
// It can contain holes (via a seam back to the outer ring), and can be self-intersecting.
type Polygon struct {
	Points []model2d.Coord
}

// New creates and returns a new Polygon composed of the passed in Points.
// Points are considered to be in order such that the last point
// forms an edge with the first point.
func New(points []model2d.Coord) *Polygon {
	return &Polygon{Points: points}
}

// Bounds returns the lowest & highest x & y values from the Points in this polygon.
func (p *Polygon) Bounds() (model2d.Coord, model2d.Coord) {
	if len(p.Points) == 0 {
		return model2d.Coord{}, model2d.Coord{}
	}

	lo := p.Points[0]
	hi := p.Points[0]
	for _, pnt := range p.Points[1:] {
		lo.X = math.Min(lo.X, pnt.X)
		lo.Y = math.Min(lo.Y, pnt.Y)
		hi.X = math.Max(hi.X, pnt.X)
		hi.Y = math.Max(hi.Y, pnt.Y)
	}

	return lo, hi
}

// IsClosed returns whether or not the polygon is closed.
func (p *Polygon) IsClosed() bool {
	return len(p.Points) >= 3
}

// Contains returns whether or not the current Polygon contains the passed in Point.
// Nb. points exactly on an edge may land either way.
func (p *Polygon) Contains(point model2d.Coord) bool {
	if !p.IsClosed() {
		return false
	}

	start := len(p.Points) - 1
	end := 0

	contains := p.intersectsWithRaycast(point, p.Points[start], p.Points[end])

	for i := 1; i < len(p.Points); i++ {
		if p.intersectsWithRaycast(point, p.Points[i-1], p.Points[i]) {
			contains = !contains
		}
	}

	return contains
}

// Using the raycast algorithm, this returns whether or not the passed in point
// intersects with the edge drawn by the passed in start and end Points.
// Original implementation: http://rosettacode.org/wiki/Ray-casting_algorithm#Go
func (p *Polygon) intersectsWithRaycast(point, start, end model2d.Coord) bool {
	// Always ensure that the the first point
	// has a y coordinate that is less than the second point
	if start.Y > end.Y {
		start, end = end, start
	}

	// Move the point's y coordinate off of the edge end points
	// so the ray can't clip a vertex
	for point.Y == start.Y || point.Y == end.Y {
		point.Y = math.Nextafter(point.Y, math.Inf(1))
	}

	// If we are outside of the polygon, indicate so.
	if point.Y < start.Y || point.Y > end.Y {
		return false
	}

	if start.X > end.X {
		if point.X > start.X {
			return false
		}
		if point.X < end.X {
			return true
		}
	} else {
		if point.X > end.X {
			return false
		}
		if point.X < start.X {
			return true
		}
	}

	raySlope := (point.Y - start.Y) / (point.X - start.X)
	diagSlope := (end.Y - start.Y) / (end.X - start.X)

	return raySlope >= diagSlope
}

package poissondisk

import (
	"encoding/json"
	"io/ioutil"
	"math"

	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
)

// Points2D is an ordered set of 2D points as returned by Sampler2D.
// Index 0 is the start position, the rest are in the order they were placed.
type Points2D []model2d.Coord

// Points3D is an ordered set of 3D points as returned by Sampler3D.
type Points3D []model3d.Coord3D

// JSON returns the points as json.
func (p Points2D) JSON() ([]byte, error) {
	return json.Marshal(p)
}

// SaveJSON writes a json file to the given path.
func (p Points2D) SaveJSON(fpath string) error {
	data, err := p.JSON()
	if err != nil {
		return err
	}
	return ioutil.WriteFile(fpath, data, 0644)
}

// Bounds returns the lowest & highest x & y values of the points.
func (p Points2D) Bounds() (model2d.Coord, model2d.Coord, error) {
	if len(p) == 0 {
		return model2d.Coord{}, model2d.Coord{}, ErrNoPoints
	}
	lo, hi := p[0], p[0]
	for _, c := range p[1:] {
		lo.X = math.Min(lo.X, c.X)
		lo.Y = math.Min(lo.Y, c.Y)
		hi.X = math.Max(hi.X, c.X)
		hi.Y = math.Max(hi.Y, c.Y)
	}
	return lo, hi, nil
}

// MinSpacing returns the smallest distance between any two points, or
// +Inf if there are less than two.
func (p Points2D) MinSpacing() float64 {
	least := math.Inf(1)
	for i := range p {
		for j := i + 1; j < len(p); j++ {
			least = math.Min(least, p[i].Dist(p[j]))
		}
	}
	return least
}

// JSON returns the points as json.
func (p Points3D) JSON() ([]byte, error) {
	return json.Marshal(p)
}

// SaveJSON writes a json file to the given path.
func (p Points3D) SaveJSON(fpath string) error {
	data, err := p.JSON()
	if err != nil {
		return err
	}
	return ioutil.WriteFile(fpath, data, 0644)
}

// Bounds returns the lowest & highest x, y & z values of the points.
func (p Points3D) Bounds() (model3d.Coord3D, model3d.Coord3D, error) {
	if len(p) == 0 {
		return model3d.Coord3D{}, model3d.Coord3D{}, ErrNoPoints
	}
	lo, hi := p[0], p[0]
	for _, c := range p[1:] {
		lo.X = math.Min(lo.X, c.X)
		lo.Y = math.Min(lo.Y, c.Y)
		lo.Z = math.Min(lo.Z, c.Z)
		hi.X = math.Max(hi.X, c.X)
		hi.Y = math.Max(hi.Y, c.Y)
		hi.Z = math.Max(hi.Z, c.Z)
	}
	return lo, hi, nil
}

// MinSpacing returns the smallest distance between any two points, or
// +Inf if there are less than two.
func (p Points3D) MinSpacing() float64 {
	least := math.Inf(1)
	for i := range p {
		for j := i + 1; j < len(p); j++ {
			least = math.Min(least, p[i].Dist(p[j]))
		}
	}
	return least
}

// Flatten drops Z, projecting the points onto the XY plane.
// Useful for Render.
func (p Points3D) Flatten() Points2D {
	out := make(Points2D, len(p))
	for i, c := range p {
		out[i] = model2d.Coord{X: c.X, Y: c.Y}
	}
	return out
}

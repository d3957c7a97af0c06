package voronoi

import (
	"github.com/unixpickle/model3d/model2d"
)

// based on
// https://github.com/unixpickle/voronoi-glass/blob/main/voronoi.go

// Cell is the area closer to Center than to any other site.
type Cell struct {
	Center model2d.Coord
	Edges  []*model2d.Segment
}

// Diagram is a set of cells, one per distinct site.
type Diagram []*Cell

// Cells computes the voronoi cells for a list of sites, clipped to the
// box from min to max.
// Duplicate sites are merged (they'd have no area of their own anyway).
//
// This is O(n^2) in the number of sites, fine for drawing a few thousand.
func Cells(min, max model2d.Coord, sites []model2d.Coord) Diagram {
	coords := unique(sites)

	cells := make(Diagram, len(coords))
	for i, c := range coords {
		constraints := model2d.NewConvexPolytopeRect(min, max)
		for _, c1 := range coords {
			if c == c1 {
				continue
			}
			mp := c.Mid(c1)
			normal := c1.Sub(c).Normalize()
			constraints = append(constraints, &model2d.LinearConstraint{
				Normal: normal,
				Max:    normal.Dot(mp),
			})
		}
		cells[i] = &Cell{
			Center: c,
			Edges:  constraints.Mesh().SegmentSlice(),
		}
	}
	return cells
}

// Segments returns every edge of every cell.
// Edges shared by two cells are returned twice.
func (d Diagram) Segments() []*model2d.Segment {
	out := []*model2d.Segment{}
	for _, cell := range d {
		out = append(out, cell.Edges...)
	}
	return out
}

// unique returns coords without duplicates, keeping first seen order
func unique(coords []model2d.Coord) []model2d.Coord {
	seen := map[model2d.Coord]bool{}
	out := make([]model2d.Coord, 0, len(coords))
	for _, c := range coords {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

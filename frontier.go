package poissondisk

import (
	"github.com/unixpickle/essentials"
)

// frontier holds indexes of placed points that may still have room
// around them for new points.
// Relative order is kept on removal so that a given seed always picks
// the same pivots.
type frontier struct {
	open []int
}

// newFrontier returns an empty frontier with room for `size` indexes
func newFrontier(size int) *frontier {
	return &frontier{open: make([]int, 0, size)}
}

// push adds the index of a newly accepted point
func (f *frontier) push(index int) {
	f.open = append(f.open, index)
}

// empty is true if there is nothing left to grow from
func (f *frontier) empty() bool {
	return len(f.open) == 0
}

// len returns the number of open indexes
func (f *frontier) len() int {
	return len(f.open)
}

// pick chooses an open entry at random, returning both its slot in the
// frontier (for drop) & the point index it holds.
// Exactly one Intn draw is made.
func (f *frontier) pick(rng Rand) (int, int) {
	slot := rng.Intn(len(f.open))
	return slot, f.open[slot]
}

// drop removes the entry at `slot` for good
func (f *frontier) drop(slot int) {
	essentials.OrderedDelete(&f.open, slot)
}

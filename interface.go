package poissondisk

import (
	"fmt"

	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
)

// Region2D tells the sampler where points are allowed to go.
// We only have one question: is this point inside?
// The String() form should name the shape & the values that define it,
// it's used in error messages.
type Region2D interface {
	// true if the point is inside (or on the edge of) the region
	Contains(p model2d.Coord) bool

	fmt.Stringer
}

// Region3D is the 3D equivalent of Region2D.
type Region3D interface {
	// true if the point is inside (or on the edge of) the region
	Contains(p model3d.Coord3D) bool

	fmt.Stringer
}

// Rand is the random source a sampler draws from.
// *rand.Rand (math/rand) satisfies this.
//
// The sampler only asks for
// - uniform floats in [0, 1)
// - uniform ints in [0, n)
// and the order of these calls is fixed, so a seeded source always gives
// the same points back.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Validator2D checks parameters before a 2D sampler touches them.
// Any error returned is handed back to the caller of Sample untouched.
type Validator2D interface {
	Validate(p *Parameters2D) error
}

// Validator3D checks parameters before a 3D sampler touches them.
type Validator3D interface {
	Validate(p *Parameters3D) error
}

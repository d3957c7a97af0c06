package poissondisk

import (
	"math/rand"
	"time"

	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
)

// DefaultMaxRetries is the retry budget used when Config.MaxRetries is unset.
const DefaultMaxRetries = 30

// Config holds settings that outlive a single Sample call.
// Two samplers built from the same Config (with a non zero Seed) produce
// the same points for the same Parameters.
type Config struct {
	// Seed for rng (random number chosen if not set)
	Seed int64

	// MaxRetries is how many candidates we try around a single point before
	// giving up on it. DefaultMaxRetries is used if 0.
	MaxRetries int
}

// rng returns a seeded random source, picking a seed from the clock if the
// Config doesn't give one. The chosen seed is written back so callers can
// reproduce the run.
func (c *Config) rng() *rand.Rand {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(c.Seed))
}

// retries returns MaxRetries, or the default if unset.
func (c *Config) retries() int {
	if c.MaxRetries == 0 {
		return DefaultMaxRetries
	}
	return c.MaxRetries
}

// Parameters2D describes a single 2D Sample call.
// The sampler only ever reads these.
type Parameters2D struct {
	// Amount of points wanted, required (> 0)
	Amount int

	// MinDistance every pair of points must be apart (>= 0).
	// Also the exact distance new points are placed from the point
	// they grow from.
	MinDistance float64

	// Region all points must be inside, required
	Region Region2D

	// StartPosition is always the first point. Must be inside Region.
	StartPosition model2d.Coord
}

// Parameters3D describes a single 3D Sample call.
// See Parameters2D.
type Parameters3D struct {
	Amount        int
	MinDistance   float64
	Region        Region3D
	StartPosition model3d.Coord3D
}

package poissondisk

import (
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"
)

// spacingTolerance absorbs floating point error when a candidate sits
// right on the min distance of an existing point.
const spacingTolerance = 0.0001

// Sampler2D places points in 2D such that they're all at least some
// min distance apart & inside a region, growing outward from a start
// position.
//
// A sampler only holds its random source, retry budget & validator; each
// Sample call works on its own state. Since the random source is shared
// between calls a Sampler2D must not be used from multiple goroutines at once.
type Sampler2D struct {
	rng        Rand
	maxRetries int
	validator  Validator2D
}

// NewSampler2D returns a new 2D sampler.
// maxRetries is the number of candidates tried around a single point
// before that point is given up on, it must be > 0.
// If `v` is nil DefaultValidator2D is used.
func NewSampler2D(rng Rand, maxRetries int, v Validator2D) (*Sampler2D, error) {
	if maxRetries <= 0 {
		return nil, errors.Wrapf(ErrInvalidRetryBudget, "got %d", maxRetries)
	}
	if rng == nil {
		return nil, ErrInvalidRandomSource
	}
	if v == nil {
		v = DefaultValidator2D{}
	}
	return &Sampler2D{rng: rng, maxRetries: maxRetries, validator: v}, nil
}

// NewSampler2DFromConfig returns a sampler seeded & configured from `cfg`.
// A nil cfg is treated as the zero Config.
func NewSampler2DFromConfig(cfg *Config) (*Sampler2D, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	return NewSampler2D(cfg.rng(), cfg.retries(), nil)
}

// Sample returns exactly p.Amount points, the first of which is always
// p.StartPosition, or an error.
// Parameters are validated first & validation errors are returned as is.
// If we run out of points to grow from ErrSamplingExhausted is returned.
func (s *Sampler2D) Sample(p *Parameters2D) (Points2D, error) {
	err := s.validator.Validate(p)
	if err != nil {
		return nil, err
	}

	r := &run2D{
		rng:         s.rng,
		maxRetries:  s.maxRetries,
		region:      p.Region,
		minDistance: p.MinDistance,
		amount:      p.Amount,
		start:       p.StartPosition,
		points:      make(Points2D, 0, p.Amount),
		open:        newFrontier(p.Amount),
	}

	for len(r.points) < r.amount {
		pnt, err := r.next()
		if err != nil {
			return nil, err
		}
		r.open.push(len(r.points))
		r.points = append(r.points, pnt)
	}

	return r.points, nil
}

// run2D is the working state of a single Sample call
type run2D struct {
	rng        Rand
	maxRetries int

	region      Region2D
	minDistance float64
	amount      int
	start       model2d.Coord

	points Points2D
	open   *frontier
}

// next produces the next point to place.
// The first point is always the start position. After that we pick a random
// open point & try up to maxRetries candidates around it; if none fit the
// point is closed & we pick again until nothing is left open.
func (r *run2D) next() (model2d.Coord, error) {
	if len(r.points) == 0 {
		return r.start, nil
	}

	for !r.open.empty() {
		slot, index := r.open.pick(r.rng)
		pivot := r.points[index]

		for i := 0; i < r.maxRetries; i++ {
			candidate := r.around(pivot)
			if r.accepted(candidate) {
				return candidate, nil
			}
		}

		r.open.drop(slot)
	}

	return model2d.Coord{}, errors.Wrapf(
		ErrSamplingExhausted, "placed %d of %d points in %s", len(r.points), r.amount, r.region,
	)
}

// around returns a point exactly minDistance from `pivot` in a random direction
func (r *run2D) around(pivot model2d.Coord) model2d.Coord {
	theta := r.rng.Float64() * 2 * math.Pi
	dir := model2d.Coord{X: math.Cos(theta), Y: math.Sin(theta)}
	return dir.Scale(r.minDistance).Add(pivot)
}

// accepted returns if `candidate` is inside the region & far enough from
// every point placed so far.
// We check the region first since it's (usually) cheaper than the scan.
func (r *run2D) accepted(candidate model2d.Coord) bool {
	if !r.region.Contains(candidate) {
		return false
	}
	for _, pnt := range r.points {
		if pnt.Dist(candidate)+spacingTolerance < r.minDistance {
			return false
		}
	}
	return true
}

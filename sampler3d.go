package poissondisk

import (
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// Sampler3D is the 3D version of Sampler2D, the algorithm is identical
// except for how random directions are made.
// Must not be used from multiple goroutines at once.
type Sampler3D struct {
	rng        Rand
	maxRetries int
	validator  Validator3D
}

// NewSampler3D returns a new 3D sampler, see NewSampler2D.
func NewSampler3D(rng Rand, maxRetries int, v Validator3D) (*Sampler3D, error) {
	if maxRetries <= 0 {
		return nil, errors.Wrapf(ErrInvalidRetryBudget, "got %d", maxRetries)
	}
	if rng == nil {
		return nil, ErrInvalidRandomSource
	}
	if v == nil {
		v = DefaultValidator3D{}
	}
	return &Sampler3D{rng: rng, maxRetries: maxRetries, validator: v}, nil
}

// NewSampler3DFromConfig returns a sampler seeded & configured from `cfg`.
// A nil cfg is treated as the zero Config.
func NewSampler3DFromConfig(cfg *Config) (*Sampler3D, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	return NewSampler3D(cfg.rng(), cfg.retries(), nil)
}

// Sample returns exactly p.Amount points starting with p.StartPosition,
// or an error. See Sampler2D.Sample.
func (s *Sampler3D) Sample(p *Parameters3D) (Points3D, error) {
	err := s.validator.Validate(p)
	if err != nil {
		return nil, err
	}

	r := &run3D{
		rng:         s.rng,
		maxRetries:  s.maxRetries,
		region:      p.Region,
		minDistance: p.MinDistance,
		amount:      p.Amount,
		start:       p.StartPosition,
		points:      make(Points3D, 0, p.Amount),
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

// run3D is the working state of a single Sample call
type run3D struct {
	rng        Rand
	maxRetries int

	region      Region3D
	minDistance float64
	amount      int
	start       model3d.Coord3D

	points Points3D
	open   *frontier
}

// next produces the next point to place, see run2D.next
func (r *run3D) next() (model3d.Coord3D, error) {
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

	return model3d.Coord3D{}, errors.Wrapf(
		ErrSamplingExhausted, "placed %d of %d points in %s", len(r.points), r.amount, r.region,
	)
}

// around returns a point exactly minDistance from `pivot` in a random direction.
// Two draws are made: latitude first, then longitude.
func (r *run3D) around(pivot model3d.Coord3D) model3d.Coord3D {
	lat := r.rng.Float64()*2*math.Pi - math.Pi
	lon := math.Acos(2*r.rng.Float64() - 1)
	dir := model3d.XYZ(
		math.Cos(lat)*math.Cos(lon),
		math.Cos(lat)*math.Sin(lon),
		math.Sin(lat),
	)
	return dir.Scale(r.minDistance).Add(pivot)
}

// accepted returns if `candidate` is inside the region & far enough from
// every point placed so far.
func (r *run3D) accepted(candidate model3d.Coord3D) bool {
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

package poissondisk

import (
	"math"

	"github.com/pkg/errors"
)

// DefaultValidator2D satisfies Validator2D using Validate2D.
type DefaultValidator2D struct{}

// Validate see Validate2D
func (DefaultValidator2D) Validate(p *Parameters2D) error {
	return Validate2D(p)
}

// DefaultValidator3D satisfies Validator3D using Validate3D.
type DefaultValidator3D struct{}

// Validate see Validate3D
func (DefaultValidator3D) Validate(p *Parameters3D) error {
	return Validate3D(p)
}

// Validate2D checks, in order, that
// - Amount > 0
// - MinDistance >= 0
// - Region is set & contains StartPosition
// and returns an error for the first check that fails.
//
// Region values themselves (negative sizes etc) are checked when the
// region is built, not here.
func Validate2D(p *Parameters2D) error {
	if p == nil {
		return errors.Wrap(ErrInvalidAmount, "no parameters given")
	}
	if err := validateAmount(p.Amount); err != nil {
		return err
	}
	if err := validateMinDistance(p.MinDistance); err != nil {
		return err
	}
	if p.Region == nil {
		return errors.Wrap(ErrInvalidRegion, "no region given")
	}
	if !p.Region.Contains(p.StartPosition) {
		return errors.Wrapf(ErrInvalidStartPosition, "%v outside of %s", p.StartPosition, p.Region)
	}
	return nil
}

// Validate3D is the 3D version of Validate2D.
func Validate3D(p *Parameters3D) error {
	if p == nil {
		return errors.Wrap(ErrInvalidAmount, "no parameters given")
	}
	if err := validateAmount(p.Amount); err != nil {
		return err
	}
	if err := validateMinDistance(p.MinDistance); err != nil {
		return err
	}
	if p.Region == nil {
		return errors.Wrap(ErrInvalidRegion, "no region given")
	}
	if !p.Region.Contains(p.StartPosition) {
		return errors.Wrapf(ErrInvalidStartPosition, "%v outside of %s", p.StartPosition, p.Region)
	}
	return nil
}

func validateAmount(amount int) error {
	if amount <= 0 {
		return errors.Wrapf(ErrInvalidAmount, "got %d", amount)
	}
	return nil
}

func validateMinDistance(dist float64) error {
	if dist < 0 || math.IsNaN(dist) {
		return errors.Wrapf(ErrInvalidMinDistance, "got %v", dist)
	}
	return nil
}

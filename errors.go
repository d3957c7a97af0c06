package poissondisk

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidRetryBudget is returned when building a sampler with a retry
	// budget of zero or less.
	ErrInvalidRetryBudget = errors.New("please provide a valid amount of sampling retries (> 0)")

	// ErrInvalidRandomSource is returned when building a sampler without a
	// random source.
	ErrInvalidRandomSource = errors.New("please provide a random source")

	// ErrInvalidAmount implies the requested number of points was zero or less.
	ErrInvalidAmount = errors.New("amount must be greater than 0")

	// ErrInvalidMinDistance implies a negative min distance was requested.
	ErrInvalidMinDistance = errors.New("min distance must not be negative")

	// ErrInvalidStartPosition implies the start position sits outside of the region.
	ErrInvalidStartPosition = errors.New("start position is not inside the region")

	// ErrInvalidRegion implies a region was missing or built with invalid
	// values (negative size, radius etc).
	ErrInvalidRegion = errors.New("please provide a region with valid values")

	// ErrSamplingExhausted implies we ran out of points to grow from before
	// placing the full amount.
	ErrSamplingExhausted = errors.New("sampling failed: increase the amount of retries, " +
		"increase the size of the region or decrease the amount / min distance")

	// ErrNoPoints is returned by operations that need at least one point.
	ErrNoPoints = errors.New("no points given")
)

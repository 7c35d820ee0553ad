package random

import "errors"

var (
	// ErrInvalidDistribution is returned when a weight table is empty, has a
	// negative or non-finite weight, or sums to zero.
	ErrInvalidDistribution = errors.New("invalid weight distribution")

	// ErrEmptyList is returned when picking from an empty list.
	ErrEmptyList = errors.New("cannot pick from an empty list")
)

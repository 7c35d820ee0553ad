package useragent

import (
	"errors"

	"github.com/dmitrymomot/uagen/pkg/random"
)

var (
	// ErrInvalidDistribution is returned when a distribution table is empty or sums to zero.
	ErrInvalidDistribution = random.ErrInvalidDistribution
	ErrUnknownBrowser      = errors.New("unknown browser")
	ErrUnknownOS           = errors.New("unknown operating system")
	// ErrUnsupportedVersionKind marks a version kind outside the closed set.
	ErrUnsupportedVersionKind = errors.New("unsupported version kind")
	ErrMalformedTables        = errors.New("malformed distribution tables")
	// ErrNoTemplate marks a browser/OS pair the composer renders as "".
	ErrNoTemplate = errors.New("no user agent template")
)

package championship

import (
	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned when a lookup finds nothing, e.g. the points of a competitor who has no
	// entry in an event.
	ErrNotFound = errors.New("championship: not found")

	// ErrEmptyInput is returned by aggregates which are undefined over zero competitors.
	ErrEmptyInput = errors.New("championship: empty input")

	// ErrInvalidArgument is returned for negative points, non-positive positions or power, and nil values.
	ErrInvalidArgument = errors.New("championship: invalid argument")
)

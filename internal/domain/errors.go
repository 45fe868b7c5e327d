package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for unrecognized sort keys, filter tags,
// catalog kinds and item ids. Callers match it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

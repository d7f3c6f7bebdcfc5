package booking

import (
	"errors"
)

var (
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
	ErrInvalidDate      = errors.New("invalid date")
	ErrUnknownRoom      = errors.New("unknown room")
)

package request

import "errors"

var (
	ErrMissingDescription = errors.New("description is required")
	ErrNotFound           = errors.New("request not found")
)

package cvs

import "errors"

var (
	// ErrNotFound means the CV does not exist or belongs to another user.
	ErrNotFound = errors.New("cv not found")
	// ErrInvalidInput means the request carried unusable parameters.
	ErrInvalidInput = errors.New("invalid input")
)

package errs

import (
	"errors"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidRequest   = errors.New("invalid request")
	ErrUnsupportedState = errors.New("unsupported state")
	ErrConflict         = errors.New("conflict")
)

type ErrorResponse struct {
	Error string `json:"error"`
}

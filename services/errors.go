package services

import "errors"

// Tagged errors the controllers translate to HTTP statuses. Everything else
// bubbles up as an internal error.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

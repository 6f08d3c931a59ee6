package services

import "errors"

// Sentinel errors matched with errors.Is at the controller boundary.
// Ownership failures surface as ErrNotFound so record existence never leaks.
var (
	ErrNotFound          = errors.New("record not found")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("status transition not permitted")
)

package model

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("validation error")          // 400
	ErrNotFound          = errors.New("not found")                 // 404
	ErrInvalidTransition = errors.New("invalid status transition") // 409
	ErrConflict          = errors.New("conflict")                  // 409
	ErrInsufficientStock = errors.New("insufficient stock")        // 422
	ErrUnknownStatus     = errors.New("unknown status")
)

// InvalidTransitionError reports the current and attempted status so the
// caller can surface both.
func InvalidTransitionError(current, attempted string) error {
	return fmt.Errorf("%w: current=%s attempted=%s", ErrInvalidTransition, current, attempted)
}

package service

import (
	"errors"
	"fmt"

	"github.com/boisserenc/atelier/internal/domain"
)

// storeFailure wraps an unexpected repository error so callers only see
// domain.ErrStoreFailure; the detail stays in the chain for logging.
func storeFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStoreFailure, op, err)
}

// lookupError passes domain.ErrNotFound through and wraps anything else as a
// store failure.
func lookupError(op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return storeFailure(op, err)
}

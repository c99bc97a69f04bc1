// Package apperror holds the error kinds every ledger operation reports.
// Match them with errors.Is; the wrapped message carries the detail.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrValidation        = errors.New("validation failed")
	ErrStorage           = errors.New("storage failure")
)

func NotFound(entity, id string) error {
	return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
}

func InsufficientStock(productID string, requested, available int) error {
	return fmt.Errorf("product %s: requested %d, available %d: %w", productID, requested, available, ErrInsufficientStock)
}

func Validation(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrValidation)
}

// Storage wraps a driver or transaction error. Already classified errors pass through.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsKnown(err) {
		return err
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}

// IsKnown reports whether err already carries one of the ledger kinds.
func IsKnown(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInsufficientStock) ||
		errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrStorage)
}

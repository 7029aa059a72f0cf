package usecase

import (
	"errors"
	"fmt"

	"ticket-booking/internal/data/entity"
)

// ErrInvalidPurchase matches every business-rule rejection via errors.Is.
var ErrInvalidPurchase = errors.New("invalid purchase")

// InvalidPurchaseError carries the rule that rejected a purchase.
type InvalidPurchaseError struct {
	Reason string
}

func (e *InvalidPurchaseError) Error() string {
	return e.Reason
}

func (e *InvalidPurchaseError) Is(target error) bool {
	return target == ErrInvalidPurchase
}

func invalidPurchase(format string, args ...any) error {
	return &InvalidPurchaseError{Reason: fmt.Sprintf(format, args...)}
}

func missingValue(what string) error {
	return fmt.Errorf("%w: %s must not be null", entity.ErrMissingValue, what)
}

package services

import "errors"

// Validation errors are expected and user-correctable; the caller surfaces
// the message without any state having changed. Anything else returned by
// settlement is a storage/transaction failure.
var (
	ErrGameUnavailable     = errors.New("this game is currently unavailable")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBelowMinimum        = errors.New("bet below minimum")
	ErrAboveMaximum        = errors.New("bet above maximum")
	ErrBetOutOfBounds      = errors.New("bet amount must be above 0.00 and at most 1000.00")

	ErrGameNotFound = errors.New("game not found")
	ErrUserNotFound = errors.New("user not found")
)

// IsValidationError reports whether err is a bet-rejection (as opposed to a
// not-found precondition failure or a storage error).
func IsValidationError(err error) bool {
	return errors.Is(err, ErrGameUnavailable) ||
		errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ErrBelowMinimum) ||
		errors.Is(err, ErrAboveMaximum) ||
		errors.Is(err, ErrBetOutOfBounds)
}

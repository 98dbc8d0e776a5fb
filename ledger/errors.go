package ledger

import "github.com/pkg/errors"

var (
	// ErrInvalidAmount rejects non-positive amounts before any mutation.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientFunds is a business decline, not a system fault.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAlreadyReserved guards against a duplicate reserve for the same order.
	ErrAlreadyReserved = errors.New("order already has an active reservation")

	// ErrAlreadyFinal is returned when confirm/cancel hits a terminal
	// transaction. Safe no-op on retry.
	ErrAlreadyFinal = errors.New("transaction already final")

	ErrBalanceNotFound     = errors.New("balance not found")
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrUnavailable marks a transient store fault. The caller may retry;
	// no partial mutation has been applied when it is returned.
	ErrUnavailable = errors.New("store unavailable")
)

// IsTransient reports whether err is a retryable store fault
// rather than a ledger-state error.
func IsTransient(err error) bool {
	return errors.Cause(err) == ErrUnavailable
}

// IsCause reports whether target is the root cause of err.
func IsCause(err, target error) bool {
	return errors.Cause(err) == target
}

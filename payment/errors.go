package payment

import "github.com/pkg/errors"

var (
	// ErrUnsupportedMethod rejects a method with no registered authorizer
	// before any ledger interaction.
	ErrUnsupportedMethod = errors.New("unsupported payment method")

	// ErrMissingSupplierInfo means the order directory could not resolve
	// the order into a (supplier_id, account_name) pair.
	ErrMissingSupplierInfo = errors.New("order has no supplier info")

	ErrOrderNotFound   = errors.New("order not found")
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrNotRefundable is returned for a refund against a payment that
	// never completed or is already fully refunded.
	ErrNotRefundable = errors.New("payment not refundable")

	// ErrInvalidRefund rejects a refund amount that is non-positive or
	// exceeds the amount still held by the payment.
	ErrInvalidRefund = errors.New("invalid refund amount")
)

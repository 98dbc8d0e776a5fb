package payment

import "context"

// Store persists payment records. Payments are not part of the balance
// invariant, so the contract is narrow: no cross-record transactions.
type Store interface {
	Insert(ctx context.Context, r *Record) error
	// Update persists status, transaction link, refunded amount,
	// completion time and failure reason.
	Update(ctx context.Context, r *Record) error
	ByID(ctx context.Context, paymentID string) (*Record, error)
	// ByOrder returns the most recent payment attempt for the order.
	ByOrder(ctx context.Context, orderID string) (*Record, error)
}

// OrderDirectory resolves an order into the supplier account that pays
// for it.
type OrderDirectory interface {
	OrderInfo(ctx context.Context, orderID string) (*OrderInfo, error)
}

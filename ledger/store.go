package ledger

import "context"

// Store is the narrow persistence contract of the credit ledger.
//
// InTx runs fn inside a single atomic unit: either every write made through
// the Tx is applied, or none is. The balance row handed out by
// BalanceForUpdate is locked for the duration of the unit, so the
// check-then-act sequence in Reserve is indivisible.
type Store interface {
	InTx(ctx context.Context, fn func(Tx) error) error
}

// Tx is the set of operations available inside one atomic unit.
type Tx interface {
	// BalanceForUpdate loads the balance row for (supplierID, accountName)
	// and locks it until the unit ends. Returns ErrBalanceNotFound if the
	// pair has no row yet.
	BalanceForUpdate(supplierID, accountName string) (*SupplierBalance, error)
	InsertBalance(b *SupplierBalance) error
	UpdateBalance(b *SupplierBalance) error

	InsertTransaction(t *CreditTransaction) error
	UpdateTransaction(t *CreditTransaction) error

	// ReservationByOrder returns the most recent withdrawal transaction for
	// orderID regardless of status, or ErrReservationNotFound.
	ReservationByOrder(supplierID, accountName, orderID string) (*CreditTransaction, error)

	// ListTransactions returns transactions for the pair, newest first.
	ListTransactions(supplierID, accountName string, limit, offset int) ([]*CreditTransaction, error)
}

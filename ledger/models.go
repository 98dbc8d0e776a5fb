package ledger

import (
	"time"

	"github.com/pkg/errors"
)

//go:generate reform

// TransactionType classifies a credit transaction.
type TransactionType string

const (
	Deposit    TransactionType = "deposit"
	Withdrawal TransactionType = "withdrawal"
	Refund     TransactionType = "refund"
	Adjustment TransactionType = "adjustment"
)

var allowedTransactionTypes = map[TransactionType]bool{
	Deposit:    true,
	Withdrawal: true,
	Refund:     true,
	Adjustment: true,
}

// TransactionStatus lifecycle of a credit transaction.
//
// pending -> {completed, cancelled, failed}; all three are terminal.
type TransactionStatus string

func (s TransactionStatus) Match(in TransactionStatus) bool {
	return s == in
}

// Terminal reports whether the status can never change again.
func (s TransactionStatus) Terminal() bool {
	switch s {
	case CompletedTX, CancelledTX, FailedTX:
		return true
	}
	return false
}

const (
	PendingTX   TransactionStatus = "pending"
	CompletedTX TransactionStatus = "completed"
	FailedTX    TransactionStatus = "failed"
	CancelledTX TransactionStatus = "cancelled"
)

//reform:dropship.supplier_balances
type SupplierBalance struct {
	BalanceID int64 `reform:"balance_id,pk"`

	// SupplierID + AccountName is the composite business key. One row per pair.
	SupplierID  string `reform:"supplier_id"`
	AccountName string `reform:"account_name"`

	// CurrentBalance is total funds ever deposited minus ever debited.
	CurrentBalance int64 `reform:"current_balance"`

	// ReservedBalance is the sum of all outstanding reservations
	// not yet confirmed or cancelled. Never exceeds CurrentBalance.
	ReservedBalance int64 `reform:"reserved_balance"`

	LastUpdated time.Time `reform:"last_updated"`
}

// AvailableBalance returns funds not held by any pending reservation.
func (b *SupplierBalance) AvailableBalance() int64 {
	return b.CurrentBalance - b.ReservedBalance
}

func (b *SupplierBalance) BeforeInsert() error {
	b.LastUpdated = time.Now().UTC()
	if b.CurrentBalance < 0 || b.ReservedBalance < 0 {
		return errors.New("negative balance on insert")
	}
	return nil
}

func (b *SupplierBalance) BeforeUpdate() error {
	b.LastUpdated = time.Now().UTC()
	return nil
}

//reform:dropship.credit_transactions
type CreditTransaction struct {
	TransactionID string `reform:"transaction_id,pk"`

	SupplierID  string `reform:"supplier_id"`
	AccountName string `reform:"account_name"`

	Type TransactionType `reform:"_type"`

	// Amount is always positive; the Type carries the direction.
	Amount int64 `reform:"amount"`

	Status TransactionStatus `reform:"status"`

	Description string `reform:"description"`

	// OrderID links a reservation to the order that holds it.
	OrderID *string `reform:"order_id"`

	CreatedAt     time.Time  `reform:"created_at"`
	CompletedAt   *time.Time `reform:"completed_at"`
	FailureReason *string    `reform:"failure_reason"`
}

func (t *CreditTransaction) BeforeInsert() error {
	t.CreatedAt = time.Now().UTC()
	if !allowedTransactionTypes[t.Type] {
		return errors.New("unknown transaction type")
	}
	if t.Amount <= 0 {
		return errors.New("non-positive transaction amount")
	}
	return nil
}

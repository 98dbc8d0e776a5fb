package payment

import (
	"time"

	"github.com/pkg/errors"
)

type Method string

// Closed set of payment methods. Dispatch goes through a per-method
// authorizer; a method without one is rejected before any ledger call.
const (
	CreditMethod       Method = "credit"
	CardMethod         Method = "card"
	BankTransferMethod Method = "bank_transfer"
	MobileMethod       Method = "mobile"
)

func (m Method) Known() bool {
	switch m {
	case CreditMethod, CardMethod, BankTransferMethod, MobileMethod:
		return true
	}
	return false
}

type Status string

const (
	PendingPayment    Status = "pending"
	ProcessingPayment Status = "processing"
	CompletedPayment  Status = "completed"
	FailedPayment     Status = "failed"
	CancelledPayment  Status = "cancelled"
	RefundedPayment   Status = "refunded"
	PartialRefund     Status = "partial_refund"
)

func (s Status) Match(in Status) bool {
	return s == in
}

//go:generate reform

// Record is one payment attempt. Written once per status transition,
// never deleted.
//
//reform:dropship.payments
type Record struct {
	PaymentID      string     `reform:"payment_id,pk"`
	OrderID        string     `reform:"order_id"`
	Amount         int64      `reform:"amount"`
	Method         Method     `reform:"method"`
	Status         Status     `reform:"status"`
	TransactionID  *string    `reform:"transaction_id"`
	RefundedAmount int64      `reform:"refunded_amount"`
	CreatedAt      time.Time  `reform:"created_at"`
	CompletedAt    *time.Time `reform:"completed_at"`
	FailureReason  *string    `reform:"failure_reason"`
}

func (r *Record) BeforeInsert() error {
	if !r.Method.Known() {
		return errors.New("unknown payment method")
	}
	if r.Amount <= 0 {
		return errors.New("payment amount must be positive")
	}
	r.CreatedAt = time.Now().UTC()
	return nil
}

// OrderInfo is what the order directory resolves an order id into.
type OrderInfo struct {
	SupplierID    string
	AccountName   string
	PaymentAmount int64
}

package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opencensus.io/trace"
	"go.uber.org/zap"

	"github.com/sunwoo0067/dropship/ledger"
)

// CreditLedger is the slice of the ledger the processor drives.
type CreditLedger interface {
	Deposit(ctx context.Context, supplierID, accountName string, amount int64, description string) (string, error)
	Reserve(ctx context.Context, supplierID, accountName, orderID string, amount int64) (string, error)
	Confirm(ctx context.Context, supplierID, accountName, orderID string) error
	Cancel(ctx context.Context, supplierID, accountName, orderID string) error
}

// Processor turns order-level payment requests into ledger reservations
// and immutable payment records. Methods dispatch through per-method
// authorizers; only the credit method reaches the ledger.
type Processor struct {
	store     Store
	directory OrderDirectory
	ledger    CreditLedger
	methods   map[Method]methodAuthorizer
	logger    *zap.Logger
}

func NewProcessor(store Store, directory OrderDirectory, credit CreditLedger) *Processor {
	return &Processor{
		store:     store,
		directory: directory,
		ledger:    credit,
		methods: map[Method]methodAuthorizer{
			CreditMethod: &creditAuthorizer{ledger: credit},
		},
		logger: zap.L().Named("payment"),
	}
}

type methodAuthorizer interface {
	// authorize places the hold. A returned error is either a business
	// decline (recorded, not raised) or a transient store fault
	// (raised, not recorded); ledger.IsTransient tells them apart.
	authorize(ctx context.Context, ord *OrderInfo, orderID string, amount int64) (txID string, err error)
}

type creditAuthorizer struct {
	ledger CreditLedger
}

func (a *creditAuthorizer) authorize(ctx context.Context, ord *OrderInfo, orderID string, amount int64) (string, error) {
	return a.ledger.Reserve(ctx, ord.SupplierID, ord.AccountName, orderID, amount)
}

// Authorize attempts payment for the order. A business decline is a
// normal outcome: it produces a recorded failed payment and a nil
// error. Hard errors are reserved for unsupported methods, unresolvable
// orders and transient store faults.
//
// Common errors:
// - ErrUnsupportedMethod, ledger.ErrInvalidAmount (before any ledger interaction)
// - ErrOrderNotFound, ErrMissingSupplierInfo
func (p *Processor) Authorize(ctx context.Context, orderID string, amount int64, method Method) (*Record, error) {
	ctx, span := trace.StartSpan(ctx, "payment.Authorize")
	defer span.End()

	auth, ok := p.methods[method]
	if !ok {
		return nil, ErrUnsupportedMethod
	}
	if amount <= 0 {
		return nil, ledger.ErrInvalidAmount
	}
	MAuthorizeAttempts.WithLabelValues(string(method)).Inc()

	ord, err := p.directory.OrderInfo(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if ord.SupplierID == "" || ord.AccountName == "" {
		return nil, ErrMissingSupplierInfo
	}

	rec := &Record{
		PaymentID: "PAY_" + uuid.NewString(),
		OrderID:   orderID,
		Amount:    amount,
		Method:    method,
	}

	txID, err := auth.authorize(ctx, ord, orderID, amount)
	if err != nil {
		if ledger.IsTransient(err) {
			return nil, err
		}
		MAuthorizeDeclines.WithLabelValues(string(method)).Inc()
		reason := err.Error()
		rec.Status = FailedPayment
		rec.FailureReason = &reason
		if err := p.store.Insert(ctx, rec); err != nil {
			return nil, err
		}
		p.logger.Info("payment declined",
			zap.String("payment_id", rec.PaymentID),
			zap.String("order_id", orderID),
			zap.Int64("amount", amount),
			zap.String("reason", reason),
		)
		return rec, nil
	}

	now := time.Now().UTC()
	rec.Status = CompletedPayment
	rec.TransactionID = &txID
	rec.CompletedAt = &now
	if err := p.store.Insert(ctx, rec); err != nil {
		return nil, err
	}
	p.logger.Info("payment authorized",
		zap.String("payment_id", rec.PaymentID),
		zap.String("order_id", orderID),
		zap.Int64("amount", amount),
		zap.String("transaction_id", txID),
	)
	return rec, nil
}

// Confirm realizes the reservation behind the order's payment. Safe to
// retry; a replay surfaces the ledger's terminal-state guard.
func (p *Processor) Confirm(ctx context.Context, orderID string) error {
	ctx, span := trace.StartSpan(ctx, "payment.Confirm")
	defer span.End()

	ord, err := p.directory.OrderInfo(ctx, orderID)
	if err != nil {
		return err
	}
	return p.ledger.Confirm(ctx, ord.SupplierID, ord.AccountName, orderID)
}

// Cancel releases the reservation and closes the payment record as
// cancelled.
func (p *Processor) Cancel(ctx context.Context, orderID string) error {
	ctx, span := trace.StartSpan(ctx, "payment.Cancel")
	defer span.End()

	ord, err := p.directory.OrderInfo(ctx, orderID)
	if err != nil {
		return err
	}
	if err := p.ledger.Cancel(ctx, ord.SupplierID, ord.AccountName, orderID); err != nil {
		return err
	}

	rec, err := p.store.ByOrder(ctx, orderID)
	switch {
	case err == nil:
		now := time.Now().UTC()
		rec.Status = CancelledPayment
		rec.CompletedAt = &now
		if err := p.store.Update(ctx, rec); err != nil {
			return err
		}
	case err == ErrPaymentNotFound:
		// reservation was placed outside the payment flow
	default:
		return err
	}

	p.logger.Info("payment cancelled", zap.String("order_id", orderID))
	return nil
}

// Refund credits amount back to the supplier account as a compensating
// deposit and rolls the payment record to refunded or partial_refund.
// amount == 0 refunds everything still held.
//
// Common errors:
// - ErrPaymentNotFound
// - ErrNotRefundable (payment never completed, or nothing left to refund)
// - ErrInvalidRefund (negative, or more than the remaining amount)
func (p *Processor) Refund(ctx context.Context, paymentID string, amount int64, reason string) error {
	ctx, span := trace.StartSpan(ctx, "payment.Refund")
	defer span.End()

	rec, err := p.store.ByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if !rec.Status.Match(CompletedPayment) && !rec.Status.Match(PartialRefund) {
		return ErrNotRefundable
	}
	remaining := rec.Amount - rec.RefundedAmount
	if remaining <= 0 {
		return ErrNotRefundable
	}
	if amount == 0 {
		amount = remaining
	}
	if amount < 0 || amount > remaining {
		return ErrInvalidRefund
	}

	ord, err := p.directory.OrderInfo(ctx, rec.OrderID)
	if err != nil {
		return err
	}
	desc := fmt.Sprintf("refund for payment %s", paymentID)
	if reason != "" {
		desc += ": " + reason
	}
	if _, err := p.ledger.Deposit(ctx, ord.SupplierID, ord.AccountName, amount, desc); err != nil {
		return err
	}

	rec.RefundedAmount += amount
	if rec.RefundedAmount == rec.Amount {
		rec.Status = RefundedPayment
	} else {
		rec.Status = PartialRefund
	}
	if err := p.store.Update(ctx, rec); err != nil {
		return err
	}

	MRefunds.Inc()
	p.logger.Info("payment refunded",
		zap.String("payment_id", paymentID),
		zap.Int64("amount", amount),
		zap.String("status", string(rec.Status)),
	)
	return nil
}

// PaymentByID is a lookup passthrough for the diagnostics surface.
func (p *Processor) PaymentByID(ctx context.Context, paymentID string) (*Record, error) {
	return p.store.ByID(ctx, paymentID)
}

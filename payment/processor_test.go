package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunwoo0067/dropship/ledger"
)

type fakeDirectory struct {
	orders map[string]*OrderInfo
	calls  int
}

func (d *fakeDirectory) OrderInfo(_ context.Context, orderID string) (*OrderInfo, error) {
	d.calls++
	ord, ok := d.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return ord, nil
}

func newTestProcessor(t *testing.T, orders map[string]*OrderInfo) (*Processor, *ledger.Ledger, *fakeDirectory) {
	t.Helper()
	l := ledger.New(ledger.NewMemStore())
	dir := &fakeDirectory{orders: orders}
	return NewProcessor(NewMemStore(), dir, l), l, dir
}

func TestProcessor_authorizeUnsupportedMethod(t *testing.T) {
	p, _, dir := newTestProcessor(t, nil)

	for _, method := range []Method{CardMethod, BankTransferMethod, MobileMethod, Method("bitcoin")} {
		_, err := p.Authorize(context.Background(), "ORD1", 10000, method)
		assert.Equal(t, ErrUnsupportedMethod, err, "method=%s", method)
	}
	assert.Zero(t, dir.calls, "unsupported methods must fail before any lookup")
}

func TestProcessor_authorizeRejectsNonPositiveAmount(t *testing.T) {
	p, l, dir := newTestProcessor(t, map[string]*OrderInfo{
		"ORD1": {SupplierID: "ownerclan", AccountName: "main", PaymentAmount: 10000},
	})
	ctx := context.Background()
	_, err := l.Deposit(ctx, "ownerclan", "main", 100000, "top up")
	require.NoError(t, err)

	for _, amount := range []int64{0, -1, -50000} {
		rec, err := p.Authorize(ctx, "ORD1", amount, CreditMethod)
		assert.Nil(t, rec, "amount=%d", amount)
		assert.Equal(t, ledger.ErrInvalidAmount, err, "amount=%d", amount)
	}
	assert.Zero(t, dir.calls, "a bad amount must fail before any lookup")

	// nothing recorded, nothing held
	_, err = p.store.ByOrder(ctx, "ORD1")
	assert.Equal(t, ErrPaymentNotFound, err)
	bal, err := l.GetBalance(ctx, "ownerclan", "main")
	require.NoError(t, err)
	assert.EqualValues(t, 0, bal.ReservedBalance)
}

func TestProcessor_authorizeStoreFaultPropagates(t *testing.T) {
	p, l, _ := newTestProcessor(t, map[string]*OrderInfo{
		"ORD1": {SupplierID: "ownerclan", AccountName: "main", PaymentAmount: 30000},
	})
	ctx := context.Background()
	_, err := l.Deposit(ctx, "ownerclan", "main", 100000, "top up")
	require.NoError(t, err)

	broken, cancel := context.WithCancel(ctx)
	cancel()

	rec, err := p.Authorize(broken, "ORD1", 30000, CreditMethod)
	assert.Nil(t, rec)
	require.Error(t, err)
	assert.True(t, ledger.IsTransient(err), "a store fault is not a decline")

	// no payment record, no hold
	_, err = p.store.ByOrder(ctx, "ORD1")
	assert.Equal(t, ErrPaymentNotFound, err)
	bal, err := l.GetBalance(ctx, "ownerclan", "main")
	require.NoError(t, err)
	assert.EqualValues(t, 0, bal.ReservedBalance)
}

func TestProcessor_authorizeMissingSupplierInfo(t *testing.T) {
	p, _, _ := newTestProcessor(t, map[string]*OrderInfo{
		"ORD1": {SupplierID: "", AccountName: "", PaymentAmount: 10000},
	})

	_, err := p.Authorize(context.Background(), "ORD1", 10000, CreditMethod)
	assert.Equal(t, ErrMissingSupplierInfo, err)

	_, err = p.Authorize(context.Background(), "NO_SUCH", 10000, CreditMethod)
	assert.Equal(t, ErrOrderNotFound, err)
}

func TestProcessor_authorizeDeclineIsRecordedNotRaised(t *testing.T) {
	p, l, _ := newTestProcessor(t, map[string]*OrderInfo{
		"ORD1": {SupplierID: "ownerclan", AccountName: "main", PaymentAmount: 50000},
	})
	ctx := context.Background()
	_, err := l.Deposit(ctx, "ownerclan", "main", 10000, "top up")
	require.NoError(t, err)

	rec, err := p.Authorize(ctx, "ORD1", 50000, CreditMethod)
	require.NoError(t, err, "a business decline is not an error")
	require.NotNil(t, rec)
	assert.Equal(t, FailedPayment, rec.Status)
	require.NotNil(t, rec.FailureReason)
	assert.NotEmpty(t, *rec.FailureReason)
	assert.Nil(t, rec.TransactionID)

	// the failed attempt is persisted for the audit trail
	stored, err := p.PaymentByID(ctx, rec.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, FailedPayment, stored.Status)

	// no hold was placed
	bal, err := l.GetBalance(ctx, "ownerclan", "main")
	require.NoError(t, err)
	assert.EqualValues(t, 0, bal.ReservedBalance)
}

func TestProcessor_authorizeSuccess(t *testing.T) {
	p, l, _ := newTestProcessor(t, map[string]*OrderInfo{
		"ORD1": {SupplierID: "ownerclan", AccountName: "main", PaymentAmount: 30000},
	})
	ctx := context.Background()
	_, err := l.Deposit(ctx, "ownerclan", "main", 100000, "top up")
	require.NoError(t, err)

	rec, err := p.Authorize(ctx, "ORD1", 30000, CreditMethod)
	require.NoError(t, err)
	assert.Equal(t, CompletedPayment, rec.Status)
	require.NotNil(t, rec.TransactionID)
	assert.NotEmpty(t, *rec.TransactionID)
	assert.NotNil(t, rec.CompletedAt)
	assert.Contains(t, rec.PaymentID, "PAY_")

	bal, err := l.GetBalance(ctx, "ownerclan", "main")
	require.NoError(t, err)
	assert.EqualValues(t, 30000, bal.ReservedBalance)
	assert.EqualValues(t, 100000, bal.CurrentBalance, "authorize holds, it does not debit")
}

func TestProcessor_confirmAndReplay(t *testing.T) {
	p, l, _ := newTestProcessor(t, map[string]*OrderInfo{
		"ORD1": {SupplierID: "ownerclan", AccountName: "main", PaymentAmount: 30000},
	})
	ctx := context.Background()
	_, err := l.Deposit(ctx, "ownerclan", "main", 100000, "top up")
	require.NoError(t, err)
	_, err = p.Authorize(ctx, "ORD1", 30000, CreditMethod)
	require.NoError(t, err)

	require.NoError(t, p.Confirm(ctx, "ORD1"))
	assert.Equal(t, ledger.ErrAlreadyFinal, p.Confirm(ctx, "ORD1"))

	bal, err := l.GetBalance(ctx, "ownerclan", "main")
	require.NoError(t, err)
	assert.EqualValues(t, 70000, bal.CurrentBalance)
	assert.EqualValues(t, 0, bal.ReservedBalance)
}

func TestProcessor_cancelReleasesHoldAndClosesRecord(t *testing.T) {
	p, l, _ := newTestProcessor(t, map[string]*OrderInfo{
		"ORD1": {SupplierID: "ownerclan", AccountName: "main", PaymentAmount: 30000},
	})
	ctx := context.Background()
	_, err := l.Deposit(ctx, "ownerclan", "main", 100000, "top up")
	require.NoError(t, err)
	rec, err := p.Authorize(ctx, "ORD1", 30000, CreditMethod)
	require.NoError(t, err)

	require.NoError(t, p.Cancel(ctx, "ORD1"))

	bal, err := l.GetBalance(ctx, "ownerclan", "main")
	require.NoError(t, err)
	assert.EqualValues(t, 100000, bal.CurrentBalance)
	assert.EqualValues(t, 0, bal.ReservedBalance)

	stored, err := p.PaymentByID(ctx, rec.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, CancelledPayment, stored.Status)
}

func TestProcessor_refundFull(t *testing.T) {
	p, l, _ := newTestProcessor(t, map[string]*OrderInfo{
		"ORD1": {SupplierID: "ownerclan", AccountName: "main", PaymentAmount: 30000},
	})
	ctx := context.Background()
	_, err := l.Deposit(ctx, "ownerclan", "main", 100000, "top up")
	require.NoError(t, err)
	rec, err := p.Authorize(ctx, "ORD1", 30000, CreditMethod)
	require.NoError(t, err)
	require.NoError(t, p.Confirm(ctx, "ORD1"))

	require.NoError(t, p.Refund(ctx, rec.PaymentID, 0, "customer return"))

	// compensating deposit restores the debit
	bal, err := l.GetBalance(ctx, "ownerclan", "main")
	require.NoError(t, err)
	assert.EqualValues(t, 100000, bal.CurrentBalance)

	stored, err := p.PaymentByID(ctx, rec.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, RefundedPayment, stored.Status)
	assert.EqualValues(t, 30000, stored.RefundedAmount)

	// nothing left to refund
	assert.Equal(t, ErrNotRefundable, p.Refund(ctx, rec.PaymentID, 0, ""))
}

func TestProcessor_refundPartial(t *testing.T) {
	p, l, _ := newTestProcessor(t, map[string]*OrderInfo{
		"ORD1": {SupplierID: "ownerclan", AccountName: "main", PaymentAmount: 30000},
	})
	ctx := context.Background()
	_, err := l.Deposit(ctx, "ownerclan", "main", 100000, "top up")
	require.NoError(t, err)
	rec, err := p.Authorize(ctx, "ORD1", 30000, CreditMethod)
	require.NoError(t, err)
	require.NoError(t, p.Confirm(ctx, "ORD1"))

	require.NoError(t, p.Refund(ctx, rec.PaymentID, 10000, "one item returned"))

	stored, err := p.PaymentByID(ctx, rec.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, PartialRefund, stored.Status)
	assert.EqualValues(t, 10000, stored.RefundedAmount)

	// cannot refund more than what is left
	assert.Equal(t, ErrInvalidRefund, p.Refund(ctx, rec.PaymentID, 25000, ""))

	bal, err := l.GetBalance(ctx, "ownerclan", "main")
	require.NoError(t, err)
	assert.EqualValues(t, 80000, bal.CurrentBalance)
}

func TestProcessor_refundRequiresCompletedPayment(t *testing.T) {
	p, l, _ := newTestProcessor(t, map[string]*OrderInfo{
		"ORD1": {SupplierID: "ownerclan", AccountName: "main", PaymentAmount: 50000},
	})
	ctx := context.Background()
	_, err := l.Deposit(ctx, "ownerclan", "main", 10000, "top up")
	require.NoError(t, err)

	rec, err := p.Authorize(ctx, "ORD1", 50000, CreditMethod)
	require.NoError(t, err)
	require.Equal(t, FailedPayment, rec.Status)

	assert.Equal(t, ErrNotRefundable, p.Refund(ctx, rec.PaymentID, 0, ""))
	assert.Equal(t, ErrPaymentNotFound, p.Refund(ctx, "PAY_missing", 0, ""))
}

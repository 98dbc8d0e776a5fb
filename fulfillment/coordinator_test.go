package fulfillment

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunwoo0067/dropship/ledger"
	"github.com/sunwoo0067/dropship/payment"
	"github.com/sunwoo0067/dropship/shipping"
)

type recordingShipper struct {
	calls int
	fail  error
	inner *shipping.Simulator
}

func (s *recordingShipper) CreateShipment(ctx context.Context, req shipping.Request) (*shipping.Shipment, error) {
	s.calls++
	if s.fail != nil {
		return nil, s.fail
	}
	return s.inner.CreateShipment(ctx, req)
}

type recordingPublisher struct {
	events [][3]string
}

func (p *recordingPublisher) FulfillmentCompleted(_ context.Context, orderID, paymentID, shippingID string) error {
	p.events = append(p.events, [3]string{orderID, paymentID, shippingID})
	return nil
}

type fixture struct {
	coordinator *Coordinator
	orders      *MemOrderStore
	ledger      *ledger.Ledger
	shipper     *recordingShipper
	publisher   *recordingPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	l := ledger.New(ledger.NewMemStore())
	orders := NewMemOrderStore()
	processor := payment.NewProcessor(payment.NewMemStore(), NewDirectory(orders), l)
	shipper := &recordingShipper{inner: shipping.NewSimulator(shipping.NewMemStore())}
	publisher := &recordingPublisher{}
	return &fixture{
		coordinator: NewCoordinator(orders, processor, shipper, publisher),
		orders:      orders,
		ledger:      l,
		shipper:     shipper,
		publisher:   publisher,
	}
}

func (f *fixture) seedOrder(t *testing.T, orderID string, amount int64) {
	t.Helper()
	err := f.orders.Insert(context.Background(), &Order{
		OrderID:       orderID,
		SupplierID:    "ownerclan",
		AccountName:   "main",
		PaymentAmount: amount,
	})
	require.NoError(t, err)
}

func TestCoordinator_fulfillSuccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.ledger.Deposit(ctx, "ownerclan", "main", 100000, "top up")
	require.NoError(t, err)
	f.seedOrder(t, "ORD1", 75000)

	res, err := f.coordinator.Fulfill(ctx, "ORD1",
		PaymentRequest{Amount: 75000, Method: payment.CreditMethod},
		shipping.Request{Carrier: shipping.CJLogistics, Method: shipping.StandardShipping, Address: "Seoul"},
	)
	require.NoError(t, err)
	require.NotNil(t, res.Payment)
	require.NotNil(t, res.Shipment)
	assert.Equal(t, payment.CompletedPayment, res.Payment.Status)
	assert.Equal(t, "ORD1", res.Shipment.OrderID)

	o, err := f.orders.ByID(ctx, "ORD1")
	require.NoError(t, err)
	assert.Equal(t, ProcessingOrder, o.Status)

	// funds are held, not yet debited
	bal, err := f.ledger.GetBalance(ctx, "ownerclan", "main")
	require.NoError(t, err)
	assert.EqualValues(t, 100000, bal.CurrentBalance)
	assert.EqualValues(t, 75000, bal.ReservedBalance)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, "ORD1", f.publisher.events[0][0])
}

func TestCoordinator_shortCircuitOnDecline(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.ledger.Deposit(ctx, "ownerclan", "main", 10000, "top up")
	require.NoError(t, err)
	f.seedOrder(t, "ORD2", 50000)

	res, err := f.coordinator.Fulfill(ctx, "ORD2",
		PaymentRequest{Amount: 50000, Method: payment.CreditMethod},
		shipping.Request{Carrier: shipping.Hanjin, Method: shipping.ExpressShipping},
	)
	require.NoError(t, err, "a declined payment is a recorded outcome, not an error")
	require.NotNil(t, res.Payment)
	assert.Equal(t, payment.FailedPayment, res.Payment.Status)
	assert.Nil(t, res.Shipment)

	assert.Zero(t, f.shipper.calls, "shipment must never be attempted after a decline")
	assert.Empty(t, f.publisher.events)

	o, err := f.orders.ByID(ctx, "ORD2")
	require.NoError(t, err)
	assert.Equal(t, PendingOrder, o.Status, "order is left untouched")
}

func TestCoordinator_shipmentFailureLeavesPaymentReserved(t *testing.T) {
	f := newFixture(t)
	f.shipper.fail = errors.New("carrier gateway down")
	ctx := context.Background()
	_, err := f.ledger.Deposit(ctx, "ownerclan", "main", 100000, "top up")
	require.NoError(t, err)
	f.seedOrder(t, "ORD3", 30000)

	res, err := f.coordinator.Fulfill(ctx, "ORD3",
		PaymentRequest{Amount: 30000, Method: payment.CreditMethod},
		shipping.Request{Carrier: shipping.Lotte, Method: shipping.StandardShipping},
	)
	require.Error(t, err)
	require.NotNil(t, res)
	require.NotNil(t, res.Payment)
	assert.Equal(t, payment.CompletedPayment, res.Payment.Status)
	assert.Nil(t, res.Shipment)

	// the hold survives; it is the caller's call to cancel or retry
	bal, err := f.ledger.GetBalance(ctx, "ownerclan", "main")
	require.NoError(t, err)
	assert.EqualValues(t, 30000, bal.ReservedBalance)

	o, err := f.orders.ByID(ctx, "ORD3")
	require.NoError(t, err)
	assert.Equal(t, PaymentCompletedOrder, o.Status)
}

func TestCoordinator_zeroAmountUsesOrderAmount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.ledger.Deposit(ctx, "ownerclan", "main", 100000, "top up")
	require.NoError(t, err)
	f.seedOrder(t, "ORD4", 45000)

	res, err := f.coordinator.Fulfill(ctx, "ORD4",
		PaymentRequest{Method: payment.CreditMethod},
		shipping.Request{Carrier: shipping.Epost, Method: shipping.SameDayShipping},
	)
	require.NoError(t, err)
	assert.EqualValues(t, 45000, res.Payment.Amount)

	bal, err := f.ledger.GetBalance(ctx, "ownerclan", "main")
	require.NoError(t, err)
	assert.EqualValues(t, 45000, bal.ReservedBalance)
}

func TestCoordinator_unknownOrder(t *testing.T) {
	f := newFixture(t)

	_, err := f.coordinator.Fulfill(context.Background(), "NO_SUCH",
		PaymentRequest{Method: payment.CreditMethod},
		shipping.Request{Carrier: shipping.Hanjin, Method: shipping.StandardShipping},
	)
	assert.Equal(t, ErrOrderNotFound, errors.Cause(err))
}

func TestOrderStatus_rollForwardOnly(t *testing.T) {
	assert.True(t, PendingOrder.CanRollTo(PaymentCompletedOrder))
	assert.True(t, PendingOrder.CanRollTo(CancelledOrder))
	assert.True(t, PaymentCompletedOrder.CanRollTo(ProcessingOrder))
	assert.False(t, ProcessingOrder.CanRollTo(PendingOrder))
	assert.False(t, CancelledOrder.CanRollTo(ProcessingOrder))
	assert.False(t, ProcessingOrder.CanRollTo(PaymentCompletedOrder))
}
